package camera

// SequencerOption defines a functional option for configuring a Sequencer.
type SequencerOption func(*sequencerImpl)

// WithTransitionController sets the transition controller the sequencer
// drives. When omitted the sequencer creates its own.
//
// Parameters:
//   - transition: the transition controller to drive
//
// Returns:
//   - SequencerOption: the option to apply
func WithTransitionController(transition TransitionController) SequencerOption {
	return func(s *sequencerImpl) {
		s.transition = transition
	}
}

// WithSequenceCompletionCallback sets the function invoked once when a
// non-looping sequence finishes.
//
// Parameters:
//   - callback: function to call on sequence completion
//
// Returns:
//   - SequencerOption: the option to apply
func WithSequenceCompletionCallback(callback func()) SequencerOption {
	return func(s *sequencerImpl) {
		s.onSequenceComplete = callback
	}
}
