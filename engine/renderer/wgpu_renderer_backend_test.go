package renderer

import (
	"testing"

	"github.com/xRyann2255/ICHack26-sub001/common"
)

func TestFrameUniformsSizeMatchesUpload(t *testing.T) {
	// The buffer and bind group layout are sized from frameUniformsSize; the
	// per-frame upload goes through StructToBytes on a pointer. The two must
	// agree or WriteBuffer would overrun or underfill the uniform buffer.
	var u frameUniforms
	if got := uint64(len(common.StructToBytes(&u))); got != frameUniformsSize {
		t.Errorf("Expected upload size %d, got %d", frameUniformsSize, got)
	}
}

func TestFrameUniformsWGSLAlignment(t *testing.T) {
	// WGSL uniform structs are laid out in 16-byte units: one mat4x4 plus six
	// vec4 fields.
	const want = 16*4 + 6*4*4
	if frameUniformsSize != want {
		t.Errorf("Expected %d byte uniform block, got %d", want, frameUniformsSize)
	}
	if frameUniformsSize%16 != 0 {
		t.Errorf("Expected 16-byte aligned uniform block, got %d", frameUniformsSize)
	}
}
