package environment

import "github.com/xRyann2255/ICHack26-sub001/engine/light"

// Sun builds the scene's directional key light from resolved environment
// settings. Callers re-create the sun whenever the settings change; the light
// itself holds no reference back to the settings.
//
// Parameters:
//   - settings: the resolved environment settings
//
// Returns:
//   - light.Light: a directional light matching the settings
func Sun(settings Settings) light.Light {
	return light.NewLight(
		light.LightTypeDirectional,
		light.WithDirection(settings.SunDirection[0], settings.SunDirection[1], settings.SunDirection[2]),
		light.WithColor(settings.SunColor[0], settings.SunColor[1], settings.SunColor[2]),
		light.WithIntensity(settings.SunIntensity),
	)
}
