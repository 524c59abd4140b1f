// gui_blend.go - Pre-multiplied alpha pixel blending (§4.1)

package main

// applyOpacity scales an 8-bit channel by opacity/255, truncating like the
// original's RGB_APPLY_OPACITY macro: (channel * opacity) / 0xFF.
func applyOpacity(channel, opacity uint8) uint8 {
	return uint8((uint16(channel) * uint16(opacity)) / 0xFF)
}

// alphaBlend adds a front channel to a back channel scaled by the inverse
// front opacity, matching RGB_ALPHA_BLEND: front + back*invOpacity/255.
func alphaBlend(back, front, invOpacity uint8) uint8 {
	return front + applyOpacity(back, invOpacity)
}

// Blend composites front over back in place, honoring opacity in [0, 255].
// front is pre-multiplied ARGB/BGRA; back may or may not be, but this
// engine's back buffer is pre-multiplied-over-opaque (Alpha starts 0xFF
// after any full cover — see SPEC_FULL §13).
func Blend(back *Pixel, front Pixel, opacity uint8) {
	if front.Alpha == 0 {
		return
	}

	var combOpacity uint8
	if front.Alpha == 0xFF {
		if opacity == 0xFF {
			back.Blue = front.Blue
			back.Green = front.Green
			back.Red = front.Red
			back.Alpha = front.Alpha
			return
		}
		combOpacity = opacity
	} else {
		combOpacity = applyOpacity(front.Alpha, opacity)
	}

	if combOpacity == 0 {
		return
	}

	finalFront := front
	if combOpacity != front.Alpha {
		finalFront = Pixel{
			Alpha: combOpacity,
			Blue:  applyOpacity(front.Blue, opacity),
			Green: applyOpacity(front.Green, opacity),
			Red:   applyOpacity(front.Red, opacity),
		}
	}

	invOpacity := uint8(0xFF - combOpacity)

	back.Blue = alphaBlend(back.Blue, finalFront.Blue, invOpacity)
	back.Green = alphaBlend(back.Green, finalFront.Green, invOpacity)
	back.Red = alphaBlend(back.Red, finalFront.Red, invOpacity)

	if back.Alpha != 0xFF {
		back.Alpha = alphaBlend(back.Alpha, combOpacity, invOpacity)
	}
}
