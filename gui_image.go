// gui_image.go - PNG decode and image helpers (§4.10)

package main

import (
	"bytes"
	"image"
	"image/png"
)

// stdlibPngDecoder decodes PNG bytes with the standard library's image/png,
// straight (non-premultiplied) RGBA, the orientation PngToImage expects.
type stdlibPngDecoder struct{}

func (stdlibPngDecoder) Decode(raw []byte) ([]Pixel, uint32, uint32, error) {
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, 0, 0, newGuiError(InvalidData, "png decode failed", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, 0, 0, newGuiError(InvalidData, "png decoded to an empty image", nil)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		converted := image.NewNRGBA(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				converted.Set(x, y, img.At(x, y))
			}
		}
		nrgba = converted
	}

	buf := make([]Pixel, width*height)
	for y := 0; y < height; y++ {
		rowOff := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for x := 0; x < width; x++ {
			o := rowOff + x*4
			buf[y*width+x] = Pixel{
				Red:   nrgba.Pix[o+0],
				Green: nrgba.Pix[o+1],
				Blue:  nrgba.Pix[o+2],
				Alpha: nrgba.Pix[o+3],
			}
		}
	}

	return buf, uint32(width), uint32(height), nil
}

// PngToImage decodes raw with the engine's PngDecoder, then converts
// in-place to pre-multiplied BGRA: each channel is multiplied by alpha over
// 255. The original swaps Red/Blue here because its DecodePng overlays RGBA
// bytes onto a BGRA struct, leaving Blue holding the red byte; this port's
// decoder assigns Pixel fields by name, so Red already holds red and no swap
// is needed to reach the hardware blit pixel layout (§4.10, §12 item 2).
func (e *Engine) PngToImage(raw []byte) (Image, error) {
	buf, width, height, err := e.png.Decode(raw)
	if err != nil {
		return Image{}, err
	}

	for i := range buf {
		p := buf[i]
		alpha := uint32(p.Alpha)

		buf[i] = Pixel{
			Blue:  uint8((uint32(p.Blue) * alpha) / 255),
			Green: uint8((uint32(p.Green) * alpha) / 255),
			Red:   uint8((uint32(p.Red) * alpha) / 255),
			Alpha: p.Alpha,
		}
	}

	return Image{Width: width, Height: height, Buffer: buf}, nil
}

// CreateHighlightedImage produces a copy of src where every non-fully-
// transparent pixel is blended with the pre-multiplied highlightPixel at
// full opacity, and every fully-transparent pixel strictly between two
// non-fully-transparent pixels on the same row is replaced with the
// pre-multiplied highlightPixel outright. The
// leftmost and rightmost transparent gutters on each row are left as-is
// (§4.10).
func CreateHighlightedImage(src Image, highlightPixel Pixel) Image {
	alpha := uint32(highlightPixel.Alpha)
	premulHighlight := Pixel{
		Blue:  uint8((uint32(highlightPixel.Blue) * alpha) / 255),
		Green: uint8((uint32(highlightPixel.Green) * alpha) / 255),
		Red:   uint8((uint32(highlightPixel.Red) * alpha) / 255),
		Alpha: highlightPixel.Alpha,
	}

	out := Image{
		Width:  src.Width,
		Height: src.Height,
		Buffer: make([]Pixel, len(src.Buffer)),
	}
	copy(out.Buffer, src.Buffer)

	for y := uint32(0); y < src.Height; y++ {
		row := out.Buffer[y*src.Width : (y+1)*src.Width]
		srcRow := src.Buffer[y*src.Width : (y+1)*src.Width]

		firstOpaque, lastOpaque := -1, -1
		for x, p := range srcRow {
			if p.Alpha != 0 {
				if firstOpaque == -1 {
					firstOpaque = x
				}
				lastOpaque = x
			}
		}

		for x, p := range srcRow {
			if p.Alpha != 0 {
				blended := p
				Blend(&blended, premulHighlight, 0xFF)
				row[x] = blended
				continue
			}
			if firstOpaque != -1 && x > firstOpaque && x < lastOpaque {
				row[x] = premulHighlight
			}
		}
	}

	return out
}

// PngToClickImage decodes raw and derives its highlighted variant, bundling
// both into a ClickImage. CreateHighlightedImage cannot fail, so the only
// error returned is a decode error from PngToImage, alongside the zero
// ClickImage (§4.10).
func (e *Engine) PngToClickImage(raw []byte, highlightPixel Pixel) (ClickImage, error) {
	base, err := e.PngToImage(raw)
	if err != nil {
		return ClickImage{}, err
	}

	hold := CreateHighlightedImage(base, highlightPixel)

	return ClickImage{BaseImage: base, HoldImage: hold}, nil
}
