// gui_image_types.go - Image data model (§3)

package main

// Image is an owned, row-major buffer of Width*Height pre-multiplied
// pixels. A "fill" image is used as a constant-color source: only pixel
// (0,0) is read and every target pixel is blended against it.
type Image struct {
	Width  uint32
	Height uint32
	Buffer []Pixel
}

// At returns the pixel at (x, y); callers are expected to stay in bounds,
// matching the original's unchecked buffer indexing.
func (img *Image) At(x, y uint32) Pixel {
	return img.Buffer[y*img.Width+x]
}

// ClickImage bundles a base image and its highlighted variant (§4.10).
type ClickImage struct {
	BaseImage Image
	HoldImage Image
}
