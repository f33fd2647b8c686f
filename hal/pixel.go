package hal

import "image"

// fillRGBA writes one RGBA pixel over the whole buffer, doubling the copied
// span each pass.
func fillRGBA(buf []byte, r, g, b, a uint8) {
	if len(buf) < 4 {
		return
	}
	buf[0], buf[1], buf[2], buf[3] = r, g, b, a
	for n := 4; n < len(buf); n *= 2 {
		copy(buf[n:], buf[:n])
	}
}

// Image returns an image.RGBA that aliases fb's pixels. Writes through the
// image land in the framebuffer. The view is only valid until fb is resized.
func Image(fb Framebuffer) *image.RGBA {
	if fb == nil || fb.Format() != PixelFormatRGBA8888 {
		return &image.RGBA{}
	}
	return &image.RGBA{
		Pix:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		Rect:   image.Rect(0, 0, fb.Width(), fb.Height()),
	}
}
