package render

import "image/color"

// fillRGBA paints every pixel in buf with c.
func fillRGBA(buf []byte, c color.Color) {
	r, g, b, a := c.RGBA()
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}
