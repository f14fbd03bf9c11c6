package hal

import "painter3d/render/raster"

// luma565 is the Rec. 601 brightness of an RGB565 pixel, 0..255.
func luma565(p uint16) uint8 {
	r, g, b := raster.Unpack565(p)
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}
