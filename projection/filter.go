package projection

import (
	"go.viam.com/orthographic/rimage"
)

// fillGaps repairs holes left by sparse sampling: every unoccupied
// pixel with at least one occupied pixel in its (2r+1)^2 neighborhood
// takes the per-channel mean of those neighbors' colors and becomes
// occupied. Windows clamp at the image borders.
//
// Only the pre-filter occupancy is consulted, so filled pixels never
// seed further filling and a pixel more than r away from any
// originally occupied pixel stays background. The mean accumulates
// integer sums, making the result independent of the order neighbors
// are visited in. radius 0 returns the inputs untouched.
func fillGaps(img *rimage.Image, ocp *OccupancyMap, radius int) (*rimage.Image, *OccupancyMap) {
	if radius == 0 {
		return img, ocp
	}

	outImg := img.Clone()
	outOcp := ocp.Clone()
	width, height := ocp.Width(), ocp.Height()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ocp.Get(x, y) {
				continue
			}

			var r, g, b, n uint64
			for ny := maxInt(0, y-radius); ny <= minInt(height-1, y+radius); ny++ {
				for nx := maxInt(0, x-radius); nx <= minInt(width-1, x+radius); nx++ {
					if !ocp.Get(nx, ny) {
						continue
					}
					c := img.GetXY(nx, ny)
					r += uint64(c.R)
					g += uint64(c.G)
					b += uint64(c.B)
					n++
				}
			}
			if n == 0 {
				continue
			}
			outImg.SetXY(x, y, rimage.NewColor(roundDiv(r, n), roundDiv(g, n), roundDiv(b, n)))
			outOcp.Set(x, y, true)
		}
	}
	return outImg, outOcp
}

func roundDiv(sum, n uint64) uint8 {
	return uint8((sum + n/2) / n)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
