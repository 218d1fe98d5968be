package teams

import (
	"math"
	"strconv"
)

// minContrast is the lowest primary/secondary contrast ratio we will display.
// Pairs below it get a white or black secondary, whichever reads better.
const minContrast = 3.5

func rgbFromHex(color string) (r, g, b int) {
	if len(color) < 6 {
		return 0, 0, 0
	}
	r = hexByte(color[0:2])
	g = hexByte(color[2:4])
	b = hexByte(color[4:6])
	return r, g, b
}

func hexByte(s string) int {
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0
	}
	return int(v)
}

// luminance computes WCAG relative luminance for an sRGB color.
func luminance(r, g, b int) float64 {
	lin := func(c int) float64 {
		v := float64(c) / 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(r) + 0.7152*lin(g) + 0.0722*lin(b)
}

func contrast(l1, l2 float64) float64 {
	if l1 > l2 {
		return (l1 + 0.05) / (l2 + 0.05)
	}
	return (l2 + 0.05) / (l1 + 0.05)
}

// processTeamColors keeps a readable color pair: if the feed's pair has enough
// contrast it is returned as-is, otherwise the secondary becomes white or
// black, whichever contrasts more with the primary.
func processTeamColors(primaryHex, secondaryHex string) (string, string) {
	pr, pg, pb := rgbFromHex(primaryHex)
	sr, sg, sb := rgbFromHex(secondaryHex)

	primaryLum := luminance(pr, pg, pb)
	if contrast(primaryLum, luminance(sr, sg, sb)) > minContrast {
		return primaryHex, secondaryHex
	}
	whiteContrast := contrast(primaryLum, luminance(255, 255, 255))
	blackContrast := contrast(primaryLum, luminance(0, 0, 0))
	if whiteContrast > blackContrast {
		return primaryHex, "ffffff"
	}
	return primaryHex, "000000"
}
