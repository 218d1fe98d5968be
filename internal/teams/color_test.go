package teams

import "testing"

func TestProcessTeamColorsKeepsContrastingPair(t *testing.T) {
	primary, secondary := processTeamColors("000000", "ffffff")
	if primary != "000000" || secondary != "ffffff" {
		t.Fatalf("got %q/%q, want pair kept", primary, secondary)
	}
}

func TestProcessTeamColorsReplacesLowContrastSecondary(t *testing.T) {
	cases := []struct {
		name          string
		primary       string
		secondary     string
		wantSecondary string
	}{
		{"dark on dark gets white", "101010", "202020", "ffffff"},
		{"light on light gets black", "fefefe", "eeeeee", "000000"},
		{"same color gets replaced", "3366cc", "3366cc", "ffffff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			primary, secondary := processTeamColors(tc.primary, tc.secondary)
			if primary != tc.primary {
				t.Fatalf("primary changed to %q", primary)
			}
			if secondary != tc.wantSecondary {
				t.Fatalf("secondary = %q, want %q", secondary, tc.wantSecondary)
			}
		})
	}
}

func TestRGBFromHexMalformed(t *testing.T) {
	r, g, b := rgbFromHex("xyz")
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("malformed hex should read as black, got %d/%d/%d", r, g, b)
	}
}

func TestContrastIsSymmetric(t *testing.T) {
	l1 := luminance(255, 255, 255)
	l2 := luminance(0, 0, 0)
	if contrast(l1, l2) != contrast(l2, l1) {
		t.Fatal("contrast must not depend on argument order")
	}
	// White on black is the maximum WCAG ratio of 21.
	if got := contrast(l1, l2); got < 20.9 || got > 21.1 {
		t.Fatalf("white/black contrast = %f, want ~21", got)
	}
}
