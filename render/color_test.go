package render

import (
	"image/color"
	"testing"
)

func TestColorSpecResolve(t *testing.T) {
	tests := []struct {
		name    string
		spec    ColorSpec
		want    color.RGBA
		wantErr bool
	}{
		{"named", "red", color.RGBA{0xff, 0, 0, 0xff}, false},
		{"named upper case", "Red", color.RGBA{0xff, 0, 0, 0xff}, false},
		{"single letter", "g", color.RGBA{0, 0x80, 0, 0xff}, false},
		{"hex long", "#ff8800", color.RGBA{0xff, 0x88, 0, 0xff}, false},
		{"hex short", "#f80", color.RGBA{0xff, 0x88, 0, 0xff}, false},
		{"from RGB", RGB(1, 2, 3), color.RGBA{1, 2, 3, 0xff}, false},
		{"unknown name", "mauve-ish", color.RGBA{}, true},
		{"bad hex length", "#ff80", color.RGBA{}, true},
		{"bad hex digits", "#zzzzzz", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.spec.Resolve()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) succeeded, want error", tc.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tc.spec, err)
			}
			if got != tc.want {
				t.Errorf("Resolve(%q) = %v, want %v", tc.spec, got, tc.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{0xff, 0x88, 0x00, 0xff}); got != "#ff8800" {
		t.Errorf("Hex = %q, want #ff8800", got)
	}
}
