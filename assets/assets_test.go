package assets

import (
	"image"
	"image/color"
	"testing"

	cfg "github.com/automoto/tenagra/config"
	"github.com/pixil98/go-testutil"
)

func TestFrameRect(t *testing.T) {
	def := cfg.SheetDef{FrameWidth: 128, FrameHeight: 64, Columns: 2, Rows: 4}

	tests := map[string]struct {
		index int
		exp   image.Rectangle
	}{
		"first":      {index: 0, exp: image.Rect(0, 0, 128, 64)},
		"second col": {index: 1, exp: image.Rect(128, 0, 256, 64)},
		"second row": {index: 2, exp: image.Rect(0, 64, 128, 128)},
		"last":       {index: 7, exp: image.Rect(128, 192, 256, 256)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "rect", FrameRect(def, tt.index), tt.exp)
		})
	}
}

func TestFrameRectNoColumns(t *testing.T) {
	testutil.AssertEqual(t, "rect", FrameRect(cfg.SheetDef{}, 3), image.Rectangle{})
}

func TestCheckSheet(t *testing.T) {
	def := cfg.SheetDef{FrameWidth: 128, FrameHeight: 64, Columns: 2, Rows: 4}

	tests := map[string]struct {
		bounds image.Rectangle
		def    cfg.SheetDef
		expErr string
	}{
		"exact fit": {
			bounds: image.Rect(0, 0, 256, 256),
			def:    def,
		},
		"larger sheet": {
			bounds: image.Rect(0, 0, 300, 300),
			def:    def,
		},
		"too narrow": {
			bounds: image.Rect(0, 0, 128, 256),
			def:    def,
			expErr: "need at least 256x256",
		},
		"too short": {
			bounds: image.Rect(0, 0, 256, 200),
			def:    def,
			expErr: "need at least 256x256",
		},
		"bad definition": {
			bounds: image.Rect(0, 0, 256, 256),
			def:    cfg.SheetDef{FrameWidth: 128, FrameHeight: 64},
			expErr: "invalid sheet definition",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := CheckSheet(tt.bounds, tt.def)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestShade(t *testing.T) {
	base := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	testutil.AssertEqual(t, "first", shade(base, 0, 8), base)
	testutil.AssertEqual(t, "last", shade(base, 7, 8), color.RGBA{R: 100, G: 50, B: 25, A: 255})
	testutil.AssertEqual(t, "single", shade(base, 0, 1), base)
}
