// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package glyph

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face names one of the bundled Go fonts.
type Face int

const (
	Regular Face = iota
	Bold
	Medium
	Mono
	Italic
	BoldItalic

	numFaces
)

var faceNames = [numFaces]string{"regular", "bold", "medium", "mono", "italic", "bolditalic"}

// String returns the face name.
func (f Face) String() string {
	if f < 0 || f >= numFaces {
		return "unknown"
	}
	return faceNames[f]
}

var parsedFonts = sync.OnceValues(func() ([numFaces]*opentype.Font, error) {
	var fonts [numFaces]*opentype.Font
	for i, ttf := range [numFaces][]byte{
		goregular.TTF, gobold.TTF, gomedium.TTF, gomono.TTF, goitalic.TTF, gobolditalic.TTF,
	} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return fonts, fmt.Errorf("glyph: parse %s: %w", Face(i), err)
		}
		fonts[i] = f
	}
	return fonts, nil
})

// Render rasterizes r in the given face at size pixels per em and returns
// the coverage mask, cropped to the glyph bounds plus a one-pixel margin.
func Render(face Face, r rune, size float64) (*image.Alpha, error) {
	if face < 0 || face >= numFaces {
		return nil, fmt.Errorf("glyph: unknown face %d", face)
	}
	fonts, err := parsedFonts()
	if err != nil {
		return nil, err
	}

	otFace, err := opentype.NewFace(fonts[face], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: %s face at %v: %w", face, size, err)
	}
	defer func() {
		_ = otFace.Close()
	}()

	bounds, _, ok := otFace.GlyphBounds(r)
	if !ok {
		return nil, fmt.Errorf("glyph: %s has no glyph for %q", face, r)
	}

	// Bounds are relative to the dot on the baseline.
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, maxX-minX+2, maxY-minY+2))

	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: otFace,
		Dot:  fixed.P(1-minX, 1-minY),
	}
	d.DrawString(string(r))
	return mask, nil
}
