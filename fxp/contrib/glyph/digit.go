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
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/ajroetker/go-fxkernels/fxp"
	"github.com/ajroetker/go-fxkernels/fxp/contrib/digitrec"
)

// DefaultThreshold is the ink level, out of 255, at which a downsampled
// pixel counts as set.
const DefaultThreshold = 0x60

// ToDigit converts img to a 7×7 bitmap. The ink's bounding box is centered in
// a square, scaled to 7×7 and thresholded. An image with no ink yields the
// empty bitmap.
func ToDigit(img image.Image, threshold uint8) digitrec.Digit {
	ink := inkMap(img)
	box := inkBounds(ink)
	if box.Empty() {
		return 0
	}

	side := max(box.Dx(), box.Dy())
	square := image.NewGray(image.Rect(0, 0, side, side))
	off := image.Pt((side-box.Dx())/2, (side-box.Dy())/2)
	draw.Draw(square, box.Sub(box.Min).Add(off), ink, box.Min, draw.Src)

	small := image.NewGray(image.Rect(0, 0, digitrec.Width, digitrec.Height))
	draw.BiLinear.Scale(small, small.Bounds(), square, square.Bounds(), draw.Src, nil)

	var d digitrec.Digit
	for r := range digitrec.Height {
		for c := range digitrec.Width {
			if small.GrayAt(c, r).Y >= threshold {
				d = d.Set(r, c)
			}
		}
	}
	return d
}

// inkMap returns the ink level of every pixel of img, 0 for background and
// 255 for full ink.
func inkMap(img image.Image) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	if a, ok := img.(*image.Alpha); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out.SetGray(x, y, color.Gray{Y: a.AlphaAt(x, y).A})
			}
		}
		return out
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// Composite over white, then invert the luminance.
			r, g, bl, a := img.At(x, y).RGBA()
			lum := (19595*r + 38470*g + 7471*bl + 1<<15) >> 16
			lum += 0xffff - a
			out.SetGray(x, y, color.Gray{Y: uint8((0xffff - min(lum, 0xffff)) >> 8)})
		}
	}
	return out
}

// inkBounds returns the smallest rectangle holding every non-zero pixel.
func inkBounds(m *image.Gray) image.Rectangle {
	var box image.Rectangle
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.GrayAt(x, y).Y != 0 {
				box = box.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return box
}

// Decode reads an image and converts it with DefaultThreshold.
func Decode(r io.Reader) (digitrec.Digit, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return 0, fmt.Errorf("glyph: decode image: %v: %w", err, fxp.ErrInvalidInput)
	}
	b := img.Bounds()
	fxp.Logger().Debug("glyph: image decoded", "format", format, "width", b.Dx(), "height", b.Dy())
	return ToDigit(img, DefaultThreshold), nil
}
