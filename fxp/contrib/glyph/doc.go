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

// Package glyph turns images into 7×7 digit bitmaps and synthesizes digit
// training sets from the Go fonts.
//
// The digit classifier works on tiny binary grids. This package supplies
// them: [ToDigit] crops an image to its ink, pads it square, downsamples it
// to 7×7 with a bilinear filter and thresholds the result. [TrainingSet]
// renders '0' through '9' in several Go font faces and sizes and runs each
// glyph through the same path, giving a training set with no external data:
//
//	set, err := glyph.TrainingSet(12)
//	if err != nil {
//	    return err
//	}
//	c, _ := digitrec.New(set)
//
// [Decode] reads PNG, GIF, JPEG and BMP files. An *image.Alpha is read as ink
// coverage; any other image is read as dark ink on a light background.
package glyph
