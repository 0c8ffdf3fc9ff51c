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

// Package fxp provides the fixed-point scalar type and bit operations shared by
// the kernels under fxp/contrib.
//
// # Fixed-Point Format
//
// [Fixed] is a signed two's-complement Q3.61 number stored in an int64: three
// integer bits (sign included) and 61 fractional bits, covering [-4, 4).
// Angles up to ±π and cosine/sine values share this one scale, so the CORDIC
// kernel never rescales between its inputs and outputs.
//
// Arithmetic on Fixed is plain integer arithmetic. Add, Sub and Shr preserve
// the binary point; overflow wraps and is the caller's responsibility.
//
// # Boundary Encoding
//
// Kernels exchange 64-bit values as two 32-bit words, low word first:
//
//	lo, hi := v.Words()
//	v2 := fxp.FromWords(lo, hi) // v2 == v
//
// [DecodeWords] and [DecodeBytes] validate the word or byte count and return
// [ErrInvalidInput] for malformed input.
//
// # Population Count Dispatch
//
// [PopCount64] uses the hardware population count instruction when the CPU
// reports one (POPCNT on amd64, CNT on arm64) and a portable shift-and-add
// loop otherwise. Set FXP_NO_HWPOPCNT=1 to force the portable loop:
//
//	FXP_NO_HWPOPCNT=1 go test ./...
//
// Both implementations return identical counts; the level only affects
// speed. [CurrentPopCount] reports which one is active.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to route debug output
// from fxp and its contrib packages to a [log/slog] logger.
package fxp
