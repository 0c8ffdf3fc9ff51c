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

package fxp

import "math/bits"

// popCount64 is the active population count implementation.
// Set by init() in dispatch_*.go files.
var popCount64 = popCount64Scalar

// PopCount64 returns the number of set bits in x.
func PopCount64(x uint64) int {
	return popCount64(x)
}

// popCount64Hardware lowers to POPCNT on amd64 and CNT on arm64.
func popCount64Hardware(x uint64) int {
	return bits.OnesCount64(x)
}

// popCount64Scalar counts one bit per step, for CPUs without a population
// count instruction.
func popCount64Scalar(x uint64) int {
	n := 0
	for x != 0 {
		n += int(x & 1)
		x >>= 1
	}
	return n
}
