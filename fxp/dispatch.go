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

import (
	"os"
	"strconv"
)

// PopCountLevel identifies the population count implementation in use.
type PopCountLevel int

const (
	// PopCountScalar is the portable shift-and-add loop.
	PopCountScalar PopCountLevel = iota

	// PopCountHardware uses the CPU's population count instruction.
	PopCountHardware
)

// String returns a human-readable name for the level.
func (l PopCountLevel) String() string {
	switch l {
	case PopCountScalar:
		return "scalar"
	case PopCountHardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// currentPopCount is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentPopCount PopCountLevel

// CurrentPopCount returns the population count implementation being used.
func CurrentPopCount() PopCountLevel {
	return currentPopCount
}

// NoHardwarePopCountEnv checks if the FXP_NO_HWPOPCNT environment variable is
// set. When set, the scalar loop is used regardless of CPU capabilities.
func NoHardwarePopCountEnv() bool {
	val := os.Getenv("FXP_NO_HWPOPCNT")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setPopCountLevel installs the implementation for level.
func setPopCountLevel(level PopCountLevel) {
	currentPopCount = level
	switch level {
	case PopCountHardware:
		popCount64 = popCount64Hardware
	default:
		popCount64 = popCount64Scalar
	}
}
