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

import "errors"

var (
	// ErrInvalidInput reports a packed input that does not reconstruct a
	// valid value: wrong word or byte count, stray bits outside the value's
	// width, or an out-of-range parameter.
	ErrInvalidInput = errors.New("fxp: invalid input")

	// ErrDegenerateModel reports model data on which a kernel has no defined
	// result, such as a training class with zero instances.
	ErrDegenerateModel = errors.New("fxp: degenerate model")
)
