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

// Package cordic computes sine and cosine of a fixed-point angle with the
// CORDIC (COordinate Rotation DIgital Computer) algorithm: a fixed number of
// shift-and-add pseudo-rotations and no multiplication or division.
//
// The rotator starts from the vector (K, 0), where K ≈ 0.60725 cancels the
// length growth of the pseudo-rotations, and at step i turns it by
// ±atan(2^-i) toward the residual angle. After n steps the residual is
// bounded by atan(2^-(n-1)); with the default 20 steps the sine and cosine
// are accurate to about 2e-6.
//
// # Usage
//
//	s, c := cordic.Default.Rotate(fxp.FromFloat(math.Pi / 4))
//	fmt.Println(s.Float(), c.Float()) // ≈ 0.7071068 0.7071068
//
// The rotator converges for |theta| ≤ Σ atan(2^-i) ≈ 1.7433 rad. Larger
// angles are not rejected; they lose accuracy, and range reduction is up to
// the caller.
//
// # Table Generation
//
// The arctangent table and gain live in ctab.gen.go, produced by cmd/ctabgen:
//
//	//go:generate go run ../../../cmd/ctabgen -n 32 -pkg cordic -output ctab.gen.go
//
// # Accuracy Sweep
//
// [Sweep] reproduces the hardware test bench: it rotates every whole degree in
// a range and reports RMSE and maximum absolute error against [math.Sin] and
// [math.Cos].
package cordic

//go:generate go run ../../../cmd/ctabgen -n 32 -pkg cordic -output ctab.gen.go
