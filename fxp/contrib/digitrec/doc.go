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

// Package digitrec recognizes handwritten digits on a 7×7 binary grid with a
// k-nearest-neighbor vote over Hamming distance.
//
// A [Digit] packs the 49 pixels into the low bits of a uint64. Classification
// runs in two steps:
//
//  1. For each of the ten classes, scan every training instance and keep the
//     K smallest Hamming distances to the query in an ascending [KBest].
//  2. Merge the ten KBest arrays to find the K nearest neighbors overall.
//     The class contributing most of them wins; ties go to the class whose
//     neighbors ranked closer, then to the lower digit.
//
// The training set is caller-owned, immutable data:
//
//	set, err := digitrec.ParseTrainingSet(f)
//	if err != nil {
//	    return err
//	}
//	c, err := digitrec.New(set, digitrec.WithK(3))
//	if err != nil {
//	    return err
//	}
//	d, err := c.Classify(query)
//
// A Classifier holds no per-call state, so Classify is safe for concurrent
// use. [WithPool] spreads the ten per-class scans over a worker pool.
package digitrec
