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

package digitrec

// Tally is the outcome of a vote.
type Tally struct {
	// Digit is the winning class.
	Digit int

	// Counts[j] is how many of the K nearest neighbors came from class j.
	Counts [NumClasses]int

	// Scores[j] sums K-round over the rounds class j won, so nearer
	// neighbors weigh more.
	Scores [NumClasses]int
}

// Vote merges the per-class KBest arrays into the K nearest neighbors overall,
// where K is len(sets[0]), and returns the tally.
//
// Each round takes the smallest distance under any class's cursor, the
// lowest class winning ties, and advances that cursor. Voting stops early
// once every cursor is at an empty (Sentinel) slot, so a K larger than the
// training set counts only real neighbors. The winner is the class with the
// most neighbors, then the highest score, then the lowest index.
func Vote(sets *[NumClasses]KBest) Tally {
	var t Tally
	var cursor [NumClasses]int
	k := len(sets[0])

	for round := range k {
		best, bestDist := 0, Sentinel
		for j := range NumClasses {
			if d := head(sets[j], cursor[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
		if bestDist >= Sentinel {
			break
		}
		cursor[best]++
		t.Counts[best]++
		t.Scores[best] += k - round
	}

	t.Digit = t.Winner()
	return t
}

// head returns the distance under a cursor, or one past Sentinel once the
// array is exhausted.
func head(kb KBest, i int) int {
	if i >= len(kb) {
		return Sentinel + 1
	}
	return int(kb[i])
}

// Winner returns the class with the highest count, breaking ties by score
// and then by lowest index.
func (t *Tally) Winner() int {
	win := 0
	for j := 1; j < NumClasses; j++ {
		switch {
		case t.Counts[j] > t.Counts[win]:
			win = j
		case t.Counts[j] == t.Counts[win] && t.Scores[j] > t.Scores[win]:
			win = j
		}
	}
	return win
}
