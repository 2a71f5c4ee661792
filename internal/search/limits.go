/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import "time"

// Limits describes how a search should be bounded: an explicit depth
// cap, or a time budget derived from a chess clock. Nodes is recorded
// from the protocol but Search does not stop on a node count.
type Limits struct {
	Infinite bool
	Depth    int
	Nodes    uint64

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
}

// NewLimits returns an empty Limits (infinite search until stopped).
func NewLimits() *Limits {
	return &Limits{}
}

// TimeBudget computes the wall-clock budget for the side to move per
// spec §4.8: remaining/40 + increment, less a safety margin of
// min(budget/10, 50ms).
func (l *Limits) TimeBudget(sideToMoveIsWhite bool) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	if !l.TimeControl {
		return 0
	}
	remaining, inc := l.BlackTime, l.BlackInc
	if sideToMoveIsWhite {
		remaining, inc = l.WhiteTime, l.WhiteInc
	}
	budget := remaining/40 + inc
	margin := budget / 10
	const maxMargin = 50 * time.Millisecond
	if margin > maxMargin {
		margin = maxMargin
	}
	budget -= margin
	if budget < 0 {
		budget = 0
	}
	return budget
}
