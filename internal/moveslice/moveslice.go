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

// Package moveslice provides helper functionality for slices of Move.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/sparrowchess/engine/internal/types"
)

// MoveSlice is a growable slice of Move with a few convenience methods
// geared towards move generation and search move ordering.
type MoveSlice []Move

// NewMoveSlice creates a new, empty move slice with the given capacity.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends a move at the end of the slice.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i. Panics if out of bounds.
func (ms *MoveSlice) At(i int) Move {
	return (*ms)[i]
}

// Clear empties the slice while retaining its capacity, useful when the
// same slice is reused at high frequency to avoid GC churn.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Clone copies the slice into a newly allocated MoveSlice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals reports whether both slices contain the same moves in the same
// order.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if m != (*other)[i] {
			return false
		}
	}
	return true
}

// SortByKey sorts the moves in descending order of the given per-move
// key, one key per move at the same index. Uses a stable insertion sort:
// move lists are short (rarely more than ~40 moves) and, after the first
// few plies, already close to sorted thanks to TT move ordering, which
// is exactly the case insertion sort is fastest for.
func (ms *MoveSlice) SortByKey(key []int) {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tm, tk := (*ms)[i], key[i]
		j := i
		for j > 0 && key[j-1] < tk {
			(*ms)[j] = (*ms)[j-1]
			key[j] = key[j-1]
			j--
		}
		(*ms)[j] = tm
		key[j] = tk
	}
}

// String renders the slice as a long-algebraic move list.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveList: [%d] { ", ms.Len()))
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
