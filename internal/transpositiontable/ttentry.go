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

package transpositiontable

import (
	. "github.com/sparrowchess/engine/internal/types"
)

// NodeKind classifies how a stored score relates to the search window
// that produced it.
type NodeKind uint8

const (
	// OrderingOnly entries never cause a cutoff - they only seed move
	// ordering in the current node (used for quiescence-search entries).
	OrderingOnly NodeKind = iota
	// Exact entries store the true minimax score.
	Exact
	// LowerBound entries store a fail-high score (a cutoff at beta).
	LowerBound
	// UpperBound entries store a fail-low score (no move improved alpha).
	UpperBound
)

// TtEntrySize is the size in bytes of each TtEntry, used to translate a
// byte budget into a table capacity.
const TtEntrySize = 32

// TtEntry is one slot of the transposition table: the full Zobrist key
// used as a collision check (the spec's hardening addition - the
// teacher's own table trusts the index alone), the best move found, the
// Zobrist key of the position reached by playing that move (for PV
// reconstruction), the stored score, remaining search depth, and node
// kind.
type TtEntry struct {
	key             Key
	nextPositionKey Key
	move            Move
	value           Value
	depth           int8
	kind            NodeKind
}

// Key returns the full verification key stored for this entry.
func (e *TtEntry) Key() Key { return e.key }

// Move returns the best move stored for this entry, or MoveNone.
func (e *TtEntry) Move() Move { return e.move }

// Value returns the stored score.
func (e *TtEntry) Value() Value { return e.value }

// Depth returns the remaining search depth the entry was stored at.
func (e *TtEntry) Depth() int8 { return e.depth }

// Kind returns the entry's node kind.
func (e *TtEntry) Kind() NodeKind { return e.kind }

// NextPositionKey returns the Zobrist key of the position reached by
// playing Move() on the position this entry was stored for.
func (e *TtEntry) NextPositionKey() Key { return e.nextPositionKey }

// isEmpty reports whether the slot has never been written.
func (e *TtEntry) isEmpty() bool { return e.key == 0 }
