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

// Package transpositiontable implements a fixed-capacity hash table
// caching search results keyed by Zobrist key, indexed by key-mod-
// capacity (no open addressing: collisions overwrite per replacement
// policy). Not safe for concurrent use.
package transpositiontable

import (
	"math"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/sparrowchess/engine/internal/logging"
	. "github.com/sparrowchess/engine/internal/types"
)

var log *logging.Logger
var out = message.NewPrinter(language.German)

func init() {
	log = myLogging.GetLog("tt")
}

const bytesPerMB = 1024 * 1024

// MaxSizeInMB is the largest table size this engine will allocate.
const MaxSizeInMB = 65_536

// TtTable is the transposition table. Create with NewTtTable.
type TtTable struct {
	data       []TtEntry
	capacity   uint64
	sizeInByte uint64
	Stats      TtStats
}

// TtStats holds running counters on table usage, reported with search
// statistics.
type TtStats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// NewTtTable creates a table sized to the largest power-of-two entry
// count that fits within sizeInMByte.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize reallocates the table to fit within sizeInMByte, clearing all
// entries. Not safe to call concurrently with Probe/Put.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		log.Warningf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	sizeInByte := uint64(sizeInMByte) * bytesPerMB
	capacity := uint64(0)
	if sizeInByte >= TtEntrySize {
		capacity = uint64(1) << uint64(math.Floor(math.Log2(float64(sizeInByte/TtEntrySize))))
	}

	tt.capacity = capacity
	tt.sizeInByte = capacity * TtEntrySize
	tt.data = make([]TtEntry, capacity)
	tt.Stats = TtStats{}

	log.Info(out.Sprintf("tt resized to %d MB, %d entries (%d bytes each)",
		tt.sizeInByte/bytesPerMB, tt.capacity, TtEntrySize))
}

// Clear empties every entry without changing capacity.
func (tt *TtTable) Clear() {
	for i := range tt.data {
		tt.data[i] = TtEntry{}
	}
	tt.Stats = TtStats{}
}

func (tt *TtTable) index(key Key) uint64 {
	return uint64(key) % tt.capacity
}

// Probe looks up key and, per spec §4.5, reports a cutoff score only
// when the stored depth is at least remainingDepth and the node kind
// permits a cutoff within [alpha, beta]. The stored best move (if any)
// is always returned for move ordering, even when no cutoff applies.
func (tt *TtTable) Probe(key Key, remainingDepth int, alpha, beta Value) (cutoff Value, hasCutoff bool, bestMove Move) {
	if tt.capacity == 0 {
		return 0, false, MoveNone
	}
	tt.Stats.Probes++
	e := &tt.data[tt.index(key)]
	if e.isEmpty() || e.key != key {
		tt.Stats.Misses++
		return 0, false, MoveNone
	}
	tt.Stats.Hits++
	bestMove = e.move

	if int(e.depth) < remainingDepth {
		return 0, false, bestMove
	}
	switch e.kind {
	case Exact:
		return e.value, true, bestMove
	case LowerBound:
		if e.value >= beta {
			return e.value, true, bestMove
		}
	case UpperBound:
		if e.value <= alpha {
			return e.value, true, bestMove
		}
	}
	return 0, false, bestMove
}

// GetEntry returns a pointer to the raw entry for key, or nil if the
// slot is empty or holds a different position. Used by PV reconstruction
// to walk next-position keys forward.
func (tt *TtTable) GetEntry(key Key) *TtEntry {
	if tt.capacity == 0 {
		return nil
	}
	e := &tt.data[tt.index(key)]
	if e.isEmpty() || e.key != key {
		return nil
	}
	return e
}

// Put stores a search result. Per spec §4.5, an Exact entry already
// occupying the slot is sticky against a non-Exact incoming write.
func (tt *TtTable) Put(key, nextPositionKey Key, move Move, depth int8, value Value, kind NodeKind) {
	if tt.capacity == 0 {
		return
	}
	tt.Stats.Puts++
	e := &tt.data[tt.index(key)]

	if !e.isEmpty() && e.key != key {
		tt.Stats.Collisions++
	}
	if !e.isEmpty() && e.kind == Exact && kind != Exact {
		return
	}
	if !e.isEmpty() {
		tt.Stats.Overwrites++
	}

	e.key = key
	e.nextPositionKey = nextPositionKey
	e.move = move
	e.depth = depth
	e.value = value
	e.kind = kind
}

// Capacity returns the number of slots in the table.
func (tt *TtTable) Capacity() uint64 { return tt.capacity }

// SizeInMB returns the actual memory footprint of the table in
// megabytes, which may be smaller than requested (rounded down to a
// power-of-two entry count).
func (tt *TtTable) SizeInMB() uint64 { return tt.sizeInByte / bytesPerMB }
