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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/sparrowchess/engine/internal/types"
)

func TestResizeIsPowerOfTwoCapacity(t *testing.T) {
	tt := NewTtTable(1)
	assert.Equal(t, tt.Capacity()&(tt.Capacity()-1), uint64(0))
	assert.Greater(t, tt.Capacity(), uint64(0))
}

func TestPutAndExactProbeCutoff(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(Key(12345), Key(6789), NewMove(SqE2, SqE4), 5, Value(100), Exact)

	value, hasCutoff, move := tt.Probe(Key(12345), 5, Value(-1000), Value(1000))
	assert.True(t, hasCutoff)
	assert.Equal(t, Value(100), value)
	assert.Equal(t, NewMove(SqE2, SqE4), move)
}

func TestProbeMissesOnShallowerStoredDepth(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(Key(1), Key(2), NewMove(SqE2, SqE4), 2, Value(50), Exact)

	_, hasCutoff, move := tt.Probe(Key(1), 5, Value(-1000), Value(1000))
	assert.False(t, hasCutoff, "shallower stored depth must not cut off a deeper search")
	assert.Equal(t, NewMove(SqE2, SqE4), move, "best move still returned for ordering")
}

func TestLowerAndUpperBoundCutoffConditions(t *testing.T) {
	tt := NewTtTable(1)

	tt.Put(Key(1), 0, MoveNone, 4, Value(500), LowerBound)
	_, cut, _ := tt.Probe(Key(1), 4, Value(-1000), Value(400))
	assert.True(t, cut, "lower bound score >= beta must cut off")

	tt.Put(Key(2), 0, MoveNone, 4, Value(-500), UpperBound)
	_, cut, _ = tt.Probe(Key(2), 4, Value(-400), Value(1000))
	assert.True(t, cut, "upper bound score <= alpha must cut off")
}

func TestOrderingOnlyNeverCutsOff(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(Key(1), 0, NewMove(SqD2, SqD4), 10, Value(9999), OrderingOnly)

	_, cut, move := tt.Probe(Key(1), 0, Value(-20000), Value(20000))
	assert.False(t, cut)
	assert.Equal(t, NewMove(SqD2, SqD4), move)
}

func TestExactEntrySticky(t *testing.T) {
	tt := NewTtTable(1)
	key := Key(1)
	// Force both keys to the same slot by using the same key directly.
	tt.Put(key, 0, NewMove(SqE2, SqE4), 3, Value(10), Exact)
	tt.Put(key, 0, NewMove(SqD2, SqD4), 5, Value(20), LowerBound)

	_, _, move := tt.Probe(key, 0, Value(-1000), Value(1000))
	assert.Equal(t, NewMove(SqE2, SqE4), move, "exact entry must not be overwritten by a non-exact write")
}

func TestZeroSizeTableNeverStores(t *testing.T) {
	tt := NewTtTable(0)
	tt.Put(Key(1), 0, NewMove(SqE2, SqE4), 5, Value(10), Exact)
	_, cut, move := tt.Probe(Key(1), 0, Value(-1000), Value(1000))
	assert.False(t, cut)
	assert.Equal(t, MoveNone, move)
}
