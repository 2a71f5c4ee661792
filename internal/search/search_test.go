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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparrowchess/engine/internal/position"
	"github.com/sparrowchess/engine/internal/transpositiontable"
	. "github.com/sparrowchess/engine/internal/types"
)

func newRun() (*transpositiontable.TtTable, *bool) {
	stop := false
	return transpositiontable.NewTtTable(4), &stop
}

func TestSearchFindsMateInTwo(t *testing.T) {
	p, err := position.NewPositionFen("2rr3k/pp3pp1/1nnqbN1p/3pN3/2pP4/2P3Q1/PPB4P/R4RK1 w - - 0 0")
	require.NoError(t, err)
	tt, stop := newRun()
	limits := NewLimits()
	limits.Depth = 4

	result := Search(p, tt, limits, DefaultParams(), stop, nil)
	require.True(t, IsMateScore(result.Value))
	assert.Equal(t, 2, MateIn(result.Value))
}

func TestSearchFindsMateInOne(t *testing.T) {
	p, err := position.NewPositionFen("2rr3k/pp3pp1/1nnqbNQp/3pN3/2pP4/2P5/PPB4P/R4RK1 b - - 1 1")
	require.NoError(t, err)
	tt, stop := newRun()
	limits := NewLimits()
	limits.Depth = 4

	result := Search(p, tt, limits, DefaultParams(), stop, nil)
	require.True(t, IsMateScore(result.Value))
	assert.Equal(t, 1, MateIn(result.Value))
}

func TestSearchDrawsByFiftyMoveRule(t *testing.T) {
	p, err := position.NewPositionFen("5k2/1p3p1p/p3pK1P/P1P1P3/4bP2/2B5/8/8 w - - 99 112")
	require.NoError(t, err)
	tt, stop := newRun()
	limits := NewLimits()
	limits.Depth = 3

	result := Search(p, tt, limits, DefaultParams(), stop, nil)
	assert.Equal(t, ValueDraw, result.Value)
}

func TestSearchReturnsNoResultWhenRootAlreadyFiftyMoveDrawn(t *testing.T) {
	p, err := position.NewPositionFen("5k2/1p3p1p/p3pK1P/P1P1P3/4bP2/2B5/8/8 w - - 100 112")
	require.NoError(t, err)
	tt, stop := newRun()
	limits := NewLimits()
	limits.Depth = 3

	result := Search(p, tt, limits, DefaultParams(), stop, nil)
	assert.Equal(t, MoveNone, result.BestMove)
}

func TestSearchReturnsBestMoveFromLastCompletedDepthOnly(t *testing.T) {
	p := position.NewPosition()
	tt, stop := newRun()
	limits := NewLimits()
	limits.Depth = 2

	var seen []int
	result := Search(p, tt, limits, DefaultParams(), stop, func(depth, selDepth int, value Value, nodes uint64, elapsed time.Duration, pv []Move) {
		seen = append(seen, depth)
	})
	require.NotEqual(t, MoveNone, result.BestMove)
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 2, result.Depth)
}

func TestSearchStopsImmediatelyWhenAlreadyStopped(t *testing.T) {
	p := position.NewPosition()
	tt, stop := newRun()
	*stop = true
	limits := NewLimits()
	limits.Depth = 5

	result := Search(p, tt, limits, DefaultParams(), stop, nil)
	assert.Equal(t, 1, result.Depth)
}
