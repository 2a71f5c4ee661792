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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparrowchess/engine/internal/position"
	. "github.com/sparrowchess/engine/internal/types"
)

func TestStartPositionMoveCount(t *testing.T) {
	p := position.NewPosition()
	moves := GenerateMoves(p)
	assert.Equal(t, 20, moves.Len())
}

func TestCapturesAreSubsetOfAllMoves(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	all := GenerateMoves(p)
	captures := GenerateCaptures(p)

	allSet := map[Move]int{}
	for i := 0; i < all.Len(); i++ {
		allSet[all.At(i)]++
	}
	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)
		require.Greater(t, allSet[m], 0, "capture %s missing from full move list", m.String())
		allSet[m]--
		assert.True(t, p.IsCapturingMove(m), "non-capturing move %s returned by GenerateCaptures", m.String())
	}
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	p, err := position.NewPositionFen("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	moves := GenerateMoves(p)
	count := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).From() == SqA7 {
			count++
		}
	}
	assert.Equal(t, 4, count)
}

func TestEnPassantGenerated(t *testing.T) {
	p, err := position.NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	captures := GenerateCaptures(p)
	found := false
	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)
		if m.MoveType() == EnPassant {
			found = true
			assert.Equal(t, SqD6, m.To())
		}
	}
	assert.True(t, found, "en passant capture not generated")
}

func TestCastlingNotGeneratedThroughCheck(t *testing.T) {
	// Black rook on f8 covers f1, the square the white king must pass
	// through on its way to g1.
	p, err := position.NewPositionFen("4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	moves := GenerateMoves(p)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, Castling, moves.At(i).MoveType())
	}
}

func TestHasLegalMoveFalseOnStalemate(t *testing.T) {
	p, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, HasLegalMove(p))
}

func TestMoveFromUci(t *testing.T) {
	p := position.NewPosition()
	m := MoveFromUci(p, "e2e4")
	require.NotEqual(t, MoveNone, m)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())

	assert.Equal(t, MoveNone, MoveFromUci(p, "z9z9"))
}
