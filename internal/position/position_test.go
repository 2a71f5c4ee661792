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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/sparrowchess/engine/internal/types"
)

func TestNewPositionStartFen(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFen, p.Fen())
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, Value(0), p.Material(White)-p.Material(Black))
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestInvalidFenReturnsError(t *testing.T) {
	_, err := NewPositionFen("not a fen at all")
	assert.Error(t, err)

	_, err = NewPositionFen("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err, "position with no kings must be rejected")
}

func TestMakeMoveUndoMoveRestoresState(t *testing.T) {
	p := NewPosition()
	fenBefore := p.Fen()
	keyBefore := p.ZobristKey()

	ok := p.MakeMove(NewMove(SqE2, SqE4))
	require.True(t, ok)
	assert.NotEqual(t, fenBefore, p.Fen())

	p.UndoMove()
	assert.Equal(t, fenBefore, p.Fen())
	assert.Equal(t, keyBefore, p.ZobristKey())
}

func TestMakeMoveSelfRevertsOnIllegalMove(t *testing.T) {
	// A black rook on e8 pins the white rook on e2 to its king: moving
	// the rook off the e-file exposes white's own king to check, so
	// MakeMove must self-revert.
	p, err := NewPositionFen("4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	fenBefore := p.Fen()
	keyBefore := p.ZobristKey()

	ok := p.MakeMove(NewMove(SqE2, SqA2))
	assert.False(t, ok)
	assert.Equal(t, fenBefore, p.Fen())
	assert.Equal(t, keyBefore, p.ZobristKey())
}

func TestMaterialConsistencyAfterQuietMove(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)
	materialBefore := p.Material(White) + p.Material(Black)

	ok := p.MakeMove(NewMove(SqD1, SqH5))
	require.True(t, ok)
	assert.Equal(t, materialBefore, p.Material(White)+p.Material(Black))

	p.UndoMove()
	assert.Equal(t, materialBefore, p.Material(White)+p.Material(Black))
}

func TestEnPassantCaptureAndUndo(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	fenBefore := p.Fen()

	ok := p.MakeMove(NewEnPassantMove(SqE5, SqD6))
	require.True(t, ok)
	assert.Equal(t, PieceNone, p.GetPiece(SqD5), "captured pawn must be removed")
	assert.Equal(t, WhitePawn, p.GetPiece(SqD6))

	p.UndoMove()
	assert.Equal(t, fenBefore, p.Fen())
}

func TestCastlingMovesRookAndUpdatesRights(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	ok := p.MakeMove(NewCastlingMove(SqE1, SqG1))
	require.True(t, ok)
	assert.Equal(t, WhiteRook, p.GetPiece(SqF1))
	assert.Equal(t, PieceNone, p.GetPiece(SqH1))
	assert.False(t, p.CastlingRights().Has(CastlingWhite))

	p.UndoMove()
	assert.Equal(t, WhiteRook, p.GetPiece(SqH1))
	assert.True(t, p.CastlingRights().Has(CastlingWhiteOO))
}

func TestPromotionAndUndo(t *testing.T) {
	p, err := NewPositionFen("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)

	ok := p.MakeMove(NewPromotionMove(SqA7, SqA8, Queen))
	require.True(t, ok)
	assert.Equal(t, WhiteQueen, p.GetPiece(SqA8))

	p.UndoMove()
	assert.Equal(t, WhitePawn, p.GetPiece(SqA7))
	assert.Equal(t, PieceNone, p.GetPiece(SqA8))
}

func TestIsRepetition(t *testing.T) {
	p := NewPosition()
	// Shuffle knights out and back twice: the start position then occurs
	// for the third time, i.e. twice earlier in the history.
	moves := []Move{
		NewMove(SqG1, SqF3), NewMove(SqG8, SqF6),
		NewMove(SqF3, SqG1), NewMove(SqF6, SqG8),
		NewMove(SqG1, SqF3), NewMove(SqG8, SqF6),
		NewMove(SqF3, SqG1), NewMove(SqF6, SqG8),
	}
	for _, m := range moves {
		require.True(t, p.MakeMove(m))
	}
	assert.True(t, p.IsRepetition(2))
}

func TestEvalSymmetryAtQuietRoot(t *testing.T) {
	white, err := NewPositionFen("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/2N5/PPPP1PPP/R1BQKBNR w KQkq - 2 3")
	require.NoError(t, err)
	black, err := NewPositionFen("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/2N5/PPPP1PPP/R1BQKBNR b KQkq - 2 3")
	require.NoError(t, err)
	assert.Equal(t, white.Eval(), -black.Eval())
}

func TestHasInsufficientMaterial(t *testing.T) {
	kk, err := NewPositionFen("8/8/4k3/8/8/3K4/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, kk.HasInsufficientMaterial())

	knk, err := NewPositionFen("8/8/4k3/8/8/3KN3/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, knk.HasInsufficientMaterial())

	krk, err := NewPositionFen("8/8/4k3/8/8/3KR3/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, krk.HasInsufficientMaterial())
}
