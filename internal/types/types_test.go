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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitboardSetClearTest(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())
	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
	assert.Equal(t, 0, b.PopCount())
}

func TestBitboardPopLsb(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqA1)
	b.PushSquare(SqD4)
	b.PushSquare(SqH8)
	require.Equal(t, 3, b.PopCount())
	assert.Equal(t, SqA1, b.PopLsb())
	assert.Equal(t, SqD4, b.PopLsb())
	assert.Equal(t, SqH8, b.PopLsb())
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestSquareOfAndBack(t *testing.T) {
	for sq := SqA1; sq < SqLength; sq++ {
		f := sq.FileOf()
		r := sq.RankOf()
		assert.Equal(t, sq, SquareOf(f, r))
	}
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqNone, MakeSquare("z9"))
}

func TestPieceRoundTrip(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			assert.Equal(t, c, p.ColorOf())
			assert.Equal(t, pt, p.TypeOf())
		}
	}
}

func TestMoveEncoding(t *testing.T) {
	m := NewMove(SqE2, SqE4)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Normal, m.MoveType())
	assert.Equal(t, "e2e4", m.StringUci())

	pm := NewPromotionMove(SqE7, SqE8, Queen)
	assert.Equal(t, Promotion, pm.MoveType())
	assert.Equal(t, Queen, pm.PromotionType())
	assert.Equal(t, "e7e8q", pm.StringUci())
}

// TestMagicAttacksMatchBruteForce cross-checks the magic-bitboard lookup
// against a brute-force ray walk for a handful of occupancies, per
// square, for both slider geometries.
func TestMagicAttacksMatchBruteForce(t *testing.T) {
	occupancies := []Bitboard{
		BbZero,
		SqD4.Bb() | SqD6.Bb() | SqB4.Bb() | SqF4.Bb(),
		SqA1.Bb() | SqH8.Bb() | SqE4.Bb(),
	}
	for sq := SqA1; sq < SqLength; sq += 7 {
		for _, occ := range occupancies {
			rookDirs := [4]Direction{North, South, East, West}
			bishopDirs := [4]Direction{Northeast, Southeast, Northwest, Southwest}
			assert.Equal(t, slidingAttack(&rookDirs, sq, occ), GetAttacksBb(Rook, sq, occ))
			assert.Equal(t, slidingAttack(&bishopDirs, sq, occ), GetAttacksBb(Bishop, sq, occ))
		}
	}
}

func TestPawnAttacksDirectional(t *testing.T) {
	assert.True(t, GetPawnAttacks(White, SqE4).Has(SqD5))
	assert.True(t, GetPawnAttacks(White, SqE4).Has(SqF5))
	assert.False(t, GetPawnAttacks(White, SqE4).Has(SqD3))
	assert.True(t, GetPawnAttacks(Black, SqE4).Has(SqD3))
	assert.True(t, GetPawnAttacks(Black, SqE4).Has(SqF3))
}

func TestCastlingRightsLostBySquare(t *testing.T) {
	assert.Equal(t, CastlingWhite, GetCastlingRights(SqE1))
	assert.Equal(t, CastlingWhiteOO, GetCastlingRights(SqH1))
	assert.Equal(t, CastlingWhiteOOO, GetCastlingRights(SqA1))
}

func TestEvalSymmetryOfPstMirroring(t *testing.T) {
	// pawn on e4 for White should equal pawn on e5 for Black (vertical mirror)
	white := PieceSquareBonus(WhitePawn, SqE4)
	black := PieceSquareBonus(BlackPawn, SqE5)
	assert.Equal(t, white, black)
}
