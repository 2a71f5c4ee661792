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

// CastlingRights is a 4-bit set of the four castling rights.
type CastlingRights uint8

const (
	CastlingWhiteOO CastlingRights = 1 << iota
	CastlingWhiteOOO
	CastlingBlackOO
	CastlingBlackOOO
	CastlingNone  CastlingRights = 0
	CastlingWhite                = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack                = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                  = CastlingWhite | CastlingBlack
)

// Add sets the given rights.
func (cr *CastlingRights) Add(r CastlingRights) {
	*cr |= r
}

// Remove clears the given rights.
func (cr *CastlingRights) Remove(r CastlingRights) {
	*cr &^= r
}

// Has reports whether all bits of r are set.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r
}

// castlingRightsLost maps a square touched by a move (as "from" or "to")
// to the castling rights it permanently invalidates: rook home squares
// invalidate one right, king home squares invalidate both of that color.
var castlingRightsLost = [SqLength]CastlingRights{}

func init() {
	castlingRightsLost[SqA1] = CastlingWhiteOOO
	castlingRightsLost[SqH1] = CastlingWhiteOO
	castlingRightsLost[SqE1] = CastlingWhite
	castlingRightsLost[SqA8] = CastlingBlackOOO
	castlingRightsLost[SqH8] = CastlingBlackOO
	castlingRightsLost[SqE8] = CastlingBlack
}

// GetCastlingRights returns the rights invalidated by a move touching sq.
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRightsLost[sq]
}

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteOO) {
		s += "K"
	}
	if cr.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if cr.Has(CastlingBlackOO) {
		s += "k"
	}
	if cr.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}

// Intermediate returns the bitboard of squares strictly between a and b
// on the same rank, file, or diagonal. Used to check castling paths are
// clear of blockers.
func Intermediate(a, b Square) Bitboard {
	var result Bitboard
	if a == b {
		return result
	}
	da := a.FileOf()
	db := b.FileOf()
	ra := a.RankOf()
	rb := b.RankOf()
	var d Direction
	switch {
	case ra == rb && da < db:
		d = East
	case ra == rb && da > db:
		d = West
	case da == db && ra < rb:
		d = North
	case da == db && ra > rb:
		d = South
	default:
		return result
	}
	for s := a.To(d); s != b; s = s.To(d) {
		result.PushSquare(s)
	}
	return result
}
