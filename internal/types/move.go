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

// MoveType distinguishes the four shapes a move can take. Promotion is
// always a distinct move type from a plain pawn push/capture - a pawn
// reaching the last rank is represented as four separate Promotion moves
// (one per promotion piece type), never as a Normal move with a
// "promotion=None" sentinel.
type MoveType int8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// Move packs from-square, to-square, move type, and (for Promotion)
// the promotion piece type into a 16-bit value:
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-13: move type
//	bits 14-15: promotion piece type offset (Knight=0 .. Queen=3)
type Move uint16

// MoveNone is the zero value, never a valid move.
const MoveNone Move = 0

var promoPieceByBits = [4]PieceType{Knight, Bishop, Rook, Queen}
var promoBitsByPiece = map[PieceType]uint16{Knight: 0, Bishop: 1, Rook: 2, Queen: 3}

// NewMove creates a Normal move.
func NewMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(Normal)<<12)
}

// NewPromotionMove creates a Promotion move to the given piece type.
func NewPromotionMove(from, to Square, promo PieceType) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(Promotion)<<12 | promoBitsByPiece[promo]<<14)
}

// NewEnPassantMove creates an en-passant capture move.
func NewEnPassantMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(EnPassant)<<12)
}

// NewCastlingMove creates a castling move (king's from/to squares; the
// rook's movement is implied by the destination square).
func NewCastlingMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(Castling)<<12)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// MoveType returns the move's type.
func (m Move) MoveType() MoveType {
	return MoveType((m >> 12) & 0x3)
}

// PromotionType returns the promotion piece type, or PtNone if the move
// is not a Promotion move.
func (m Move) PromotionType() PieceType {
	if m.MoveType() != Promotion {
		return PtNone
	}
	return promoPieceByBits[(m>>14)&0x3]
}

// IsValid reports whether the move is non-zero and its squares differ.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From() != m.To()
}

// String renders the move in long algebraic form: <from><to>[promo].
func (m Move) String() string {
	return m.StringUci()
}

// StringUci renders the move the way the wire protocol expects it:
// lower-case files, ranks 1-8, promotion in {q,r,b,n}.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "-"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		switch m.PromotionType() {
		case Queen:
			s += "q"
		case Rook:
			s += "r"
		case Bishop:
			s += "b"
		case Knight:
			s += "n"
		}
	}
	return s
}
