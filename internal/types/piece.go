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

// Color is White or Black.
type Color int8

const (
	White Color = iota
	Black
	ColorLength
	ColorNone = ColorLength
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// MoveDirection returns the direction a pawn of this color advances.
func (c Color) MoveDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// PromotionRankBb returns the rank a pawn of this color promotes on.
func (c Color) PromotionRankBb() Bitboard {
	if c == White {
		return Rank8.Bb()
	}
	return Rank1.Bb()
}

// PawnDoubleRank returns the rank a pawn of this color lands on after a
// single step from its start rank - the rank from which a second step
// forward is a legal double-push.
func (c Color) PawnDoubleRank() Bitboard {
	if c == White {
		return Rank3.Bb()
	}
	return Rank6.Bb()
}

// PieceType is a piece kind without color.
type PieceType int8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

// ValueOf returns the material value of the piece type in centipawns.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// GamePhaseValue returns the contribution of one piece of this type to
// the 0..GamePhaseMax game-phase counter.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

var pieceTypeValue = [PtLength]Value{0, 100, 320, 330, 500, 900, 0}
var gamePhaseValue = [PtLength]int{0, 0, 1, 1, 2, 4, 0}

// GamePhaseMax is the game-phase value of the initial position: 2N+2B+2R+Q
// per side is 1+1+1+1+2+2+4 = 12, times two sides.
const GamePhaseMax = 24

var ptChar = [PtLength]string{"", "P", "N", "B", "R", "Q", "K"}

func (pt PieceType) String() string {
	return ptChar[pt]
}

// Piece is a (color, piece type) pair packed into a single small value:
// Piece = color*8 + pieceType, so PieceNone==0 and all white pieces are
// < 8, separating color with a single shift/mask.
type Piece int8

const (
	PieceNone Piece = 0
)

const (
	WhitePawn Piece = iota + 1
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
)

const (
	BlackPawn Piece = iota + 9
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// MakePiece combines a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(int8(c)*8 + int8(pt))
}

// ColorOf returns the color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	if p >= 9 {
		return Black
	}
	return White
}

// TypeOf returns the piece type, dropping color.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	if p >= 9 {
		return PieceType(p - 8)
	}
	return PieceType(p)
}

var pieceChars = map[Piece]string{
	PieceNone:   "-",
	WhitePawn:   "P", WhiteKnight: "N", WhiteBishop: "B",
	WhiteRook: "R", WhiteQueen: "Q", WhiteKing: "K",
	BlackPawn: "p", BlackKnight: "n", BlackBishop: "b",
	BlackRook: "r", BlackQueen: "q", BlackKing: "k",
}

// String returns the FEN character for the piece.
func (p Piece) String() string {
	return pieceChars[p]
}

// Char is an alias of String kept for board-printing symmetry with the
// piece-type/color accessors.
func (p Piece) Char() string {
	return pieceChars[p]
}

var pieceFromChar = map[string]Piece{
	"P": WhitePawn, "N": WhiteKnight, "B": WhiteBishop, "R": WhiteRook, "Q": WhiteQueen, "K": WhiteKing,
	"p": BlackPawn, "n": BlackKnight, "b": BlackBishop, "r": BlackRook, "q": BlackQueen, "k": BlackKing,
}

// PieceFromChar parses a FEN piece letter. Returns PieceNone if unknown.
func PieceFromChar(s string) Piece {
	if p, ok := pieceFromChar[s]; ok {
		return p
	}
	return PieceNone
}
