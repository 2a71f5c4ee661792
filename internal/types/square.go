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

// Package types holds the shared, allocation-free value types used across
// the engine: squares, bitboards, pieces, moves, castling rights, and the
// precomputed geometry (leaper attacks, magic-bitboard slider attacks,
// Zobrist keys, piece-square tables) built once at process start.
package types

import "fmt"

// Square is an index in [0, 64). A1=0, H1=7, A8=56, H8=63 (rank-major,
// files A to H).
type Square int8

// File is a board file, A through H.
type File int8

// Rank is a board rank, 1 through 8.
type Rank int8

// Direction is a step between squares expressed in units of Square.
type Direction int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileLength
	FileNone = FileLength
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankLength
	RankNone = RankLength
)

const (
	SqA1 Square = iota
	SqB1, SqC1, SqD1, SqE1, SqF1, SqG1, SqH1
	SqA2, SqB2, SqC2, SqD2, SqE2, SqF2, SqG2, SqH2
	SqA3, SqB3, SqC3, SqD3, SqE3, SqF3, SqG3, SqH3
	SqA4, SqB4, SqC4, SqD4, SqE4, SqF4, SqG4, SqH4
	SqA5, SqB5, SqC5, SqD5, SqE5, SqF5, SqG5, SqH5
	SqA6, SqB6, SqC6, SqD6, SqE6, SqF6, SqG6, SqH6
	SqA7, SqB7, SqC7, SqD7, SqE7, SqF7, SqG7, SqH7
	SqA8, SqB8, SqC8, SqD8, SqE8, SqF8, SqG8, SqH8
	SqLength
	SqNone = SqLength
)

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = 9
	Southeast Direction = -7
	Northwest Direction = 7
	Southwest Direction = -9
)

// SquareOf combines a file and rank into a square index.
func SquareOf(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// IsValid reports whether the square lies on the board.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqLength
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(int8(sq) & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(int8(sq) >> 3)
}

// To steps the square one unit in the given direction. Callers must
// check IsValid on the result; off-board steps wrap unless guarded by
// the caller (geometry tables are precomputed with edge masks so this
// is only used directly during table generation, move generation and
// make/undo, all of which know their steps stay on-board).
func (sq Square) To(d Direction) Square {
	return sq + Square(d)
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	if df < 0 {
		df = -df
	}
	dr := int(a.RankOf()) - int(b.RankOf())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

var squareNames = [SqLength]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String returns the algebraic name of the square, or "-" for SqNone.
func (sq Square) String() string {
	if sq < SqA1 || sq >= SqLength {
		return "-"
	}
	return squareNames[sq]
}

// MakeSquare parses an algebraic square like "e4". Returns SqNone if
// the string is not a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return SquareOf(File(f-'a'), Rank(r-'1'))
}

// Bb returns the file as a Bitboard mask.
func (f File) Bb() Bitboard {
	return fileBb[f]
}

// Bb returns the rank as a Bitboard mask.
func (r Rank) Bb() Bitboard {
	return rankBb[r]
}

func (f File) String() string {
	if f < FileA || f >= FileLength {
		return "-"
	}
	return string(rune('a' + f))
}

func (r Rank) String() string {
	if r < Rank1 || r >= RankLength {
		return "-"
	}
	return fmt.Sprintf("%d", int(r)+1)
}
