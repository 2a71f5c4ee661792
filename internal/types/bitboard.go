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
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with one bit per square.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbOne  Bitboard = 1
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF

	fileAMask Bitboard = 0xFEFEFEFEFEFEFEFE
	fileHMask Bitboard = 0x7F7F7F7F7F7F7F7F
	rank8Mask Bitboard = 0x00FFFFFFFFFFFFFF
	msbMask   Bitboard = 0x7FFFFFFFFFFFFFFF
)

var sqBb [SqLength]Bitboard
var fileBb [FileLength]Bitboard
var rankBb [RankLength]Bitboard

func init() {
	for sq := SqA1; sq < SqLength; sq++ {
		sqBb[sq] = BbOne << uint(sq)
	}
	for f := FileA; f < FileLength; f++ {
		var b Bitboard
		for r := Rank1; r <= Rank8; r++ {
			b |= sqBb[SquareOf(f, r)]
		}
		fileBb[f] = b
	}
	for r := Rank1; r < RankLength; r++ {
		var b Bitboard
		for f := FileA; f <= FileH; f++ {
			b |= sqBb[SquareOf(f, r)]
		}
		rankBb[r] = b
	}
}

// Bb returns the single-bit Bitboard for the square.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the square's bit.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sqBb[sq]
}

// PopSquare clears the square's bit.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sqBb[sq]
}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit, or SqNone if
// the bitboard is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the square of the least significant set bit and clears
// it from the bitboard.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// ShiftBitboard shifts every set bit of b one square in direction d,
// clearing bits that would otherwise wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (rank8Mask & b) << 8
	case South:
		return b >> 8
	case East:
		return (msbMask & b) << 1 & fileAMask
	case West:
		return (b >> 1) & fileHMask
	case Northeast:
		return (rank8Mask & b) << 9 & fileAMask
	case Southeast:
		return (b >> 7) & fileAMask
	case Northwest:
		return (b << 7) & fileHMask
	case Southwest:
		return (b >> 9) & fileHMask
	}
	return b
}

// String renders the bitboard as an 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
