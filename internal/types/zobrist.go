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

// Key is a Zobrist hash key for a chess position. Needs the full 64 bits
// for good distribution across a large transposition table.
type Key uint64

// zobristTable holds one random key per (piece, square), one per side to
// move, one per castling-rights combination, and one per en-passant file.
// Built once at process start by initZobrist and read-only afterward.
type zobristTable struct {
	pieces         [16][SqLength]Key // indexed by Piece (0..15, only 1..6/9..14 used)
	nextPlayer     Key
	castlingRights [16]Key // indexed by CastlingRights (0..15)
	enPassantFile  [FileLength]Key
}

var zobristBase zobristTable

func initZobrist() {
	rng := newPrnG(0x9E3779B97F4A7C15) // fixed seed: reproducible tables
	for p := Piece(0); p < 16; p++ {
		for sq := SqA1; sq < SqLength; sq++ {
			zobristBase.pieces[p][sq] = Key(rng.rand64())
		}
	}
	zobristBase.nextPlayer = Key(rng.rand64())
	for cr := 0; cr < 16; cr++ {
		zobristBase.castlingRights[cr] = Key(rng.rand64())
	}
	for f := FileA; f < FileLength; f++ {
		zobristBase.enPassantFile[f] = Key(rng.rand64())
	}
}

// ZobristPiece returns the key contribution of a piece on a square.
func ZobristPiece(p Piece, sq Square) Key {
	return zobristBase.pieces[p][sq]
}

// ZobristSideToMove returns the key contribution toggled whenever the
// side to move changes.
func ZobristSideToMove() Key {
	return zobristBase.nextPlayer
}

// ZobristCastling returns the key contribution for a castling-rights
// combination.
func ZobristCastling(cr CastlingRights) Key {
	return zobristBase.castlingRights[cr]
}

// ZobristEnPassantFile returns the key contribution for an en-passant
// file.
func ZobristEnPassantFile(f File) Key {
	return zobristBase.enPassantFile[f]
}
