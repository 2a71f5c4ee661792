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

// Magic holds the fancy-magic-bitboard lookup data for one square and one
// slider geometry (straight or diagonal).
// Taken from Stockfish. License see https://stockfishchess.org/about/
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

var (
	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic
	rookTable    []Bitboard
	bishopTable  []Bitboard

	rookDirs   = [4]Direction{North, South, East, West}
	bishopDirs = [4]Direction{Northeast, Southeast, Northwest, Southwest}

	pseudoKnight [SqLength]Bitboard
	pseudoKing   [SqLength]Bitboard
	pseudoPawn   [ColorLength][SqLength]Bitboard
)

func initGeometry() {
	rookTable = make([]Bitboard, 102400)
	bishopTable = make([]Bitboard, 5248)
	initMagics(&rookTable, &rookMagics, &rookDirs)
	initMagics(&bishopTable, &bishopMagics, &bishopDirs)
	initLeapers()
}

// initMagics computes all rook- or bishop-like magic bitboards at
// startup, used to look up slider attacks. See
// https://www.chessprogramming.org/Magic_Bitboards ("fancy" approach).
// Taken from Stockfish.
func initMagics(table *[]Bitboard, magics *[SqLength]Magic, directions *[4]Direction) {
	// Optimal PrnG seeds to pick the correct magics in the shortest time.
	seeds := [int(RankLength)]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var edges, b Bitboard
	cnt := 0
	size := 0

	for sq := SqA1; sq < SqLength; sq++ {
		edges = ((rankBb[Rank1] | rankBb[Rank8]) &^ sq.RankOf().Bb()) | ((fileBb[FileA] | fileBb[FileH]) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Carry-Rippler trick to enumerate all subsets of mask.
		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])

		for i := 0; i < size; {
			for m.Magic = 0; ; {
				m.Magic = Bitboard(rng.sparseRand())
				if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack computes the attack set along the given directions from
// sq on a board with the given occupancy, stopping at (and including)
// the first blocker in each direction. Only used for table generation.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for i := 0; i < 4; i++ {
		s := sq
		for {
			next := s.To(directions[i])
			if !next.IsValid() || SquareDistance(s, next) != 1 {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// GetAttacksBb returns the attack set of a rook-like or bishop-like
// slider (Queen unions both) from sq given the current board occupancy,
// in O(1): mask, multiply, shift, index.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Rook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Bishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Queen:
		rm := &rookMagics[sq]
		bm := &bishopMagics[sq]
		return rm.Attacks[rm.index(occupied)] | bm.Attacks[bm.index(occupied)]
	}
	return BbZero
}

// GetPseudoAttacks returns the attack set of a non-sliding piece (king
// or knight) from sq, ignoring occupancy.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	switch pt {
	case Knight:
		return pseudoKnight[sq]
	case King:
		return pseudoKing[sq]
	}
	return BbZero
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pseudoPawn[c][sq]
}

func initLeapers() {
	knightSteps := [8]Direction{17, 15, 10, 6, -17, -15, -10, -6}
	kingSteps := [8]Direction{North, South, East, West, Northeast, Southeast, Northwest, Southwest}

	for sq := SqA1; sq < SqLength; sq++ {
		var kn, ki Bitboard
		for _, d := range knightSteps {
			to := sq.To(d)
			if to.IsValid() && knightDistanceOk(sq, to) {
				kn.PushSquare(to)
			}
		}
		for _, d := range kingSteps {
			to := sq.To(d)
			if to.IsValid() && SquareDistance(sq, to) == 1 {
				ki.PushSquare(to)
			}
		}
		pseudoKnight[sq] = kn
		pseudoKing[sq] = ki

		var wp, bp Bitboard
		for _, d := range [2]Direction{Northeast, Northwest} {
			to := sq.To(d)
			if to.IsValid() && SquareDistance(sq, to) == 1 {
				wp.PushSquare(to)
			}
		}
		for _, d := range [2]Direction{Southeast, Southwest} {
			to := sq.To(d)
			if to.IsValid() && SquareDistance(sq, to) == 1 {
				bp.PushSquare(to)
			}
		}
		pseudoPawn[White][sq] = wp
		pseudoPawn[Black][sq] = bp
	}
}

// knightDistanceOk rejects wraparound knight steps (e.g. from file A
// stepping further west).
func knightDistanceOk(from, to Square) bool {
	df := int(from.FileOf()) - int(to.FileOf())
	if df < 0 {
		df = -df
	}
	dr := int(from.RankOf()) - int(to.RankOf())
	if dr < 0 {
		dr = -dr
	}
	return (df == 1 && dr == 2) || (df == 2 && dr == 1)
}

// PrnG is the xorshift64star pseudo-random number generator used to find
// magic multipliers. Originally written and dedicated to the public
// domain by Sebastiano Vigna (2014); used here as in Stockfish.
type PrnG struct {
	s uint64
}

func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand produces candidates with roughly 1/8th of their bits set,
// which converge to valid magics faster than uniform random numbers.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
