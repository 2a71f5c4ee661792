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

// Package movegen generates pseudo-legal moves for a position: the full
// move list, or captures (including en passant) only. Legality (does the
// move leave the mover's own king in check) is not checked here - that
// is position.MakeMove's job.
package movegen

import (
	"regexp"
	"strings"

	"github.com/sparrowchess/engine/internal/moveslice"
	"github.com/sparrowchess/engine/internal/position"
	. "github.com/sparrowchess/engine/internal/types"
)

// MaxMoves is a safe upper bound on the number of pseudo-legal moves any
// reachable chess position can have, used to size move list capacity.
const MaxMoves = 256

// GenerateMoves returns every pseudo-legal move (captures and quiet
// moves) for the side to move on p.
func GenerateMoves(p *position.Position) *moveslice.MoveSlice {
	ml := moveslice.NewMoveSlice(MaxMoves)
	generatePawnMoves(p, true, true, ml)
	generateKnightBishopRookQueenMoves(p, true, true, ml)
	generateKingMoves(p, true, true, ml)
	generateCastling(p, ml)
	return ml
}

// GenerateCaptures returns every pseudo-legal capturing move (including
// en passant) for the side to move on p. Equal, as a multiset, to
// filtering GenerateMoves down to capturing moves.
func GenerateCaptures(p *position.Position) *moveslice.MoveSlice {
	ml := moveslice.NewMoveSlice(MaxMoves)
	generatePawnMoves(p, true, false, ml)
	generateKnightBishopRookQueenMoves(p, true, false, ml)
	generateKingMoves(p, true, false, ml)
	return ml
}

// HasLegalMove reports whether the side to move has at least one legal
// move - used for mate/stalemate detection. The full pseudo-legal list
// is generated; legality is tried move by move and stops at the first
// legal one.
func HasLegalMove(p *position.Position) bool {
	moves := GenerateMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if p.MakeMove(m) {
			p.UndoMove()
			return true
		}
	}
	return false
}

var regexUciMove = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([nbrq])?$`)

// MoveFromUci parses a long-algebraic move string against the
// pseudo-legal moves of p and returns the matching engine Move, or
// MoveNone if the string is malformed or matches no pseudo-legal move.
func MoveFromUci(p *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(strings.ToLower(uciMove))
	if matches == nil {
		return MoveNone
	}
	moves := GenerateMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.StringUci() == matches[1]+matches[2]+matches[3] {
			return m
		}
	}
	return MoveNone
}

func generatePawnMoves(p *position.Position, captures, quiets bool, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	them := us.Flip()
	myPawns := p.PiecesBb(us, Pawn)
	oppPieces := p.OccupiedBb(them)
	occupied := p.OccupiedAll()
	forward := us.MoveDirection()
	back := them.MoveDirection()

	if captures {
		for _, dir := range [2]Direction{West, East} {
			targets := ShiftBitboard(myPawns, forward+dir) & oppPieces
			promoTargets := targets & us.PromotionRankBb()
			plainTargets := targets &^ us.PromotionRankBb()
			for promoTargets != 0 {
				to := promoTargets.PopLsb()
				from := to.To(back - dir)
				pushPromotions(ml, from, to)
			}
			for plainTargets != 0 {
				to := plainTargets.PopLsb()
				from := to.To(back - dir)
				ml.PushBack(NewMove(from, to))
			}
		}

		if ep := p.EnPassantSquare(); ep != SqNone {
			for _, dir := range [2]Direction{West, East} {
				from := ShiftBitboard(ep.Bb(), back+dir) & myPawns
				if from != 0 {
					fromSq := from.Lsb()
					ml.PushBack(NewEnPassantMove(fromSq, ep))
				}
			}
		}
	}

	if quiets {
		oneStep := ShiftBitboard(myPawns, forward) &^ occupied
		twoStep := ShiftBitboard(oneStep&us.PawnDoubleRank(), forward) &^ occupied

		promoSteps := oneStep & us.PromotionRankBb()
		plainSteps := oneStep &^ us.PromotionRankBb()
		for promoSteps != 0 {
			to := promoSteps.PopLsb()
			from := to.To(back)
			pushPromotions(ml, from, to)
		}
		for plainSteps != 0 {
			to := plainSteps.PopLsb()
			from := to.To(back)
			ml.PushBack(NewMove(from, to))
		}
		for twoStep != 0 {
			to := twoStep.PopLsb()
			from := to.To(back).To(back)
			ml.PushBack(NewMove(from, to))
		}
	}
}

func pushPromotions(ml *moveslice.MoveSlice, from, to Square) {
	ml.PushBack(NewPromotionMove(from, to, Queen))
	ml.PushBack(NewPromotionMove(from, to, Knight))
	ml.PushBack(NewPromotionMove(from, to, Rook))
	ml.PushBack(NewPromotionMove(from, to, Bishop))
}

func generateKnightBishopRookQueenMoves(p *position.Position, captures, quiets bool, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	occupied := p.OccupiedAll()
	own := p.OccupiedBb(us)
	opp := p.OccupiedBb(us.Flip())

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(us, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			var attacks Bitboard
			if pt == Knight {
				attacks = GetPseudoAttacks(Knight, from) &^ own
			} else {
				attacks = GetAttacksBb(pt, from, occupied) &^ own
			}
			if captures {
				targets := attacks & opp
				for targets != 0 {
					ml.PushBack(NewMove(from, targets.PopLsb()))
				}
			}
			if quiets {
				targets := attacks &^ occupied
				for targets != 0 {
					ml.PushBack(NewMove(from, targets.PopLsb()))
				}
			}
		}
	}
}

func generateKingMoves(p *position.Position, captures, quiets bool, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	from := p.KingSquare(us)
	attacks := GetPseudoAttacks(King, from) &^ p.OccupiedBb(us)

	if captures {
		targets := attacks & p.OccupiedBb(us.Flip())
		for targets != 0 {
			ml.PushBack(NewMove(from, targets.PopLsb()))
		}
	}
	if quiets {
		targets := attacks &^ p.OccupiedAll()
		for targets != 0 {
			ml.PushBack(NewMove(from, targets.PopLsb()))
		}
	}
}

// generateCastling emits pseudo-legal castling moves: rights available
// and the path between king and rook unoccupied. Whether the king
// passes through or ends up in check is left to MakeMove's post-move
// legality check plus the explicit not-currently-in-check and
// not-passing-through-check tests below, since those two conditions are
// not implied by MakeMove alone.
func generateCastling(p *position.Position, ml *moveslice.MoveSlice) {
	cr := p.CastlingRights()
	if cr == CastlingNone {
		return
	}
	us := p.NextPlayer()
	them := us.Flip()
	occupied := p.OccupiedAll()

	if p.IsAttacked(p.KingSquare(us), them) {
		return
	}

	if us == White {
		if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occupied == 0 &&
			!p.IsAttacked(SqF1, them) {
			ml.PushBack(NewCastlingMove(SqE1, SqG1))
		}
		if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occupied == 0 &&
			!p.IsAttacked(SqD1, them) {
			ml.PushBack(NewCastlingMove(SqE1, SqC1))
		}
	} else {
		if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occupied == 0 &&
			!p.IsAttacked(SqF8, them) {
			ml.PushBack(NewCastlingMove(SqE8, SqG8))
		}
		if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occupied == 0 &&
			!p.IsAttacked(SqD8, them) {
			ml.PushBack(NewCastlingMove(SqE8, SqC8))
		}
	}
}
