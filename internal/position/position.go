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

// Package position represents a chess position: an 8x8 piece board plus
// bitboards, a fixed-size history for undo and repetition detection, and
// incrementally maintained material totals and Zobrist key.
//
// Create a new instance with NewPosition() for the start position or
// NewPositionFen(fen) for an arbitrary FEN.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/sparrowchess/engine/internal/assert"
	myLogging "github.com/sparrowchess/engine/internal/logging"
	. "github.com/sparrowchess/engine/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog("position")
}

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the fixed-size history array; large enough for any
// plausible game plus search depth (MaxDepth plies of search on top of
// a very long game).
const maxHistory = 1024

// historyRecord is the undo record written by MakeMove and read/cleared
// by UndoMove: the move played, and every piece of state the move
// overwrote.
type historyRecord struct {
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	zobristKey      Key
}

// Position is the bitboard-encoded game state: eight piece bitboards,
// occupancy, side to move, castling rights, en-passant target, half-move
// clock, full-move number, ply counters, incremental material totals,
// and incremental Zobrist key. The position exclusively owns its history.
type Position struct {
	board           [SqLength]Piece
	piecesBb        [ColorLength][PtLength]Bitboard
	occupiedBb      [ColorLength]Bitboard
	kingSquare      [ColorLength]Square
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color
	fullMoveNumber  int
	ply             int
	linePly         int

	material [ColorLength]Value

	zobristKey Key

	historyCounter int
	history        [maxHistory]historyRecord
}

// NewPosition creates a position in the standard starting position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic("start fen must always be valid: " + err.Error())
	}
	return p
}

// NewPositionFen creates a position from a FEN string. Returns an error
// (and a nil position) if the FEN is malformed.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{enPassantSquare: SqNone}
	if err := p.setupBoard(fen); err != nil {
		log.Errorf("invalid fen, position not created: %s", err)
		return nil, err
	}
	return p, nil
}

// MakeMove applies m destructively to the position and reports whether
// the move was legal (the side that just moved must not be left in
// check). On an illegal move the position is left exactly as it was
// before the call - MakeMove self-reverts via UndoMove before returning
// false, so callers never need to call UndoMove themselves in that case.
func (p *Position) MakeMove(m Move) bool {
	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position MakeMove: invalid move %s", m.String())
	}

	fromSq := m.From()
	toSq := m.To()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	targetPc := p.board[toSq]

	rec := &p.history[p.historyCounter]
	rec.zobristKey = p.zobristKey
	rec.move = m
	rec.capturedPiece = targetPc
	rec.castlingRights = p.castlingRights
	rec.enPassantSquare = p.enPassantSquare
	rec.halfMoveClock = p.halfMoveClock
	p.historyCounter++

	switch m.MoveType() {
	case Normal:
		p.doNormalMove(fromSq, toSq, targetPc, fromPc, myColor)
	case Promotion:
		p.doPromotionMove(m, fromPc, myColor, toSq, targetPc, fromSq)
	case EnPassant:
		p.doEnPassantMove(toSq, myColor, fromSq)
	case Castling:
		p.doCastlingMove(myColor, toSq, fromSq)
	}

	p.ply++
	p.linePly++
	if myColor == Black {
		p.fullMoveNumber++
	}
	p.nextPlayer = myColor.Flip()
	p.zobristKey ^= ZobristSideToMove()

	if p.IsAttacked(p.kingSquare[myColor], p.nextPlayer) {
		p.UndoMove()
		return false
	}
	return true
}

// UndoMove reverses the most recent MakeMove, restoring every field of
// the position to its exact prior value. Panics (a programmer error, not
// a recoverable condition) if called with no move to undo.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "Position UndoMove: no move to undo")
	}

	p.historyCounter--
	rec := &p.history[p.historyCounter]
	move := rec.move

	p.nextPlayer = p.nextPlayer.Flip()
	p.ply--
	p.linePly--
	if p.nextPlayer == Black {
		p.fullMoveNumber--
	}

	switch move.MoveType() {
	case Normal:
		p.movePiece(move.To(), move.From())
		if rec.capturedPiece != PieceNone {
			p.putPiece(rec.capturedPiece, move.To())
		}
	case Promotion:
		p.removePiece(move.To())
		p.putPiece(MakePiece(p.nextPlayer, Pawn), move.From())
		if rec.capturedPiece != PieceNone {
			p.putPiece(rec.capturedPiece, move.To())
		}
	case EnPassant:
		p.movePiece(move.To(), move.From())
		p.putPiece(MakePiece(p.nextPlayer.Flip(), Pawn), move.To().To(p.nextPlayer.Flip().MoveDirection()))
	case Castling:
		p.movePiece(move.To(), move.From())
		switch move.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		}
	}

	p.castlingRights = rec.castlingRights
	p.enPassantSquare = rec.enPassantSquare
	p.halfMoveClock = rec.halfMoveClock
	p.zobristKey = rec.zobristKey
}

// IsAttacked reports whether sq is attacked by a piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0 {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != 0 {
		return true
	}
	if GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != 0 {
		return true
	}
	occ := p.OccupiedAll()
	if GetAttacksBb(Bishop, sq, occ)&(p.piecesBb[by][Bishop]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	if GetAttacksBb(Rook, sq, occ)&(p.piecesBb[by][Rook]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	return false
}

// HasCheck reports whether the side to move is currently in check.
func (p *Position) HasCheck() bool {
	return p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
}

// IsRepetition reports whether the current position has occurred at
// least reps times earlier in the game (matched by Zobrist key, scanning
// back only as far as the half-move clock allows - any capture or pawn
// move makes earlier positions unreachable by repetition).
func (p *Position) IsRepetition(reps int) bool {
	counter := 0
	i := p.historyCounter - 2
	lastHalfMove := p.halfMoveClock
	for i >= 0 {
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.zobristKey == p.history[i].zobristKey {
			counter++
			if counter >= reps {
				return true
			}
		}
		i -= 2
	}
	return false
}

// Eval returns the static evaluation of the position from the side to
// move's perspective: material difference plus piece-square bonuses,
// negated when Black is to move.
func (p *Position) Eval() Value {
	score := p.material[White] - p.material[Black]
	for c := White; c < ColorLength; c++ {
		for pt := Pawn; pt <= Queen; pt++ {
			pieces := p.piecesBb[c][pt]
			piece := MakePiece(c, pt)
			for pieces != 0 {
				sq := pieces.PopLsb()
				if c == White {
					score += PieceSquareBonus(piece, sq)
				} else {
					score -= PieceSquareBonus(piece, sq)
				}
			}
		}
	}
	if p.nextPlayer == Black {
		return -score
	}
	return score
}

// HasInsufficientMaterial reports whether neither side has enough
// material to force a checkmate (king vs king, king+minor vs king, and
// similar drawn-by-material endings).
func (p *Position) HasInsufficientMaterial() bool {
	if p.material[White] == 0 && p.material[Black] == 0 {
		return true
	}
	if p.piecesBb[White][Pawn].PopCount() != 0 || p.piecesBb[Black][Pawn].PopCount() != 0 {
		return false
	}
	if p.piecesBb[White][Rook].PopCount() != 0 || p.piecesBb[Black][Rook].PopCount() != 0 {
		return false
	}
	if p.piecesBb[White][Queen].PopCount() != 0 || p.piecesBb[Black][Queen].PopCount() != 0 {
		return false
	}
	whiteMinors := p.piecesBb[White][Knight].PopCount() + p.piecesBb[White][Bishop].PopCount()
	blackMinors := p.piecesBb[Black][Knight].PopCount() + p.piecesBb[Black][Bishop].PopCount()
	// king, (optionally) one minor, vs. bare king (or the same): drawn.
	return whiteMinors <= 1 && blackMinors <= 1
}

// String renders the FEN, an 8x8 board, and material totals.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.Fen())
	sb.WriteString("\n")
	sb.WriteString(p.StringBoard())
	sb.WriteString(fmt.Sprintf("Next Player   : %s\n", p.nextPlayer.String()))
	sb.WriteString(fmt.Sprintf("Material White: %d\n", p.material[White]))
	sb.WriteString(fmt.Sprintf("Material Black: %d\n", p.material[Black]))
	return sb.String()
}

// StringBoard renders an 8x8 matrix of piece characters.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(p.board[SquareOf(f, r)].Char())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

// //////////////////////////////////////////////////////////
// Move application, per move type
// //////////////////////////////////////////////////////////

func (p *Position) doNormalMove(fromSq, toSq Square, targetPc, fromPc Piece, myColor Color) {
	p.updateCastlingRights(fromSq, toSq)
	p.clearEnPassant()
	if targetPc != PieceNone {
		p.removePiece(toSq)
		p.halfMoveClock = 0
	} else if fromPc.TypeOf() == Pawn {
		p.halfMoveClock = 0
		if SquareDistance(fromSq, toSq) == 2 {
			p.enPassantSquare = toSq.To(myColor.Flip().MoveDirection())
			p.zobristKey ^= ZobristEnPassantFile(p.enPassantSquare.FileOf())
		}
	} else {
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doPromotionMove(m Move, fromPc Piece, myColor Color, toSq Square, targetPc Piece, fromSq Square) {
	if targetPc != PieceNone {
		p.removePiece(toSq)
	}
	p.updateCastlingRights(fromSq, toSq)
	p.removePiece(fromSq)
	p.putPiece(MakePiece(myColor, m.PromotionType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
	_ = fromPc
}

func (p *Position) doEnPassantMove(toSq Square, myColor Color, fromSq Square) {
	capSq := toSq.To(myColor.Flip().MoveDirection())
	if assert.DEBUG {
		assert.Assert(p.board[capSq] == MakePiece(myColor.Flip(), Pawn), "Position MakeMove: captured en passant piece invalid")
	}
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doCastlingMove(myColor Color, toSq, fromSq Square) {
	switch toSq {
	case SqG1:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqH1, SqF1)
	case SqC1:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqA1, SqD1)
	case SqG8:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqH8, SqF8)
	case SqC8:
		p.movePiece(fromSq, toSq)
		p.movePiece(SqA8, SqD8)
	}
	p.zobristKey ^= ZobristCastling(p.castlingRights)
	if myColor == White {
		p.castlingRights.Remove(CastlingWhite)
	} else {
		p.castlingRights.Remove(CastlingBlack)
	}
	p.zobristKey ^= ZobristCastling(p.castlingRights)
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) updateCastlingRights(fromSq, toSq Square) {
	if p.castlingRights == CastlingNone {
		return
	}
	lost := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
	if lost == CastlingNone {
		return
	}
	p.zobristKey ^= ZobristCastling(p.castlingRights)
	p.castlingRights.Remove(lost)
	p.zobristKey ^= ZobristCastling(p.castlingRights)
}

// //////////////////////////////////////////////////////////
// Piece placement primitives - every set/clear updates board,
// bitboards, material, and Zobrist key together.
// //////////////////////////////////////////////////////////

func (p *Position) movePiece(fromSq, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, square Square) {
	if assert.DEBUG {
		assert.Assert(p.board[square] == PieceNone, "tried to put piece on occupied square %s", square.String())
	}
	color := piece.ColorOf()
	pt := piece.TypeOf()

	p.board[square] = piece
	if pt == King {
		p.kingSquare[color] = square
	}
	p.piecesBb[color][pt].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)
	p.zobristKey ^= ZobristPiece(piece, square)
	p.material[color] += pt.ValueOf()
}

func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	if assert.DEBUG {
		assert.Assert(removed != PieceNone, "tried to remove piece from empty square %s", square.String())
	}
	color := removed.ColorOf()
	pt := removed.TypeOf()

	p.board[square] = PieceNone
	p.piecesBb[color][pt].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)
	p.zobristKey ^= ZobristPiece(removed, square)
	p.material[color] -= pt.ValueOf()
	return removed
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= ZobristEnPassantFile(p.enPassantSquare.FileOf())
		p.enPassantSquare = SqNone
	}
}

// //////////////////////////////////////////////////////////
// FEN
// //////////////////////////////////////////////////////////

var (
	regexFenPos          = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
	regexWorB            = regexp.MustCompile(`^[wb]$`)
	regexCastlingRights  = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	regexEnPassantSquare = regexp.MustCompile(`^([a-h][1-8]|-)$`)
)

// Fen returns the FEN of the current position.
func (p *Position) Fen() string {
	var fen strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteString(pc.String())
		}
		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}
		if r > Rank1 {
			fen.WriteString("/")
		}
	}
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.fullMoveNumber))
	return fen.String()
}

// setupBoard parses a FEN string into the position. Unrecognised
// characters, wrong rank counts, or out-of-range numbers fail with a
// descriptive error and leave no partially-built position behind (the
// caller discards p on error).
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return errors.New("fen must not be empty")
	}

	if !regexFenPos.MatchString(fields[0]) {
		return errors.New("fen piece placement contains invalid characters")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen piece placement must have 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, c := range rankStr {
			if n, err := strconv.Atoi(string(c)); err == nil {
				if n < 1 || n > 8 {
					return fmt.Errorf("fen empty-square run out of range: %d", n)
				}
				f += File(n)
			} else {
				piece := PieceFromChar(string(c))
				if piece == PieceNone {
					return fmt.Errorf("invalid piece character: %s", string(c))
				}
				if f > FileH {
					return errors.New("fen rank overflows 8 files")
				}
				p.putPiece(piece, SquareOf(f, r))
				f++
			}
		}
		if f != FileLength {
			return fmt.Errorf("fen rank %d does not sum to 8 files", 8-i)
		}
	}

	p.fullMoveNumber = 1
	p.enPassantSquare = SqNone
	p.nextPlayer = White

	if len(fields) >= 2 {
		if !regexWorB.MatchString(fields[1]) {
			return errors.New("fen side to move must be 'w' or 'b'")
		}
		if fields[1] == "b" {
			p.nextPlayer = Black
			p.zobristKey ^= ZobristSideToMove()
		}
	}

	if len(fields) >= 3 {
		if !regexCastlingRights.MatchString(fields[2]) {
			return errors.New("fen castling rights contain invalid characters")
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					p.castlingRights.Add(CastlingWhiteOO)
				case 'Q':
					p.castlingRights.Add(CastlingWhiteOOO)
				case 'k':
					p.castlingRights.Add(CastlingBlackOO)
				case 'q':
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
		p.zobristKey ^= ZobristCastling(p.castlingRights)
	}

	if len(fields) >= 4 {
		if !regexEnPassantSquare.MatchString(fields[3]) {
			return errors.New("fen en passant field is invalid")
		}
		if fields[3] != "-" {
			p.enPassantSquare = MakeSquare(fields[3])
			p.zobristKey ^= ZobristEnPassantFile(p.enPassantSquare.FileOf())
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return errors.New("fen half move clock is invalid")
		}
		p.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 0 {
			return errors.New("fen full move number is invalid")
		}
		if n == 0 {
			n = 1
		}
		p.fullMoveNumber = n
	}

	if p.piecesBb[White][King].PopCount() != 1 || p.piecesBb[Black][King].PopCount() != 1 {
		return errors.New("fen must place exactly one king per side")
	}

	return nil
}

// //////////////////////////////////////////////////////////
// Accessors
// //////////////////////////////////////////////////////////

// ZobristKey returns the current Zobrist key.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.nextPlayer }

// GetPiece returns the piece on sq, or PieceNone if empty.
func (p *Position) GetPiece(sq Square) Piece { return p.board[sq] }

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// OccupiedAll returns the bitboard of all occupied squares.
func (p *Position) OccupiedAll() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }

// OccupiedBb returns the bitboard of squares occupied by color c.
func (p *Position) OccupiedBb(c Color) Bitboard { return p.occupiedBb[c] }

// EnPassantSquare returns the en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// HalfMoveClock returns the half-move clock (plies since last capture or
// pawn move), which drives the 50-move rule.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// Material returns the material total for color c.
func (p *Position) Material(c Color) Value { return p.material[c] }

// Ply returns the number of half-moves played since the position was
// created (NOT the FEN full-move number).
func (p *Position) Ply() int { return p.ply }

// LinePly returns the depth in plies from the root of the current
// search - reset when a fresh Position is created, incremented by every
// MakeMove, decremented by every UndoMove.
func (p *Position) LinePly() int { return p.linePly }

// LastMove returns the most recently made move, or MoveNone if the
// position has no history.
func (p *Position) LastMove() Move {
	if p.historyCounter == 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// IsCapturingMove reports whether move captures a piece (including en
// passant) on the current position.
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.nextPlayer.Flip()].Has(move.To()) || move.MoveType() == EnPassant
}
