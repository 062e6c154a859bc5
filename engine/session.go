package engine

import (
	"fmt"

	"checkers/game"
	"checkers/searcher"
	"checkers/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Session is one human-versus-AI game. It owns the authoritative board; the
// AI only ever searches clones of it. A session is not safe for concurrent use.
type Session struct {
	human    game.Side
	setup    bool
	options  []searcher.Option
	board    *game.Board
	ai       agent.Agent
	selected int // Roster index of the selected piece, -1 if none
}

// NewSession builds a game where the human plays the given side. With setup
// the standard starting position is placed.
func NewSession(human game.Side, setup bool, options ...searcher.Option) (*Session, error) {
	if !human.Valid() {
		return nil, fmt.Errorf("human side %d: %w", human, game.ErrInvalidColor)
	}
	s := &Session{
		human:   human,
		setup:   setup,
		options: options,
	}
	s.Reset()
	return s, nil
}

// NewSessionFromBoard resumes play on an existing board.
func NewSessionFromBoard(human game.Side, board *game.Board, options ...searcher.Option) (*Session, error) {
	s, err := NewSession(human, false, options...)
	if err != nil {
		return nil, err
	}
	s.board = board
	return s, nil
}

// Reset discards the board and the AI and rebuilds both.
func (s *Session) Reset() {
	s.board = game.NewBoard(s.human, s.setup)
	s.ai = agent.NewSearchAgent(searcher.NewAlphaBeta(s.options...))
	s.selected = -1
	log.Info().Str("human", s.human.String()).Msg("new game")
}

// SwitchSides flips the human side and starts over.
func (s *Session) SwitchSides() {
	s.human = s.human.Opponent()
	s.Reset()
}

func (s *Session) Human() game.Side {
	return s.human
}

func (s *Session) Turn() game.Side {
	return s.board.Turn()
}

func (s *Session) Winner() game.Side {
	return s.board.Winner()
}

// Moves returns the current legal move set, parallel to the active roster.
func (s *Session) Moves() [][]game.Position {
	return s.board.Clone().Moves()
}

// Board returns a copy of the authoritative board.
func (s *Session) Board() *game.Board {
	return s.board.Clone()
}

// Selected returns the selected piece's position.
func (s *Session) Selected() (game.Position, bool) {
	if s.selected < 0 {
		return game.Position{}, false
	}
	return s.board.Pieces(s.board.Turn())[s.selected].Position, true
}

// Highlighted returns the cells flagged for the presentation layer.
func (s *Session) Highlighted() []game.Position {
	var cells []game.Position
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			p := game.Position{Col: col, Row: row}
			if s.board.Cell(p).Highlighted {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// Click resolves an interaction at a board square: clicking one of the
// human's pieces selects it, clicking a highlighted square commits the move,
// anything else clears the selection.
func (s *Session) Click(row, col int) error {
	p, err := game.NewPosition(col, row)
	if err != nil {
		return err
	}
	if err := s.humanTurn(); err != nil {
		return err
	}

	cell := s.board.Cell(p)
	if piece, ok := cell.Piece(); ok && piece.Color == s.human {
		return s.Select(p)
	}
	if cell.Highlighted {
		return s.Commit(p)
	}
	s.deselect()
	return nil
}

// Select picks the human's piece at p and highlights its legal destinations.
func (s *Session) Select(p game.Position) error {
	if !p.Valid() {
		return fmt.Errorf("%v: %w", p, game.ErrInvalidPosition)
	}
	if err := s.humanTurn(); err != nil {
		return err
	}
	index := s.board.IndexOf(p)
	if index < 0 {
		return fmt.Errorf("%v: %w", p, ErrNotSelectable)
	}

	s.deselect()
	s.selected = index
	s.board.Highlight(s.board.Moves()[index], true)
	return nil
}

// Commit moves the selected piece to the destination. If a capture chain is
// pending the piece stays selected.
func (s *Session) Commit(to game.Position) error {
	if !to.Valid() {
		return fmt.Errorf("%v: %w", to, game.ErrInvalidPosition)
	}
	if err := s.humanTurn(); err != nil {
		return err
	}
	if s.selected < 0 {
		return ErrNoSelection
	}

	move := s.board.NewMove(s.selected, to)
	if !s.board.IsLegal(move) {
		return fmt.Errorf("%v: %w", move, game.ErrIllegalMove)
	}

	s.deselect()
	s.board.Play(move)
	log.Info().Str("player", s.human.String()).Stringer("move", move).Msg("human moved")

	if s.board.Turn() == s.human && len(s.board.Moves()[move.Piece]) > 0 {
		return s.Select(to)
	}
	return nil
}

// AIMove lets the AI play a single move. During a capture chain the AI keeps
// the turn and AIMove must be called again; see AITurn.
func (s *Session) AIMove() (game.Move, error) {
	if s.board.Winner() != game.NoSide {
		return game.NoMove, ErrGameOver
	}
	if s.board.Turn() == s.human {
		return game.NoMove, ErrNotAITurn
	}

	move, metric := s.ai.FindMove(s.board)
	s.board.Play(move)
	log.Info().
		Str("player", s.human.Opponent().String()).
		Stringer("move", move).
		Int("nodes", metric.Nodes).
		Msg("AI moved")
	return move, nil
}

// AITurn plays AI moves until the turn passes or the game ends.
func (s *Session) AITurn() ([]game.Move, error) {
	var moves []game.Move
	for {
		move, err := s.AIMove()
		if err != nil {
			if len(moves) > 0 && (err == ErrNotAITurn || err == ErrGameOver) {
				return moves, nil
			}
			return moves, err
		}
		moves = append(moves, move)
	}
}

func (s *Session) humanTurn() error {
	if s.board.Winner() != game.NoSide {
		return ErrGameOver
	}
	if s.board.Turn() != s.human {
		return ErrNotHumanTurn
	}
	return nil
}

func (s *Session) deselect() {
	s.board.ClearHighlights()
	s.selected = -1
}
