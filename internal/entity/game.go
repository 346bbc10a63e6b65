package entity

// Mark is a symbol a player places on the board.
type Mark string

const (
	MarkNone Mark = ""
	MarkX    Mark = "X"
	MarkO    Mark = "O"

	BoardSize = 9
)

// Outcome reports what a single Play call did to the game.
type Outcome int

const (
	// OutcomeIgnored - the move was illegal and the game is unchanged.
	OutcomeIgnored Outcome = iota
	// OutcomePlaced - the mark was placed and the turn passed to the other player.
	OutcomePlaced
	// OutcomeWon - the mark was placed and completed a line.
	OutcomeWon
)

var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Game struct {
	ID     string          `json:"id"`
	Board  [BoardSize]Mark `json:"board"`
	Turn   Mark            `json:"player_turn"`
	Winner Mark            `json:"winner"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:   id,
		Turn: MarkX,
	}
}

// Play places the current player's mark into cell.
// Moves into an occupied or out-of-range cell, and any move once a winner exists, are ignored.
func (that *Game) Play(cell int) Outcome {
	if that.HasWinner() {
		return OutcomeIgnored
	}

	if cell < 0 || cell >= BoardSize {
		return OutcomeIgnored
	}

	if that.Board[cell] != MarkNone {
		return OutcomeIgnored
	}

	mark := that.Turn
	that.Board[cell] = mark

	if that.completesLine(mark) {
		that.Winner = mark
		return OutcomeWon
	}

	that.Turn = mark.Opponent()

	return OutcomePlaced
}

// Reset - returns the game to its initial state.
func (that *Game) Reset() {
	that.Board = [BoardSize]Mark{}
	that.Turn = MarkX
	that.Winner = MarkNone
}

func (that *Game) HasWinner() bool {
	return that.Winner != MarkNone
}

// NextPlayer returns the mark to move, or MarkNone once the game is won.
func (that *Game) NextPlayer() Mark {
	if that.HasWinner() {
		return MarkNone
	}

	return that.Turn
}

// IsPlayable reports whether a click on cell would be accepted.
func (that *Game) IsPlayable(cell int) bool {
	return !that.HasWinner() && cell >= 0 && cell < BoardSize && that.Board[cell] == MarkNone
}

// completesLine - checks whether mark occupies all three cells of any line.
func (that *Game) completesLine(mark Mark) bool {
	for _, line := range WinLines {
		if that.Board[line[0]] == mark && that.Board[line[1]] == mark && that.Board[line[2]] == mark {
			return true
		}
	}

	return false
}

// Opponent returns the other player's mark.
func (m Mark) Opponent() Mark {
	if m == MarkX {
		return MarkO
	}
	return MarkX
}

func (o Outcome) String() string {
	switch o {
	case OutcomePlaced:
		return "placed"
	case OutcomeWon:
		return "won"
	default:
		return "ignored"
	}
}
