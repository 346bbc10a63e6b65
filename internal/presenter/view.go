package presenter

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// GameView is what the browser renders for a game.
type GameView struct {
	Board     [entity.BoardSize]entity.Mark `json:"board"`
	Playable  [entity.BoardSize]bool        `json:"playable"`
	Turn      entity.Mark                   `json:"player_turn,omitempty"`
	Winner    entity.Mark                   `json:"winner,omitempty"`
	Status    string                        `json:"status"`
	Celebrate bool                          `json:"celebrate,omitempty"`
}

// NewGameView builds the view of game after a move with the given outcome.
// Celebrate is set only when that move won the game.
func NewGameView(game *entity.Game, outcome entity.Outcome) GameView {
	view := GameView{
		Board:     game.Board,
		Turn:      game.NextPlayer(),
		Winner:    game.Winner,
		Status:    StatusLine(game),
		Celebrate: outcome == entity.OutcomeWon,
	}

	for cell := range view.Playable {
		view.Playable[cell] = game.IsPlayable(cell)
	}

	return view
}

func StatusLine(game *entity.Game) string {
	if game.HasWinner() {
		return "Winner: " + string(game.Winner)
	}

	return "Next player: " + string(game.Turn)
}
