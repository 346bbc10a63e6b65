package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("123")

	// Then: the board is empty, X moves first and there is no winner
	expectedGame := &Game{
		ID:     "123",
		Board:  [BoardSize]Mark{},
		Turn:   MarkX,
		Winner: MarkNone,
	}

	require.Equal(t, expectedGame, game)
	assert.False(t, game.HasWinner())
	assert.Equal(t, MarkX, game.NextPlayer())
}

func TestGame_Play(t *testing.T) {
	t.Run("Writes exactly the played cell", func(t *testing.T) {
		for cell := 0; cell < BoardSize; cell++ {
			// Given: a new game
			game := NewGame("123")

			// When: X plays the cell
			outcome := game.Play(cell)

			// Then: only that cell holds X and the turn passes to O
			expectedBoard := [BoardSize]Mark{}
			expectedBoard[cell] = MarkX

			assert.Equal(t, OutcomePlaced, outcome, "cell %d", cell)
			assert.Equal(t, expectedBoard, game.Board, "cell %d", cell)
			assert.Equal(t, MarkO, game.Turn, "cell %d", cell)
		}
	})

	t.Run("Occupied cell is ignored", func(t *testing.T) {
		// Given: a game where X holds cell 0
		game := NewGame("123")
		require.Equal(t, OutcomePlaced, game.Play(0))
		before := *game

		// When: O tries to play the same cell
		outcome := game.Play(0)

		// Then: nothing changes
		assert.Equal(t, OutcomeIgnored, outcome)
		assert.Equal(t, before, *game)
	})

	t.Run("Out of range cell is ignored", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")
		before := *game

		// When: cells outside the board are played
		for _, cell := range []int{-1, BoardSize, 20} {
			assert.Equal(t, OutcomeIgnored, game.Play(cell))
		}

		// Then: nothing changes
		assert.Equal(t, before, *game)
	})

	t.Run("Players strictly alternate", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: legal moves are made that complete no line
		cells := []int{0, 1, 2, 4}
		expectedMarks := []Mark{MarkX, MarkO, MarkX, MarkO}

		for i, cell := range cells {
			require.Equal(t, expectedMarks[i], game.Turn)
			require.Equal(t, OutcomePlaced, game.Play(cell))

			// Then: each cell holds the mark of the player whose turn it was
			assert.Equal(t, expectedMarks[i], game.Board[cell])
		}

		assert.Equal(t, MarkX, game.Turn)
	})

	t.Run("Completing the top row wins for X", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: X→0, O→3, X→1, O→4, X→2
		outcomes := make([]Outcome, 0, 5)
		for _, cell := range []int{0, 3, 1, 4, 2} {
			outcomes = append(outcomes, game.Play(cell))
		}

		// Then: the fifth move wins and X stays as the last mover
		assert.Equal(t, []Outcome{OutcomePlaced, OutcomePlaced, OutcomePlaced, OutcomePlaced, OutcomeWon}, outcomes)
		assert.Equal(t, MarkX, game.Winner)
		assert.Equal(t, MarkX, game.Turn)
		assert.True(t, game.HasWinner())
		assert.Equal(t, MarkNone, game.NextPlayer())

		// And: further moves are ignored
		before := *game
		for cell := 0; cell < BoardSize; cell++ {
			assert.Equal(t, OutcomeIgnored, game.Play(cell))
		}
		assert.Equal(t, before, *game)
	})

	t.Run("Full board without a line leaves no winner", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: all nine cells are filled without completing a line
		for _, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
			require.Equal(t, OutcomePlaced, game.Play(cell))
		}

		// Then: every cell is taken, no winner is recorded and the turn keeps toggling
		expectedBoard := [BoardSize]Mark{
			MarkX, MarkO, MarkX,
			MarkX, MarkO, MarkO,
			MarkO, MarkX, MarkX,
		}
		assert.Equal(t, expectedBoard, game.Board)
		assert.Equal(t, MarkNone, game.Winner)
		assert.Equal(t, MarkO, game.Turn)
	})

	t.Run("Every line wins", func(t *testing.T) {
		for _, line := range WinLines {
			t.Run(fmt.Sprint(line), func(t *testing.T) {
				// Given: a new game and two cells for O outside the line
				game := NewGame("123")
				others := cellsOutside(line)

				// When: X fills the line while O plays elsewhere
				require.Equal(t, OutcomePlaced, game.Play(line[0]))
				require.Equal(t, OutcomePlaced, game.Play(others[0]))
				require.Equal(t, OutcomePlaced, game.Play(line[1]))
				require.Equal(t, OutcomePlaced, game.Play(others[1]))
				outcome := game.Play(line[2])

				// Then: X wins
				assert.Equal(t, OutcomeWon, outcome)
				assert.Equal(t, MarkX, game.Winner)
			})
		}
	})

	t.Run("O can win", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: O completes the middle column
		for _, cell := range []int{0, 1, 2, 4, 6} {
			require.Equal(t, OutcomePlaced, game.Play(cell))
		}
		outcome := game.Play(7)

		// Then: O is the winner
		assert.Equal(t, OutcomeWon, outcome)
		assert.Equal(t, MarkO, game.Winner)
		assert.Equal(t, MarkO, game.Turn)
	})
}

func TestGame_Reset(t *testing.T) {
	t.Run("Reset after a win", func(t *testing.T) {
		// Given: a game won by X
		game := NewGame("123")
		for _, cell := range []int{0, 3, 1, 4, 2} {
			game.Play(cell)
		}
		require.True(t, game.HasWinner())

		// When: the game is reset
		game.Reset()

		// Then: the game is back to its initial state and keeps its ID
		assert.Equal(t, NewGame("123"), game)
	})

	t.Run("Reset in the middle of a game", func(t *testing.T) {
		// Given: a game where it is O's turn
		game := NewGame("123")
		game.Play(4)
		require.Equal(t, MarkO, game.Turn)

		// When: the game is reset
		game.Reset()

		// Then: X moves first again
		assert.Equal(t, NewGame("123"), game)
		assert.Equal(t, OutcomePlaced, game.Play(4))
		assert.Equal(t, MarkX, game.Board[4])
	})
}

func TestGame_IsPlayable(t *testing.T) {
	// Given: a game where X holds cell 0
	game := NewGame("123")
	game.Play(0)

	// Then: only empty in-range cells are playable
	assert.False(t, game.IsPlayable(0))
	assert.True(t, game.IsPlayable(1))
	assert.False(t, game.IsPlayable(-1))
	assert.False(t, game.IsPlayable(BoardSize))

	// When: the game is won
	game.Winner = MarkX

	// Then: no cell is playable
	assert.False(t, game.IsPlayable(1))
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
}

func cellsOutside(line [3]int) []int {
	var cells []int
	for cell := 0; cell < BoardSize; cell++ {
		if cell != line[0] && cell != line[1] && cell != line[2] {
			cells = append(cells, cell)
		}
	}
	return cells
}
