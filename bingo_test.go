package toolbox

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBingoMachine(t *testing.T) {
	t.Run("With invalid size", func(t *testing.T) {
		_, err := NewBingoMachine(-1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("With empty machine", func(t *testing.T) {
		machine, err := NewBingoMachine(0)
		require.NoError(t, err)
		_, err = machine.Draw()
		assert.ErrorIs(t, err, ErrBallNotFound)
		assert.ErrorIs(t, machine.Remove(), ErrBallNotFound)
	})

	t.Run("With draw", func(t *testing.T) {
		machine, err := NewBingoMachine(5)
		require.NoError(t, err)
		assert.Equal(t, []BingoBall{1, 2, 3, 4, 5}, machine.Balls())

		ball, err := machine.Draw()
		require.NoError(t, err)
		assert.Equal(t, 1, ball.Number())
		assert.Equal(t, "1", ball.String())
		require.NoError(t, machine.RemoveAt(2))
		assert.Equal(t, []BingoBall{2, 3, 5}, machine.Balls())
		assert.True(t, machine.IsDrawn(4))
		assert.True(t, machine.Drawn().Contains(1, 4))
		assert.Equal(t, 2, machine.Drawn().Cardinality())

		_, err = machine.BallAt(3)
		assert.ErrorIs(t, err, ErrBallNotFound)
		assert.ErrorIs(t, machine.RemoveAt(-1), ErrBallNotFound)

		machine.Initialize()
		assert.Equal(t, 5, machine.Len())
		assert.False(t, machine.IsDrawn(1))
	})

	t.Run("With shuffle and sort", func(t *testing.T) {
		machine, err := NewBingoMachine(20)
		require.NoError(t, err)
		machine.Shuffle(rand.New(rand.NewSource(7)))
		assert.ElementsMatch(t, []BingoBall{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, machine.Balls())

		machine.SortDesc()
		first, err := machine.Ball()
		require.NoError(t, err)
		assert.EqualValues(t, 20, first)

		machine.SortAsc()
		first, err = machine.Ball()
		require.NoError(t, err)
		assert.EqualValues(t, 1, first)
	})

	t.Run("With copy of balls", func(t *testing.T) {
		machine, err := NewBingoMachine(3)
		require.NoError(t, err)
		balls := machine.Balls()
		balls[0] = 99
		first, _ := machine.Ball()
		assert.EqualValues(t, 1, first)
	})
}
