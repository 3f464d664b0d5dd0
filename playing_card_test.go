package toolbox

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	card, err := NewCard(Ace, Spade)
	require.NoError(t, err)
	assert.Equal(t, "(A,♠)", card.String())
	assert.Equal(t, "(A)", card.Format(true))
	assert.Equal(t, "(♠)", card.Format(false))

	joker, err := NewCard(JokerNumber, JokerSuit)
	require.NoError(t, err)
	assert.True(t, joker.IsJoker())
	assert.Equal(t, "(JOKER)", joker.String())

	_, err = NewCard(JokerNumber, Heart)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewCard(Ten, JokerSuit)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewCard(CardNumber(14), Heart)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCardFromIndex(t *testing.T) {
	card, err := CardFromIndex(13, 4)
	require.NoError(t, err)
	assert.Equal(t, Card{Number: King, Suit: Clover}, card)

	card, err = CardFromIndex(0, 0)
	require.NoError(t, err)
	assert.True(t, card.IsJoker())

	for _, args := range [][2]int{{0, 1}, {1, 0}, {14, 1}, {1, 5}, {-1, 2}} {
		_, err = CardFromIndex(args[0], args[1])
		assert.ErrorIs(t, err, ErrInvalidArgument, args)
	}
}

func TestCardStock(t *testing.T) {
	stock, err := NewCardStock(2)
	require.NoError(t, err)
	assert.Equal(t, 54, stock.Len())

	first, err := stock.Take()
	require.NoError(t, err)
	assert.Equal(t, Card{Number: Ace, Suit: Spade}, first)
	assert.Equal(t, 53, stock.Len())

	stock.Shuffle(rand.New(rand.NewSource(1)))
	assert.Equal(t, 53, stock.Len())
	stock.Initialize()
	assert.Equal(t, 54, stock.Len())
	cards := stock.Cards()
	assert.True(t, cards[52].IsJoker())
	assert.True(t, cards[53].IsJoker())

	empty, err := NewCardStock(0)
	require.NoError(t, err)
	for i := 0; i < 52; i++ {
		_, err = empty.Take()
		require.NoError(t, err)
	}
	_, err = empty.Take()
	assert.ErrorIs(t, err, ErrEmptyStock)

	_, err = NewCardStock(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestHand(t *testing.T) {
	t.Run("With empty hand", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, Hand{}.Show(out, HandWithIndex))
		assert.Equal(t, "(Empty)\n", out.String())
	})

	t.Run("With modes", func(t *testing.T) {
		hand := Hand{{Number: Ten, Suit: Heart}, Joker()}
		cases := map[HandMode]string{
			HandDefault:    "(10,♥)(JOKER)\n",
			HandWithIndex:  "1: (10,♥)\n2: (JOKER)\n",
			HandNumberOnly: "(10)\n(JOKER)\n",
			HandSuitOnly:   "(♥)\n(JOKER)\n",
		}
		for mode, expected := range cases {
			out := &bytes.Buffer{}
			require.NoError(t, hand.Show(out, mode))
			assert.Equal(t, expected, out.String())
		}
	})

	t.Run("With sort", func(t *testing.T) {
		hand := Hand{Joker(), {Number: King, Suit: Spade}, {Number: Ace, Suit: Clover}, {Number: Ace, Suit: Spade}}
		hand.Sort()
		assert.Equal(t, Hand{{Number: Ace, Suit: Spade}, {Number: Ace, Suit: Clover}, {Number: King, Suit: Spade}, Joker()}, hand)

		hand.SortFunc(PokerSorter)
		assert.Equal(t, Hand{{Number: King, Suit: Spade}, {Number: Ace, Suit: Spade}, {Number: Ace, Suit: Clover}, Joker()}, hand)
	})
}
