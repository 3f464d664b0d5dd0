package toolbox

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
)

//region CardNumber
type CardNumber int

const (
	JokerNumber CardNumber = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var cardNumberNames = [...]string{"JOKER", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (this CardNumber) IsValid() bool { return this >= JokerNumber && this <= King }
func (this CardNumber) String() string {
	if !this.IsValid() {
		return fmt.Sprintf("CardNumber(%d)", int(this))
	}
	return cardNumberNames[this]
}

//endregion

//region CardSuit
type CardSuit int

const (
	JokerSuit CardSuit = iota
	Spade
	Heart
	Diamond
	Clover
)

var cardSuitNames = [...]string{"JOKER", "♠", "♥", "♦", "♣"}

func (this CardSuit) IsValid() bool { return this >= JokerSuit && this <= Clover }
func (this CardSuit) Strength() int { return int(this) }
func (this CardSuit) String() string {
	if !this.IsValid() {
		return fmt.Sprintf("CardSuit(%d)", int(this))
	}
	return cardSuitNames[this]
}

//endregion

//region Card
// Card a playing card, a joker has both `JokerNumber` and `JokerSuit`
type Card struct {
	Number CardNumber
	Suit   CardSuit
}

func NewCard(number CardNumber, suit CardSuit) (Card, error) {
	if !number.IsValid() || !suit.IsValid() || (number == JokerNumber) != (suit == JokerSuit) {
		return Card{}, ErrInvalidArgument
	}
	return Card{Number: number, Suit: suit}, nil
}

// CardFromIndex create a card from ordinal of its number and suit, (0, 0) is the joker
func CardFromIndex(number, suit int) (Card, error) {
	if number == 0 && suit == 0 {
		return Joker(), nil
	}
	if number < int(Ace) || number > int(King) || suit < int(Spade) || suit > int(Clover) {
		return Card{}, ErrInvalidArgument
	}
	return Card{Number: CardNumber(number), Suit: CardSuit(suit)}, nil
}

func Joker() Card { return Card{Number: JokerNumber, Suit: JokerSuit} }

func (this Card) IsJoker() bool { return this.Number == JokerNumber }

// Strength order cards by number and then by suit
func (this Card) Strength() int { return int(this.Number)*int(Clover+1) + this.Suit.Strength() }

func (this Card) String() string {
	if this.IsJoker() {
		return "(" + this.Suit.String() + ")"
	}
	return "(" + this.Number.String() + "," + this.Suit.String() + ")"
}

// Format render only number or only suit of the card
func (this Card) Format(numberOnly bool) string {
	if numberOnly {
		return "(" + this.Number.String() + ")"
	}
	return "(" + this.Suit.String() + ")"
}

//endregion

//region Sorters
// CardLess report whether card `a` must be placed before card `b`
type CardLess = func(a, b Card) bool

// CardSorter order by strength and place jokers last
func CardSorter(a, b Card) bool {
	if a.IsJoker() || b.IsJoker() {
		return !a.IsJoker() && b.IsJoker()
	}
	return a.Strength() < b.Strength()
}

// PokerSorter is like `CardSorter` but aces are stronger than kings
func PokerSorter(a, b Card) bool {
	if a.IsJoker() || b.IsJoker() {
		return !a.IsJoker() && b.IsJoker()
	}
	aceA, aceB := a.Number == Ace, b.Number == Ace
	if aceA != aceB {
		return aceB
	}
	return a.Strength() < b.Strength()
}

//endregion

//region CardStock
// CardStock a deck of 52 cards and optional jokers
type CardStock struct {
	jokers int
	cards  []Card
}

func NewCardStock(jokers int) (*CardStock, error) {
	if jokers < 0 {
		return nil, ErrInvalidArgument
	}
	result := &CardStock{jokers: jokers}
	result.Initialize()
	return result, nil
}

// Initialize refill the stock with all cards in order, jokers last
func (this *CardStock) Initialize() {
	this.cards = make([]Card, 0, int(King)*int(Clover)+this.jokers)
	for number := Ace; number <= King; number++ {
		for suit := Spade; suit <= Clover; suit++ {
			this.cards = append(this.cards, Card{Number: number, Suit: suit})
		}
	}
	for i := 0; i < this.jokers; i++ {
		this.cards = append(this.cards, Joker())
	}
}

func (this *CardStock) Len() int { return len(this.cards) }
func (this *CardStock) Cards() []Card {
	result := make([]Card, len(this.cards))
	copy(result, this.cards)
	return result
}

func (this *CardStock) Shuffle(rnd *rand.Rand) {
	swap := func(i, j int) { this.cards[i], this.cards[j] = this.cards[j], this.cards[i] }
	if rnd == nil {
		rand.Shuffle(len(this.cards), swap)
	} else {
		rnd.Shuffle(len(this.cards), swap)
	}
}

// Take remove the top card of the stock and return it
func (this *CardStock) Take() (Card, error) {
	if len(this.cards) == 0 {
		return Card{}, ErrEmptyStock
	}
	card := this.cards[0]
	this.cards = this.cards[1:]
	return card, nil
}

//endregion

//region Hand
type HandMode int

const (
	HandDefault HandMode = iota
	HandWithIndex
	HandNumberOnly
	HandSuitOnly
)

type Hand []Card

// Show write cards of the hand using the mode, an empty hand is written as `(Empty)`
func (this Hand) Show(w io.Writer, mode HandMode) error {
	var err error
	if len(this) == 0 {
		_, err = io.WriteString(w, "(Empty)\n")
		return err
	}

	switch mode {
	case HandWithIndex:
		for i := 0; i < len(this) && err == nil; i++ {
			_, err = fmt.Fprintf(w, "%d: %s\n", i+1, this[i])
		}
	case HandNumberOnly, HandSuitOnly:
		for i := 0; i < len(this) && err == nil; i++ {
			_, err = fmt.Fprintln(w, this[i].Format(mode == HandNumberOnly))
		}
	default:
		for i := 0; i < len(this) && err == nil; i++ {
			_, err = io.WriteString(w, this[i].String())
		}
		if err == nil {
			_, err = io.WriteString(w, "\n")
		}
	}
	return err
}

func (this Hand) Sort() { this.SortFunc(CardSorter) }
func (this Hand) SortFunc(less CardLess) {
	sort.SliceStable(this, func(i, j int) bool { return less(this[i], this[j]) })
}

//endregion
