package toolbox

import (
	"math/rand"
	"sort"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
)

type BingoBall int

func (this BingoBall) Number() int    { return int(this) }
func (this BingoBall) String() string { return strconv.Itoa(int(this)) }

// BingoMachine hold balls numbered from 1 to its size and remember which numbers are already drawn
type BingoMachine struct {
	size  int
	balls []BingoBall
	drawn mapset.Set[int]
}

func NewBingoMachine(size int) (*BingoMachine, error) {
	if size < 0 {
		return nil, ErrInvalidArgument
	}
	result := &BingoMachine{size: size, drawn: mapset.NewThreadUnsafeSet[int]()}
	result.Initialize()
	return result, nil
}

// Initialize put all balls back to the machine in ascending order
func (this *BingoMachine) Initialize() {
	this.balls = make([]BingoBall, this.size)
	for i := 0; i < this.size; i++ {
		this.balls[i] = BingoBall(i + 1)
	}
	this.drawn.Clear()
}

func (this *BingoMachine) Len() int  { return len(this.balls) }
func (this *BingoMachine) Size() int { return this.size }

// Shuffle shuffle remaining balls, a nil `rnd` use the global source of `math/rand`
func (this *BingoMachine) Shuffle(rnd *rand.Rand) {
	swap := func(i, j int) { this.balls[i], this.balls[j] = this.balls[j], this.balls[i] }
	if rnd == nil {
		rand.Shuffle(len(this.balls), swap)
	} else {
		rnd.Shuffle(len(this.balls), swap)
	}
}

func (this *BingoMachine) SortAsc() {
	this.Sort(func(a, b BingoBall) bool { return a < b })
}
func (this *BingoMachine) SortDesc() {
	this.Sort(func(a, b BingoBall) bool { return a > b })
}
func (this *BingoMachine) Sort(less func(a, b BingoBall) bool) {
	sort.SliceStable(this.balls, func(i, j int) bool { return less(this.balls[i], this.balls[j]) })
}

// Balls return a copy of the balls that are still in the machine
func (this *BingoMachine) Balls() []BingoBall {
	result := make([]BingoBall, len(this.balls))
	copy(result, this.balls)
	return result
}

// Ball return the first ball without removing it
func (this *BingoMachine) Ball() (BingoBall, error) { return this.BallAt(0) }
func (this *BingoMachine) BallAt(index int) (BingoBall, error) {
	if index < 0 || index >= len(this.balls) {
		return 0, ErrBallNotFound
	}
	return this.balls[index], nil
}

func (this *BingoMachine) Remove() error { return this.RemoveAt(0) }
func (this *BingoMachine) RemoveAt(index int) error {
	if index < 0 || index >= len(this.balls) {
		return ErrBallNotFound
	}
	this.drawn.Add(this.balls[index].Number())
	this.balls = append(this.balls[:index], this.balls[index+1:]...)
	return nil
}

// Draw take the first ball out of the machine
func (this *BingoMachine) Draw() (BingoBall, error) {
	ball, err := this.Ball()
	if err != nil {
		return 0, err
	}
	return ball, this.Remove()
}

// Drawn return numbers of the balls that are taken out of the machine
func (this *BingoMachine) Drawn() mapset.Set[int] { return this.drawn.Clone() }
func (this *BingoMachine) IsDrawn(number int) bool {
	return this.drawn.Contains(number)
}
