package game

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// fakeClock moves forward by tick on every Now() and by d on every Sleep()
type fakeClock struct {
	now    time.Time
	tick   time.Duration
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {

	return &fakeClock{
		now:  time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
		tick: time.Millisecond,
	}
}

func (c *fakeClock) Now() time.Time {

	c.now = c.now.Add(c.tick)
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {

	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

// press is one scripted button press: the button goes down once after has
// passed since the player was last idle, and stays down for hold polls
type press struct {
	move  Move
	after time.Duration
	hold  int
}

// scriptedPlayer plays presses in order against the fake clock
type scriptedPlayer struct {
	clock   *fakeClock
	presses []press
	next    int

	armed   bool
	armedAt time.Time
	held    int
	polls   int
}

func (p *scriptedPlayer) CheckButton() Move {

	p.polls++
	if p.next >= len(p.presses) {
		return None
	}
	pr := p.presses[p.next]

	if !p.armed {
		p.armed = true
		p.armedAt = p.clock.now
	}

	if p.clock.now.Sub(p.armedAt) < pr.after {
		return None
	}

	if p.held <= pr.hold {
		p.held++
		return pr.move
	}

	// Released: move on to the next press
	p.next++
	p.armed = false
	p.held = 0
	return None
}

// pressed returns how many presses have been completed
func (p *scriptedPlayer) pressed() int {

	return p.next
}

type mockOutput struct {
	mock.Mock
}

// newMockOutput accepts any lights and any tone of the given length
func newMockOutput(tone time.Duration) *mockOutput {

	m := &mockOutput{}
	m.On("Emit", mock.Anything, tone).Return()
	m.On("SetLights", mock.Anything).Return().Maybe()
	return m
}

func (m *mockOutput) SetLights(mask Move) {
	m.Called(mask)
}

func (m *mockOutput) Emit(move Move, duration time.Duration) {
	m.Called(move, duration)
}

// emitted returns the moves sounded so far, in order
func (m *mockOutput) emitted() []Move {

	var moves []Move
	for _, c := range m.Calls {
		if c.Method == "Emit" {
			moves = append(moves, c.Arguments.Get(0).(Move))
		}
	}
	return moves
}

// scriptedPicker returns the station indexes in order, then repeats the last
type scriptedPicker struct {
	draws  []int
	next   int
	bounds []int
}

func (p *scriptedPicker) Intn(n int) int {

	p.bounds = append(p.bounds, n)
	d := p.draws[len(p.draws)-1]
	if p.next < len(p.draws) {
		d = p.draws[p.next]
	}
	p.next++
	return d
}

// seederFor returns a Seeder handing out picker and remembering the seed
func seederFor(picker Picker, seeds *[]int64) Seeder {

	return func(seed int64) Picker {
		if seeds != nil {
			*seeds = append(*seeds, seed)
		}
		return picker
	}
}

// indexes converts stations to the draws that produce them
func indexes(moves ...Move) []int {

	d := make([]int, len(moves))
	for i, m := range moves {
		for j, s := range Stations {
			if s == m {
				d[i] = j
			}
		}
	}
	return d
}

// correctPresses returns the presses that repeat seq for every round up to
// rounds, each made 100ms after the player is ready
func correctPresses(seq []Move, rounds int) []press {

	var presses []press
	for r := 1; r <= rounds; r++ {
		for _, m := range seq[:r] {
			presses = append(presses, press{move: m, after: 100 * time.Millisecond, hold: 3})
		}
	}
	return presses
}

// fakePin is a pin that remembers the last value written and returns a
// fixed value on reads
type fakePin struct {
	level  bool
	writes int
}

func (p *fakePin) Get() bool {

	return p.level
}

func (p *fakePin) Set(value bool) {

	p.level = value
	p.writes++
}

type mockBuzzer struct {
	mock.Mock
}

func (m *mockBuzzer) Buzz(duration time.Duration, halfPeriod time.Duration) {
	m.Called(duration, halfPeriod)
}
