package buzzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type edge struct {
	pin   string
	level bool
}

type tracePin struct {
	name  string
	trace *[]edge
}

func (p tracePin) Set(value bool) {

	*p.trace = append(*p.trace, edge{pin: p.name, level: value})
}

func TestBuzz(t *testing.T) {

	var trace []edge
	var delays []time.Duration
	p := NewWithDelay(tracePin{"a", &trace}, tracePin{"b", &trace}, func(d time.Duration) {
		delays = append(delays, d)
	})

	// four whole 2ms cycles fit in each; what is left over is dropped
	p.Buzz(10*time.Millisecond, time.Millisecond)
	p.Buzz(9*time.Millisecond, time.Millisecond)

	assert.Len(t, delays, 16)
	for _, d := range delays {
		assert.Equal(t, time.Millisecond, d)
	}

	// first cycle: a low/b high, then a high/b low
	assert.Equal(t, []edge{{"a", false}, {"b", true}, {"a", true}, {"b", false}}, trace[:4])

	// ends with both sides low
	assert.Equal(t, []edge{{"a", false}, {"b", false}}, trace[len(trace)-2:])
}

func TestBuzzTooShort(t *testing.T) {

	var trace []edge
	called := false
	p := NewWithDelay(tracePin{"a", &trace}, tracePin{"b", &trace}, func(time.Duration) { called = true })

	p.Buzz(2*time.Millisecond, time.Millisecond)
	p.Buzz(time.Second, 0)

	assert.False(t, called)
	assert.Equal(t, []edge{{"a", false}, {"b", false}}, trace)
}

func TestFrequency(t *testing.T) {

	assert.InDelta(t, 440.1, Frequency(1136*time.Microsecond), 0.1)
	assert.InDelta(t, 880.3, Frequency(568*time.Microsecond), 0.1)
	assert.Zero(t, Frequency(0))
}
