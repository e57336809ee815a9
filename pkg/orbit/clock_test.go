package orbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockAdvanceReturnsMinusOnePastDuration(t *testing.T) {
	c := NewClock(2)
	assert.Equal(t, 0, c.Tick())
	assert.Equal(t, 1, c.Advance())
	assert.Equal(t, 2, c.Advance())
	assert.Equal(t, -1, c.Advance())
}

func TestClockRunInvokesRegisteredActionsInOrder(t *testing.T) {
	c := NewClock(3)
	var seen []int
	c.Run(map[int]Action{
		0: func(tick int) { seen = append(seen, tick) },
		2: func(tick int) { seen = append(seen, tick) },
	})
	assert.Equal(t, []int{0, 2}, seen)
}
