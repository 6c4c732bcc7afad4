package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_Order(t *testing.T) {
	assert := assert.New(t)

	clk := &Manual{}
	var fired []string

	clk.AfterFunc(20*time.Millisecond, func() { fired = append(fired, "b") })
	clk.AfterFunc(10*time.Millisecond, func() { fired = append(fired, "a") })
	clk.AfterFunc(20*time.Millisecond, func() { fired = append(fired, "c") })

	clk.Advance(15 * time.Millisecond)
	assert.Equal([]string{"a"}, fired)
	assert.Equal(15*time.Millisecond, clk.Now())

	clk.Advance(5 * time.Millisecond)
	assert.Equal([]string{"a", "b", "c"}, fired)
	assert.Equal(0, clk.Pending())
}

func TestManual_Stop(t *testing.T) {
	assert := assert.New(t)

	clk := &Manual{}
	fired := false

	tm := clk.AfterFunc(time.Second, func() { fired = true })
	assert.True(tm.Stop())
	assert.False(tm.Stop())

	clk.Advance(2 * time.Second)
	assert.False(fired)
}

func TestManual_Rearm(t *testing.T) {
	assert := assert.New(t)

	clk := &Manual{}
	var at []time.Duration

	var tick func()
	tick = func() {
		at = append(at, clk.Now())
		clk.AfterFunc(100*time.Millisecond, tick)
	}
	clk.AfterFunc(100*time.Millisecond, tick)

	clk.Advance(350 * time.Millisecond)
	assert.Equal([]time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}, at)
}
