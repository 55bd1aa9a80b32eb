package gallery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIdle = 40 * time.Millisecond

func TestControls_HideAfterIdle(t *testing.T) {
	c := NewControls(testIdle)
	t.Cleanup(c.Stop)

	assert.True(t, c.Visible())
	require.Eventually(t, func() bool { return !c.Visible() }, time.Second, 5*time.Millisecond)
}

func TestControls_TouchShowsAndRestarts(t *testing.T) {
	c := NewControls(testIdle)
	t.Cleanup(c.Stop)

	require.Eventually(t, func() bool { return !c.Visible() }, time.Second, 5*time.Millisecond)

	c.Touch()
	assert.True(t, c.Visible())

	require.Eventually(t, func() bool { return !c.Visible() }, time.Second, 5*time.Millisecond)
}

func TestControls_LoadingKeepsThemVisible(t *testing.T) {
	c := NewControls(testIdle)
	t.Cleanup(c.Stop)

	c.SetLoading(true)
	time.Sleep(3 * testIdle)
	assert.True(t, c.Visible())
	assert.True(t, c.Loading())

	c.SetLoading(false)
	assert.False(t, c.Visible())
}

func TestControls_StopCancelsTimer(t *testing.T) {
	c := NewControls(testIdle)
	c.Stop()

	time.Sleep(3 * testIdle)
	assert.True(t, c.Visible(), "a stopped timer must not fire")

	c.Touch()
	assert.True(t, c.Visible())
}

func TestControls_DefaultIdle(t *testing.T) {
	c := NewControls(0)
	defer c.Stop()

	assert.Equal(t, DefaultControlsIdle, c.idle)
}

func TestControls_WiredToNavigator(t *testing.T) {
	c := NewControls(testIdle)
	t.Cleanup(c.Stop)

	n := NewNavigator(records(1, 2))
	n.OnTransition(c.Touch)

	require.Eventually(t, func() bool { return !c.Visible() }, time.Second, 5*time.Millisecond)
	n.Open(1)
	assert.True(t, c.Visible())
}
