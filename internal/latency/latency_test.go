package latency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWaits(t *testing.T) {
	start := time.Now()
	Fixed(20 * time.Millisecond).Wait()
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestNoneResolvesImmediately(t *testing.T) {
	start := time.Now()
	None.Wait()
	assert.Less(t, time.Since(start), 10*time.Millisecond)
}

func TestZeroProfileNeverWaits(t *testing.T) {
	p := Zero()
	start := time.Now()
	p.SessionRestore.Wait()
	p.SignIn.Wait()
	p.SignUp.Wait()
	p.FeedLoad.Wait()
	assert.Less(t, time.Since(start), 10*time.Millisecond)
}

func TestSleepHandlesNil(t *testing.T) {
	Sleep(nil)

	var p Profile
	Sleep(p.SignIn)
}

func TestDemoDelays(t *testing.T) {
	p := Demo()
	assert.Equal(t, Fixed(500*time.Millisecond), p.SessionRestore)
	assert.Equal(t, Fixed(time.Second), p.SignIn)
	assert.Equal(t, Fixed(time.Second), p.SignUp)
	assert.Equal(t, Fixed(time.Second), p.FeedLoad)
}
