// Package latency provides the artificial network delay the stores apply
// to operations that stand in for a server round trip. The delay is
// injectable so tests run with no waiting at all.
package latency

import "time"

// Delayer suspends the caller for one simulated round trip. Wait is not
// cancellable once started; callers that lose interest simply ignore the
// eventual result.
type Delayer interface {
	Wait()
}

type fixed time.Duration

func (f fixed) Wait() {
	if f > 0 {
		time.Sleep(time.Duration(f))
	}
}

// Fixed returns a Delayer that sleeps d on every Wait.
func Fixed(d time.Duration) Delayer { return fixed(d) }

// None waits not at all.
var None Delayer = fixed(0)

// Profile bundles the per-operation delays of the simulated backend.
type Profile struct {
	SessionRestore Delayer
	SignIn         Delayer
	SignUp         Delayer
	FeedLoad       Delayer
}

// Demo reproduces the delays the mock client shipped with: half a second
// to restore a session, a full second for everything else.
func Demo() Profile {
	return Profile{
		SessionRestore: Fixed(500 * time.Millisecond),
		SignIn:         Fixed(time.Second),
		SignUp:         Fixed(time.Second),
		FeedLoad:       Fixed(time.Second),
	}
}

// Zero is the profile tests run with: every operation resolves
// immediately.
func Zero() Profile {
	return Profile{
		SessionRestore: None,
		SignIn:         None,
		SignUp:         None,
		FeedLoad:       None,
	}
}

// Sleep waits on d, treating a nil Delayer as no delay.
func Sleep(d Delayer) {
	if d != nil {
		d.Wait()
	}
}
