package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sequencePoller replays states, failing the test if polled too often.
func sequencePoller(t *testing.T, states ...childState) (childPoller, *int) {
	polls := 0
	return func() (childState, error) {
		if polls >= len(states) {
			t.Fatalf("polled %d times after terminal state", polls-len(states)+1)
		}
		state := states[polls]
		polls++
		return state, nil
	}, &polls
}

func TestAwaitTermination(t *testing.T) {
	cases := map[string]struct {
		states    []childState
		wantStops int
	}{
		"exited":                   {[]childState{childExited}, 0},
		"signaled":                 {[]childState{childSignaled}, 0},
		"stopped is not done":      {[]childState{childStopped, childExited}, 1},
		"stopped then killed":      {[]childState{childStopped, childStopped, childSignaled}, 2},
		"running states are noise": {[]childState{childRunning, childStopped, childRunning, childExited}, 1},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			poll, polls := sequencePoller(t, tc.states...)
			stops := 0

			err := awaitTermination(poll, func() { stops++ })

			assert.NoError(t, err)
			assert.Equal(t, len(tc.states), *polls)
			assert.Equal(t, tc.wantStops, stops)
		})
	}
}

func TestAwaitTerminationError(t *testing.T) {
	pollErr := errors.New("no child")
	err := awaitTermination(func() (childState, error) {
		return childRunning, pollErr
	}, nil)

	assert.ErrorIs(t, err, pollErr)
}

func TestChildStateTerminated(t *testing.T) {
	assert.False(t, childRunning.terminated())
	assert.False(t, childStopped.terminated())
	assert.True(t, childExited.terminated())
	assert.True(t, childSignaled.terminated())
	assert.Equal(t, "stopped", childStopped.String())
}
