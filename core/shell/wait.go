package shell

// childState is the status of a child process as reported by the OS.
type childState int

const (
	childRunning childState = iota
	childStopped
	childExited
	childSignaled
)

func (c childState) String() string {
	switch c {
	case childRunning:
		return "running"
	case childStopped:
		return "stopped"
	case childExited:
		return "exited"
	case childSignaled:
		return "signaled"
	default:
		return "unknown"
	}
}

// terminated reports whether the child can never run again. A stopped child
// can still be continued, so it is not terminated.
func (c childState) terminated() bool {
	return c == childExited || c == childSignaled
}

// childPoller blocks until the child changes state and reports the new state.
type childPoller func() (childState, error)

// awaitTermination polls until the child has exited or been killed by a
// signal, calling onStop each time it is observed stopped.
func awaitTermination(poll childPoller, onStop func()) error {
	for {
		state, err := poll()
		if err != nil {
			return err
		}

		if state.terminated() {
			return nil
		}

		if state == childStopped && onStop != nil {
			onStop()
		}
	}
}
