//go:build !linux

package shell

// pollChild defers to exec.Cmd.Wait, which only returns once the child has
// exited or been killed.
func pollChild(pid int) childPoller {
	return func() (childState, error) {
		return childExited, nil
	}
}
