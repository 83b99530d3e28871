//go:build linux

package shell

import (
	"golang.org/x/sys/unix"
)

// siginfo_t si_code values for SIGCHLD, from <signal.h>.
const (
	cldExited  = 1
	cldKilled  = 2
	cldDumped  = 3
	cldTrapped = 4
	cldStopped = 5
)

// pollChild waits for state changes with waitid(2). WNOWAIT leaves a
// terminated child waitable so exec.Cmd.Wait can reap it.
func pollChild(pid int) childPoller {
	return func() (childState, error) {
		var info unix.Siginfo
		for {
			err := unix.Waitid(unix.P_PID, pid, &info, unix.WEXITED|unix.WSTOPPED|unix.WNOWAIT, nil)
			if err == unix.EINTR {
				continue
			}
			if err != nil {
				return childRunning, err
			}
			break
		}

		switch info.Code {
		case cldExited:
			return childExited, nil
		case cldKilled, cldDumped:
			return childSignaled, nil
		case cldStopped, cldTrapped:
			// Consume the stop so the next poll blocks until something new
			// happens.
			var consumed unix.Siginfo
			if err := unix.Waitid(unix.P_PID, pid, &consumed, unix.WSTOPPED|unix.WNOHANG, nil); err != nil && err != unix.EINTR {
				return childStopped, err
			}
			return childStopped, nil
		default:
			return childRunning, nil
		}
	}
}
