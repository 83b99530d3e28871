package shell

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"

	"github.com/josephlewis42/myshell/core/logger"
)

// launch runs an external program found on PATH and blocks until it has
// exited or been killed. The child's status never affects the shell.
func (s *Shell) launch(args []string) Continuation {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	// Ctrl-C while a child runs belongs to the child.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	if err := cmd.Start(); err != nil {
		s.errorf("%v", err)
		s.record(&logger.UnknownCommand{Command: args, ErrorMessage: err.Error()})
		return Continue
	}

	pid := cmd.Process.Pid
	s.log.Debug("started", "pid", pid, "path", cmd.Path)
	s.record(&logger.RunCommand{Command: args, ResolvedCommandPath: cmd.Path})

	err := awaitTermination(pollChild(pid), func() {
		s.log.Debug("child stopped, still waiting", "pid", pid)
	})
	if err != nil {
		s.log.Warn("polling child status", "pid", pid, "err", err)
	}

	// Reap the child and flush any copied output.
	err = cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		s.log.Debug("terminated", "pid", pid, "status", 0)
	case errors.As(err, &exitErr):
		s.log.Debug("terminated", "pid", pid, "status", exitErr.ProcessState.String())
	default:
		s.log.Warn("waiting for child", "pid", pid, "err", err)
	}

	return Continue
}
