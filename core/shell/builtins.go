package shell

import (
	"fmt"
	"os"

	"github.com/josephlewis42/myshell/core/logger"
)

// Builtin is a command implemented by the shell itself.
type Builtin interface {
	Main(s *Shell, args []string) Continuation
}

// BuiltinFunc adapts a function to the Builtin interface.
type BuiltinFunc func(s *Shell, args []string) Continuation

func (f BuiltinFunc) Main(s *Shell, args []string) Continuation {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

type builtinEntry struct {
	name    string
	builtin Builtin
}

// builtins is searched in order; it is populated in init because help reads
// it.
var builtins []builtinEntry

// BuiltinNames lists the builtin commands in dispatch order.
func BuiltinNames() []string {
	out := make([]string, 0, len(builtins))
	for _, entry := range builtins {
		out = append(out, entry.name)
	}
	return out
}

func lookupBuiltin(name string) (Builtin, bool) {
	for _, entry := range builtins {
		if entry.name == name {
			return entry.builtin, true
		}
	}
	return nil, false
}

// Cd changes the working directory of the shell and every process it starts
// afterwards.
func Cd(s *Shell, args []string) Continuation {
	if len(args) < 2 {
		s.errorf("cd: expected argument")
		s.record(&logger.InvalidInvocation{Command: args, Error: "missing argument"})
		return Continue
	}

	if err := os.Chdir(args[1]); err != nil {
		s.errorf("%v", err)
		s.record(&logger.InvalidInvocation{Command: args, Error: err.Error()})
	}
	return Continue
}

// Help prints usage and the list of builtins.
func Help(s *Shell, args []string) Continuation {
	w := s.Stdout
	fmt.Fprintln(w, "myshell is your shell")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Type what you'd like to run and press enter.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "These are the built-in commands:")
	for _, name := range BuiltinNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common UNIX commands such as ls, rm, etc also work.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Piping, redirection, autocompletion and globbing do not.")
	fmt.Fprintln(w, "Only whitespace separated arguments please.")
	return Continue
}

// Exit ends the session regardless of arguments.
func Exit(s *Shell, args []string) Continuation {
	return Stop
}

func init() {
	builtins = []builtinEntry{
		{"cd", BuiltinFunc(Cd)},
		{"help", BuiltinFunc(Help)},
		{"exit", BuiltinFunc(Exit)},
	}
}
