package shell

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephlewis42/myshell/core/logger"
	"github.com/stretchr/testify/require"
)

type eventCollector struct {
	events []logger.LogType
}

func (c *eventCollector) Record(event logger.LogType) error {
	c.events = append(c.events, event)
	return nil
}

type testShell struct {
	*Shell
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	events *eventCollector
}

func newTestShell(input string, opts ...Option) *testShell {
	ts := &testShell{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		events: &eventCollector{},
	}

	opts = append([]Option{WithEventRecorder(ts.events)}, opts...)
	ts.Shell = New(strings.NewReader(input), ts.stdout, ts.stderr, opts...)
	return ts
}

// chdirTemp moves the process into a fresh directory for the duration of the
// test and returns its resolved path.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(orig))
	})

	require.NoError(t, os.Chdir(dir))
	return dir
}

func requireProgram(t *testing.T, name string) {
	t.Helper()

	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}
