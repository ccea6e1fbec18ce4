package menu

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// ProcResult holds the captured streams and exit status of one tool run.
type ProcResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ProcRunner стартира menu програмата като subprocess. Може да се подмени
// с fake при тестове или когато caller-ът иска друг execution механизъм.
type ProcRunner func(exe string, args []string, input string) (ProcResult, error)

// RunProcess is the default ProcRunner. It feeds input to the tool on
// stdin, blocks until it exits, and captures both output streams. A
// non-zero exit is reported through ProcResult, not as an error; only
// failures to start the process at all produce one.
func RunProcess(exe string, args []string, input string) (ProcResult, error) {
	cmd := exec.Command(exe, args...)
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := ProcResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		// exec.ErrNotFound covers PATH lookups; a path-qualified
		// executable fails with fs.ErrNotExist instead
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return res, fmt.Errorf("%w: %s", ErrExecutableNotFound, exe)
		}
		return res, fmt.Errorf("failed to start %s: %w", exe, err)
	}
	return res, nil
}

// Available проверява дали програмата съществува в PATH
func Available(exe string) bool {
	_, err := exec.LookPath(exe)
	return err == nil
}
