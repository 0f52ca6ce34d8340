//go:build !windows
// +build !windows

package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// spawnBound is the non-Windows stand-in used for development and
// testing. There is no job object to lean on, so the child is placed
// in its own process group instead, and argv is passed through
// directly: Unix execs argument vectors, so the encoded line is only
// meaningful to a Windows loader.
func spawnBound(argv []string, encoded string, stderr io.Writer) (int, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return 128 + int(status.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}
	// Path-qualified programs miss with ENOENT rather than ErrNotFound.
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stderr, "%s: not found\n", argv[0])
		return NotFoundExitStatus, nil
	}
	return 1, fmt.Errorf("unable to create process: %w", err)
}
