// Package launcher spawns a single child process whose lifetime is
// bound to the launcher's own: when the launcher goes away, the child
// and any processes it spawned are terminated rather than orphaned.
package launcher

import (
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/josephlewis42/winlaunch/core/cmdline"
	"github.com/josephlewis42/winlaunch/core/config"
)

// NotFoundExitStatus is returned when the requested program can't be
// located, following shell convention.
const NotFoundExitStatus = 127

// ErrNoArguments is returned by Run when the argument list is empty.
var ErrNoArguments = errors.New("no arguments specified")

// Launcher runs one child process inside a lifetime scope.
//
// Run may be called at most once per process: it installs a
// process-wide signal disposition and, on Windows, intentionally leaks
// the job object handle. Both are reclaimed when the launcher exits.
type Launcher struct {
	// Builtins classifies argv[0]. Defaults to the standard cmd.exe
	// set.
	Builtins *cmdline.BuiltinSet

	// Shell interprets builtin invocations. Defaults to
	// cmdline.DefaultShell.
	Shell string

	// Stderr receives the launcher's own diagnostics. Defaults to
	// os.Stderr. The child's streams are inherited, not redirected
	// here.
	Stderr io.Writer
}

// New builds a Launcher from configuration.
func New(cfg *config.Configuration) *Launcher {
	return &Launcher{
		Builtins: cmdline.NewBuiltinSet(cfg.ExtraBuiltins...),
		Shell:    cfg.Shell,
		Stderr:   os.Stderr,
	}
}

func (l *Launcher) builtins() *cmdline.BuiltinSet {
	if l.Builtins != nil {
		return l.Builtins
	}
	return cmdline.NewBuiltinSet()
}

// Encode returns the single command line Run would hand to the
// operating system for argv.
func (l *Launcher) Encode(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	if l.builtins().Classify(argv[0]) == cmdline.ShellBuiltin {
		return cmdline.EncodeBuiltin(l.Shell, argv)
	}
	return cmdline.EncodeArgv(argv)
}

// Run spawns argv as a child process bound to the launcher's lifetime,
// waits for it to terminate and returns its exit status.
//
// A missing program is an expected outcome: it is reported on Stderr
// and yields NotFoundExitStatus with a nil error. Any other failure
// means the host environment can't supervise processes; it is returned
// for the caller to treat as fatal. There is no retry: process launch
// is not idempotent.
func (l *Launcher) Run(argv []string) (int, error) {
	if len(argv) == 0 {
		return 1, ErrNoArguments
	}

	stderr := l.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	encoded := l.Encode(argv)

	// Keep the launcher alive across Ctrl+C so it can keep waiting on
	// the child; the console delivers the interrupt to the child on
	// its own through the shared process group.
	signal.Ignore(os.Interrupt)

	code, err := spawnBound(argv, encoded, stderr)
	if err != nil {
		return 1, err
	}
	return code, nil
}
