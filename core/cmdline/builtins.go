package cmdline

import (
	"sort"
	"strings"
)

// Kind classifies how a command name has to be invoked.
type Kind int

const (
	// NativeExecutable is a standalone program that CreateProcess can
	// resolve and run directly.
	NativeExecutable Kind = iota
	// ShellBuiltin is implemented inside cmd.exe and has to be invoked
	// by asking the shell to interpret it.
	ShellBuiltin
)

func (k Kind) String() string {
	switch k {
	case ShellBuiltin:
		return "shell builtin"
	default:
		return "native executable"
	}
}

// cmdBuiltins holds the cmd.exe builtin command names, lowercase and
// sorted. Windows has no API that answers "is this name a builtin?" so
// the set is a fixed fact about the shell.
var cmdBuiltins = []string{
	"assoc", "break", "call", "cd", "chdir", "cls",
	"color", "copy", "date", "del", "dir", "dpath",
	"echo", "endlocal", "erase", "exit", "for", "ftype",
	"goto", "if", "keys", "md", "mkdir", "mklink",
	"move", "path", "pause", "popd", "prompt", "pushd",
	"rd", "rem", "ren", "rename", "rmdir", "set",
	"setlocal", "shift", "start", "time", "title", "type",
	"ver", "verify", "vol",
}

// BuiltinSet answers case-insensitive membership queries against the
// cmd.exe builtin names.
type BuiltinSet struct {
	names []string // lowercase, sorted
}

// NewBuiltinSet returns the standard cmd.exe builtin set extended with
// any extra names from configuration.
func NewBuiltinSet(extra ...string) *BuiltinSet {
	names := make([]string, 0, len(cmdBuiltins)+len(extra))
	names = append(names, cmdBuiltins...)
	for _, name := range extra {
		names = append(names, strings.ToLower(name))
	}
	sort.Strings(names)
	return &BuiltinSet{names: names}
}

// Contains reports whether name is in the set. Matching is
// case-insensitive because cmd.exe is.
func (s *BuiltinSet) Contains(name string) bool {
	name = strings.ToLower(name)
	i := sort.SearchStrings(s.names, name)
	return i < len(s.names) && s.names[i] == name
}

// Classify returns how argv0 has to be invoked.
func (s *BuiltinSet) Classify(argv0 string) Kind {
	if s.Contains(argv0) {
		return ShellBuiltin
	}
	return NativeExecutable
}

// Names returns the names in the set, sorted.
func (s *BuiltinSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
