// Package cmdline encodes argument lists into single Windows command
// line strings and back.
//
// Windows process creation passes the child one opaque string rather
// than an argument vector; the child re-tokenizes it using either the
// CommandLineToArgvW convention (native executables) or cmd.exe's own
// grammar (shell builtins). The encoders here guarantee that the child
// decodes back the exact argument list the caller supplied.
package cmdline

import "strings"

// DefaultShell is the program used to interpret shell builtins.
const DefaultShell = "cmd.exe"

const (
	// nativeEscapeSet holds the characters that force an argument to be
	// quoted. Space and quote are special to CommandLineToArgvW. The
	// rest are special to binaries built by Cygwin and its derivatives:
	// left unquoted they trigger glob expansion, tilde expansion and
	// response file parsing of the argument.
	nativeEscapeSet = ` "~@?*[`

	// builtinEscapeSet holds the characters that force quoting before a
	// command line is handed to cmd.exe.
	builtinEscapeSet = ` "`
)

// EscapeArg wraps arg in double quotes so the CommandLineToArgvW
// grammar decodes it back to exactly arg.
//
// A run of n backslashes directly before an embedded quote has to be
// doubled plus one to escape the quote itself; a trailing run is only
// doubled because the closing quote is structural rather than literal.
func EscapeArg(arg string) string {
	var out strings.Builder
	out.Grow(len(arg) + 2)
	out.WriteByte('"')

	backslashes := 0
	span := 0
	for i := 0; i < len(arg); i++ {
		switch arg[i] {
		case '\\':
			backslashes++
		case '"':
			out.WriteString(arg[span:i])
			out.WriteString(strings.Repeat(`\`, backslashes+1))
			span = i
			backslashes = 0
		default:
			backslashes = 0
		}
	}
	out.WriteString(arg[span:])
	out.WriteString(strings.Repeat(`\`, backslashes))
	out.WriteByte('"')
	return out.String()
}

// EncodeArgv encodes argv as a single command line under the
// CommandLineToArgvW grammar. Arguments that need no quoting are passed
// through verbatim.
func EncodeArgv(argv []string) string {
	var out strings.Builder
	for i, arg := range argv {
		if i != 0 {
			out.WriteByte(' ')
		}
		if arg != "" && !strings.ContainsAny(arg, nativeEscapeSet) {
			out.WriteString(arg)
		} else {
			out.WriteString(EscapeArg(arg))
		}
	}
	return out.String()
}

// isCmdMetachar reports whether cmd.exe treats ch specially.
//
// https://blogs.msdn.microsoft.com/twistylittlepassagesallalike/2011/04/23/everyone-quotes-command-line-arguments-the-wrong-way/
func isCmdMetachar(ch byte) bool {
	switch ch {
	case '(', ')', '%', '!', '^', '"', '<', '>', '&', '|':
		return true
	default:
		return false
	}
}

// EncodeBuiltin encodes argv as a "shell /D /C ..." command line so the
// shell runs argv[0] as one of its builtins with the remaining
// arguments intact. An empty shell selects DefaultShell.
//
// Each argument is first quoted under the native grammar, because
// cmd.exe hands the tail to the same loader convention, then every
// cmd.exe metacharacter is caret-escaped. The first argument also gets
// its spaces caret-escaped: later arguments' spaces are protected by
// the surrounding quotes but the command name is not quoted by cmd.exe
// the same way.
func EncodeBuiltin(shell string, argv []string) string {
	if shell == "" {
		shell = DefaultShell
	}

	var out strings.Builder
	out.WriteString(shell)
	out.WriteString(" /D /C")

	for i, arg := range argv {
		out.WriteByte(' ')

		if arg == "" || strings.ContainsAny(arg, builtinEscapeSet) {
			arg = EscapeArg(arg)
		}

		for j := 0; j < len(arg); j++ {
			ch := arg[j]
			if isCmdMetachar(ch) || (i == 0 && ch == ' ') {
				out.WriteByte('^')
			}
			out.WriteByte(ch)
		}
	}
	return out.String()
}
