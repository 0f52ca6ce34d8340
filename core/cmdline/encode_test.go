package cmdline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeArg(t *testing.T) {
	cases := []struct {
		arg      string
		expected string
	}{
		{``, `""`},
		{`simple`, `"simple"`},
		{`a b`, `"a b"`},
		{`"`, `"\""`},
		{`a"b`, `"a\"b"`},
		{`a\"b`, `"a\\\"b"`},
		{`a\\"b`, `"a\\\\\"b"`},
		{`C:\`, `"C:\\"`},
		{`ends\\`, `"ends\\\\"`},
		{`mid\dle`, `"mid\dle"`},
		{`C:\a b.txt`, `"C:\a b.txt"`},
	}

	for _, tc := range cases {
		t.Run(tc.arg, func(t *testing.T) {
			assert.Equal(t, tc.expected, EscapeArg(tc.arg))
		})
	}
}

func TestEncodeArgv(t *testing.T) {
	cases := []struct {
		name     string
		argv     []string
		expected string
	}{
		{"empty", nil, ``},
		{"bare", []string{"echo", "hello"}, `echo hello`},
		{"space", []string{"notepad.exe", `C:\a b.txt`}, `notepad.exe "C:\a b.txt"`},
		{"empty-arg", []string{"prog", ""}, `prog ""`},
		{"glob", []string{"prog", "*.txt"}, `prog "*.txt"`},
		{"tilde", []string{"prog", "~user"}, `prog "~user"`},
		{"question", []string{"prog", "a?b"}, `prog "a?b"`},
		{"bracket", []string{"prog", "x[1]"}, `prog "x[1]"`},
		{"mixed", []string{"prog", "plain", "with space"}, `prog plain "with space"`},
		{"quote", []string{"prog", `say "hi"`}, `prog "say \"hi\""`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EncodeArgv(tc.argv))
		})
	}
}

func TestEncodeBuiltin(t *testing.T) {
	cases := []struct {
		name     string
		shell    string
		argv     []string
		expected string
	}{
		{"no-args", "", []string{"dir"}, `cmd.exe /D /C dir`},
		{"space", "", []string{"cd", `C:\Program Files`}, `cmd.exe /D /C cd ^"C:\Program Files^"`},
		{"ampersand", "", []string{"echo", "a&b"}, `cmd.exe /D /C echo a^&b`},
		{"percent", "", []string{"echo", "100%"}, `cmd.exe /D /C echo 100^%`},
		{"bang", "", []string{"echo", "hi!"}, `cmd.exe /D /C echo hi^!`},
		{"parens", "", []string{"echo", "(x)"}, `cmd.exe /D /C echo ^(x^)`},
		{"pipe-redirect", "", []string{"echo", "a|b", "c>d"}, `cmd.exe /D /C echo a^|b c^>d`},
		{"empty-arg", "", []string{"echo", ""}, `cmd.exe /D /C echo ^"^"`},
		{"first-arg-space", "", []string{"my cd"}, `cmd.exe /D /C ^"my^ cd^"`},
		{"shell-override", `C:\Windows\System32\cmd.exe`, []string{"cls"}, `C:\Windows\System32\cmd.exe /D /C cls`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EncodeBuiltin(tc.shell, tc.argv))
		})
	}
}

// TestEncodeArgvRoundTrip checks the core contract: re-tokenizing an
// encoded command line yields exactly the original argument list.
func TestEncodeArgvRoundTrip(t *testing.T) {
	cases := [][]string{
		{"notepad.exe"},
		{"notepad.exe", `C:\a b.txt`},
		{`C:\Program Files\tool.exe`, "arg"},
		{"prog", ""},
		{"prog", "", "", ""},
		{"prog", `a"b`},
		{"prog", `a\"b`},
		{"prog", `a\\"b`},
		{"prog", `"`},
		{"prog", `""`},
		{"prog", `\`},
		{"prog", `trailing\`},
		{"prog", `trailing\\`},
		{"prog", `C:\Program Files\`, "next"},
		{"prog", "with space", "two  spaces"},
		{"prog", `x\\\"y`},
		{"prog", `mid\dle`, `a\\b`},
		{"prog", "*.go", "~user", "a?b", "[x]"},
	}

	for _, argv := range cases {
		t.Run(strings.Join(argv, "|"), func(t *testing.T) {
			encoded := EncodeArgv(argv)
			assert.Equal(t, argv, Split(encoded), "encoded as %q", encoded)
		})
	}
}
