package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// runForGolden executes the CLI in-process and captures its output.
func runForGolden(t *testing.T, args ...string) []byte {
	t.Helper()

	// Reset flag state leaked by earlier runs.
	cfgPath = ""
	encodeRoundtrip = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.Bytes()
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)
}

func TestBuiltins(t *testing.T) {
	g := newGoldie(t)

	g.Assert(t, "builtins", runForGolden(t, "builtins"))
}

func TestEncode(t *testing.T) {
	g := newGoldie(t)

	cases := map[string][]string{
		"native":    {"encode", "notepad.exe", `C:\a b.txt`},
		"builtin":   {"encode", "cd", `C:\Program Files`},
		"roundtrip": {"encode", "--roundtrip", "notepad.exe", `C:\a b.txt`},
	}

	for tn, args := range cases {
		t.Run(tn, func(t *testing.T) {
			g.Assert(t, tn, runForGolden(t, args...))
		})
	}
}
