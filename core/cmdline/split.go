package cmdline

import "strings"

// Split decodes a command line into the argument vector a spawned
// program would see, following the CommandLineToArgvW grammar. It is
// the inverse of EncodeArgv for any argv whose first element is a plain
// program name.
//
// The grammar: outside quotes, spaces and tabs separate arguments. A
// run of 2n backslashes before a quote yields n backslashes and the
// quote toggles quoted mode; 2n+1 backslashes before a quote yields n
// backslashes and a literal quote. Backslashes not followed by a quote
// are literal. Inside quotes, a doubled quote yields one literal quote.
func Split(cmdline string) []string {
	if cmdline == "" {
		return nil
	}

	var argv []string
	i := 0

	// The program name follows a simpler grammar: a leading quote spans
	// to the next quote and nothing is escaped; otherwise it spans to
	// the first whitespace.
	var prog strings.Builder
	if cmdline[i] == '"' {
		i++
		for i < len(cmdline) && cmdline[i] != '"' {
			prog.WriteByte(cmdline[i])
			i++
		}
		if i < len(cmdline) {
			i++ // closing quote
		}
	} else {
		for i < len(cmdline) && cmdline[i] != ' ' && cmdline[i] != '\t' {
			prog.WriteByte(cmdline[i])
			i++
		}
	}
	argv = append(argv, prog.String())

	for {
		for i < len(cmdline) && (cmdline[i] == ' ' || cmdline[i] == '\t') {
			i++
		}
		if i == len(cmdline) {
			return argv
		}

		var arg strings.Builder
		inQuotes := false
	scan:
		for i < len(cmdline) {
			switch ch := cmdline[i]; {
			case ch == '\\':
				n := 0
				for i < len(cmdline) && cmdline[i] == '\\' {
					n++
					i++
				}
				if i < len(cmdline) && cmdline[i] == '"' {
					arg.WriteString(strings.Repeat(`\`, n/2))
					if n%2 == 1 {
						// Odd run: the quote is escaped.
						arg.WriteByte('"')
						i++
					}
					// Even run: the quote is structural and is
					// handled on the next iteration.
				} else {
					arg.WriteString(strings.Repeat(`\`, n))
				}
			case ch == '"':
				if inQuotes && i+1 < len(cmdline) && cmdline[i+1] == '"' {
					arg.WriteByte('"')
					i += 2
				} else {
					inQuotes = !inQuotes
					i++
				}
			case !inQuotes && (ch == ' ' || ch == '\t'):
				break scan
			default:
				arg.WriteByte(ch)
				i++
			}
		}
		argv = append(argv, arg.String())
	}
}
