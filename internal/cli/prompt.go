package cli

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// prompter runs regex-validated interactive prompts. Validation itself is
// delegated to pure functions over the captured groups; the prompter only
// owns the re-asking loop.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// query prompts until the trimmed input matches re and validate accepts the
// captured groups (everything after the full match). Invalid input re-asks;
// EOF aborts with an error.
func query[T any](p *prompter, msg string, re *regexp.Regexp, validate func(groups []string) (T, error)) (T, error) {
	var zero T
	for {
		fmt.Fprint(p.out, msg)

		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return zero, fmt.Errorf("reading input: %w", err)
		}

		m := re.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			fmt.Fprintln(p.out, "Invalid input format, please try again")
			continue
		}

		v, verr := validate(m[1:])
		if verr != nil {
			fmt.Fprintf(p.out, "Error: %v\n", verr)
			continue
		}
		return v, nil
	}
}
