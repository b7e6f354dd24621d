// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/scholar-tracker/internal/scholar"
)

// promptState is the interactive decision state for one record. A
// prompt starts in stateAwaiting and loops until the operator's answer
// resolves it to confirmed, skipped, or manual.
type promptState int

const (
	stateAwaiting promptState = iota
	stateConfirmed
	stateSkipped
	stateManual
)

// prompter reads operator decisions line by line from an injected
// reader, so tests can script entire sessions.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	if in == nil {
		in = strings.NewReader("")
	}
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// line returns the next trimmed input line. EOF reports ok=false and
// resolves any prompt as skipped.
func (p *prompter) line() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// confirm resolves a single-candidate prompt. defaultAccept makes an
// empty answer count as yes and is used when the profile name matched
// exactly. Any unrecognized answer drops to manual entry so the
// operator can type the ID they meant.
func (p *prompter) confirm(question string, defaultAccept bool) promptState {
	state := stateAwaiting
	for state == stateAwaiting {
		fmt.Fprint(p.out, question)
		answer, ok := p.line()
		if !ok {
			return stateSkipped
		}
		switch strings.ToLower(answer) {
		case "":
			if defaultAccept {
				state = stateConfirmed
			} else {
				state = stateManual
			}
		case "y", "yes":
			state = stateConfirmed
		case "skip":
			state = stateSkipped
		default:
			state = stateManual
		}
	}
	return state
}

// choose resolves a multiple-candidate prompt, returning the selected
// index when confirmed. Invalid input re-prompts.
func (p *prompter) choose(n int) (int, promptState) {
	for {
		fmt.Fprintf(p.out, "  Select 1-%d, 'n' for none, 'manual' for manual entry, or 'skip': ", n)
		answer, ok := p.line()
		if !ok {
			return 0, stateSkipped
		}
		switch strings.ToLower(answer) {
		case "n", "skip":
			return 0, stateSkipped
		case "manual":
			return 0, stateManual
		default:
			idx, err := strconv.Atoi(answer)
			if err != nil {
				fmt.Fprintln(p.out, "  Invalid input. Please enter a number, 'n', 'manual', or 'skip'")
				continue
			}
			if idx < 1 || idx > n {
				fmt.Fprintf(p.out, "  Invalid choice. Please select 1-%d\n", n)
				continue
			}
			return idx - 1, stateConfirmed
		}
	}
}

// manualID walks the operator through finding and entering a scholar
// ID by hand. It returns ok=false when the operator skips or declares
// that no profile exists. Entered IDs keep their case; only command
// words are case-insensitive.
func (p *prompter) manualID(name string) (string, bool) {
	fmt.Fprintf(p.out, "\n  Manual search required for: %s\n", name)
	fmt.Fprintf(p.out, "  Search URL: %s\n", scholar.SearchURL(name))
	fmt.Fprint(p.out, "\n  Instructions:\n")
	fmt.Fprint(p.out, "  1. Open the URL above in your browser\n")
	fmt.Fprint(p.out, "  2. Find the correct profile and open it\n")
	fmt.Fprint(p.out, "  3. Copy the 'user=' value from the profile URL\n")

	for {
		fmt.Fprint(p.out, "\n  Enter scholar_id (or 'skip' to skip, 'none' if no profile): ")
		raw, ok := p.line()
		if !ok {
			return "", false
		}
		switch strings.ToLower(raw) {
		case "skip":
			return "", false
		case "none":
			fmt.Fprintln(p.out, "  marked as no profile")
			return "", false
		case "":
			fmt.Fprintln(p.out, "  Please enter a scholar_id or 'skip'")
		default:
			if !scholar.ValidID(raw) {
				fmt.Fprintln(p.out, "  That doesn't look like a valid scholar_id. Try again.")
				continue
			}
			fmt.Fprintf(p.out, "\n  Confirmation URL: %s\n", scholar.ProfileURL(raw))
			fmt.Fprint(p.out, "  Is this correct? (y/n): ")
			answer, ok := p.line()
			if !ok {
				return "", false
			}
			if strings.EqualFold(answer, "y") {
				return raw, true
			}
			fmt.Fprintln(p.out, "  Let's try again...")
		}
	}
}
