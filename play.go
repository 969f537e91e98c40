package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vortsolvo/internal/solver"
)

const playInstructions = `Type the feedback for each guess as five symbol/letter pairs:
  .X  gray    X is not in the word
  _X  yellow  X is in the word, but not here
  !X  green   X is in the word, right here
  -X  skip    no information for this position
Example: .C_R!A.N.E     Type r for another guess from the same candidates.`

type playStyles struct {
	guess, muted, warn, success lipgloss.Style
}

func newPlayStyles(out io.Writer) playStyles {
	r := lipgloss.NewRenderer(out)
	return playStyles{
		guess:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6C7A89")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#F4D03F")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#6AAA64")),
	}
}

// playLoop drives one terminal session: print a guess, read feedback, repeat
// until one candidate remains, none remain, or input ends.
func playLoop(in io.Reader, out io.Writer, sess *solver.Session, interactive bool) error {
	st := newPlayStyles(out)
	scanner := bufio.NewScanner(in)

	if interactive {
		fmt.Fprintln(out, st.muted.Render(playInstructions))
	}

	res := sess.Guess()
	printGuess(out, st, "Guess:", res)
	for !done(out, st, res) {
		if interactive {
			fmt.Fprint(out, " >> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if solver.IsRegenerate(line) {
			res = sess.Regenerate()
			printGuess(out, st, "Another guess:", res)
			continue
		}

		fb, err := solver.ParseFeedback(line)
		if err != nil {
			fmt.Fprintln(out, st.warn.Render(err.Error()))
			continue
		}
		if err := sess.Apply(fb); err != nil {
			if errors.Is(err, solver.ErrContradictoryConstraint) {
				fmt.Fprintln(out, st.warn.Render(err.Error()+"; please check your input"))
				continue
			}
			return err
		}
		res = sess.Guess()
		printGuess(out, st, "Guess:", res)
	}
	return nil
}

func printGuess(out io.Writer, st playStyles, label string, res solver.GuessResult) {
	preview := "Possibilities: " + strings.Join(res.Possibilities, ", ")
	if res.Remaining > 0 {
		preview += fmt.Sprintf(" [... %d more word%s ...]", res.Remaining, plural(res.Remaining))
	}
	fmt.Fprintln(out, st.muted.Render(preview))
	fmt.Fprintln(out, label, st.guess.Render(res.Word))
}

// done reports whether the loop should stop after res and prints why.
func done(out io.Writer, st playStyles, res solver.GuessResult) bool {
	switch {
	case res.Solved:
		fmt.Fprintln(out, st.success.Render("Solved: "+res.Word))
		return true
	case !res.Found():
		fmt.Fprintln(out, st.warn.Render(ErrorNoGuess))
		return true
	}
	return false
}
