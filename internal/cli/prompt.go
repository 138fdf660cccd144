// Package cli is the terminal surface: prompts, menus and one workflow
// handler per menu action.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aaronlin79/game-rental-system/internal/rental"
)

// Prompter reads one line per prompt from a blocking line-buffered
// reader. Validated variants reprompt until the input passes its format
// check; only a read failure escalates.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prints the indented prompt and reads one line.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "\t%s: ", label)
	s, err := p.in.ReadString('\n')
	s = strings.TrimRight(s, "\r\n")
	if err != nil && s == "" {
		return "", err
	}
	return s, nil
}

// Choice reads the menu selection, reprompting until it is numeric.
func (p *Prompter) Choice() (int, error) {
	for {
		fmt.Fprint(p.out, "Please make your choice: ")
		s, err := p.in.ReadString('\n')
		n, convErr := strconv.Atoi(strings.TrimSpace(s))
		if convErr == nil {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(p.out, "Your input is invalid!")
	}
}

// Int reprompts until the line parses as an integer.
func (p *Prompter) Int(label string) (int, error) {
	for {
		s, err := p.Line(label)
		n, convErr := strconv.Atoi(strings.TrimSpace(s))
		if convErr == nil {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(p.out, "Your input is invalid!")
	}
}

// IntMin is Int with a lower bound.
func (p *Prompter) IntMin(label string, min int) (int, error) {
	for {
		n, err := p.Int(label)
		if err != nil {
			return 0, err
		}
		if n >= min {
			return n, nil
		}
		fmt.Fprintf(p.out, "Please input a number of at least %d.\n", min)
	}
}

// Phone accepts only the +1-999-999-9999 format, checked by its exact
// 15-character length.
func (p *Prompter) Phone(label string) (string, error) {
	for {
		s, err := p.Line(label)
		if len(s) == 15 {
			return s, nil
		}
		if err != nil {
			return "", err
		}
		fmt.Fprintln(p.out, "Please input a phone number in the proper format")
	}
}

// RoleInput reprompts until the line is customer, employee or manager.
func (p *Prompter) RoleInput(label string) (rental.Role, error) {
	for {
		s, err := p.Line(label)
		if role := rental.Role(s); role.Valid() {
			return role, nil
		}
		if err != nil {
			return "", err
		}
		fmt.Fprintln(p.out, "Input a valid role")
	}
}

// Genre reads a catalog filter genre: empty means all genres, anything
// else must be in the fixed genre set. Input is lowercased.
func (p *Prompter) Genre() (string, error) {
	for {
		s, err := p.Line("Input genre (press 'Enter' if all genres are desired)")
		s = strings.ToLower(s)
		if s == "" || rental.KnownGenre(s) {
			return s, err
		}
		if err != nil {
			return "", err
		}
		fmt.Fprintln(p.out, "Invalid genre. Please input a valid genre or press 'Enter' for all genres.")
	}
}

// GenreRequired is Genre without the empty-for-all escape, for catalog
// edits.
func (p *Prompter) GenreRequired(label string) (string, error) {
	for {
		s, err := p.Line(label)
		s = strings.ToLower(s)
		if rental.KnownGenre(s) {
			return s, nil
		}
		if err != nil {
			return "", err
		}
		fmt.Fprintln(p.out, "Invalid genre. Please input a valid genre.")
	}
}

// Price reads an optional price bound: empty means unbounded, otherwise
// reprompt until numeric.
func (p *Prompter) Price(label string) (*float64, error) {
	for {
		s, err := p.Line(label)
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, err
		}
		if v, convErr := strconv.ParseFloat(s, 64); convErr == nil {
			return &v, nil
		}
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(p.out, "Please input a valid price.")
	}
}

// Float reprompts until the line parses as a number.
func (p *Prompter) Float(label string) (float64, error) {
	for {
		s, err := p.Line(label)
		if v, convErr := strconv.ParseFloat(strings.TrimSpace(s), 64); convErr == nil {
			return v, nil
		}
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(p.out, "Please input a valid price.")
	}
}

// Status reprompts until the line is a known tracking status.
func (p *Prompter) Status() (string, error) {
	for {
		s, err := p.Line("Input new status (Processing, Shipped, In Transit, Delivered, Returned)")
		if rental.KnownStatus(s) {
			return s, nil
		}
		if err != nil {
			return "", err
		}
		fmt.Fprintln(p.out, "Please input a valid status.")
	}
}
