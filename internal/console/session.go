// Package console implements the line-oriented interactive menu: show
// options, read a choice, read a value, print the conversion, repeat
// until the user exits. All IO goes through injected reader/writer so
// sessions are fully scriptable in tests.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/apereda/gradus/internal/domain"
	"github.com/apereda/gradus/internal/usecase"
)

// ErrInputClosed is returned when stdin is exhausted before the user
// picks Exit. Callers map it to a non-zero exit status.
var ErrInputClosed = errors.New("input closed")

type choice int

const (
	choiceCelsiusToFahrenheit choice = iota + 1
	choiceFahrenheitToCelsius
	choiceExit
)

type Session struct {
	in  *bufio.Scanner
	out io.Writer
	uc  *usecase.ConvertTemperature
	log *slog.Logger
}

func NewSession(in io.Reader, out io.Writer, uc *usecase.ConvertTemperature, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Session{
		in:  bufio.NewScanner(in),
		out: out,
		uc:  uc,
		log: log,
	}
}

// Run drives the menu loop until the user selects Exit (returns nil) or
// the input is exhausted (returns ErrInputClosed). Invalid input never
// ends the session; it re-prompts in place.
func (s *Session) Run(ctx context.Context) error {
	for {
		s.printMenu()

		c, err := s.readChoice()
		if err != nil {
			return err
		}

		var scale domain.Scale
		switch c {
		case choiceExit:
			fmt.Fprintln(s.out, "Thank you for using Temperature Converter. Goodbye!")
			s.log.Info("session.exit")
			return nil
		case choiceCelsiusToFahrenheit:
			scale = domain.Celsius
		case choiceFahrenheitToCelsius:
			scale = domain.Fahrenheit
		}

		value, err := s.readValue(scale)
		if err != nil {
			return err
		}

		conv, err := s.uc.Execute(ctx, domain.Temperature{Value: value, Scale: scale})
		if err != nil {
			fmt.Fprintf(s.out, "Conversion Error: %v\n", err)
			continue
		}

		fmt.Fprintln(s.out, conv)
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "\n--- Temperature Converter ---")
	fmt.Fprintln(s.out, "1. Celsius to Fahrenheit")
	fmt.Fprintln(s.out, "2. Fahrenheit to Celsius")
	fmt.Fprintln(s.out, "3. Exit")
}

// readChoice prompts until the line parses as an integer in [1,3].
func (s *Session) readChoice() (choice, error) {
	for {
		fmt.Fprint(s.out, "Enter your choice (1-3): ")

		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(s.out, "Error: Please enter a number between 1 and 3.")
			continue
		}
		if n < 1 || n > 3 {
			fmt.Fprintln(s.out, "Invalid choice. Please select 1, 2, or 3.")
			continue
		}
		return choice(n), nil
	}
}

// readValue prompts until the line parses as a real number.
func (s *Session) readValue(scale domain.Scale) (float64, error) {
	for {
		fmt.Fprintf(s.out, "Enter temperature in %s: ", scale)

		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		v, convErr := strconv.ParseFloat(line, 64)
		if convErr != nil {
			fmt.Fprintln(s.out, "Error: Please enter a valid number.")
			continue
		}
		return v, nil
	}
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}
