package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
	"github.com/AntonioJCosta/grocerytracker/internal/handlers/ui"
	"github.com/rs/zerolog"
)

// ErrInvalidUserInput indicates a menu selection that is not a number between 1 and 4.
var ErrInvalidUserInput = errors.New("invalid user input")

const (
	choiceQuery = iota + 1
	choiceList
	choiceHistogram
	choiceExit
)

type menu struct {
	store  ports.FrequencyStore
	in     *bufio.Reader
	out    io.Writer
	logger zerolog.Logger
}

func newMenu(store ports.FrequencyStore, in io.Reader, out io.Writer, logger zerolog.Logger) *menu {
	return &menu{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run shows the menu until the user exits or input ends.
func (m *menu) Run() error {
	for {
		m.printMenu()

		line, err := m.readLine()
		if errors.Is(err, io.EOF) {
			m.exit()
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		choice, err := parseMenuChoice(line)
		if err != nil {
			m.logger.Debug().Err(err).Msg("menu selection rejected")
			fmt.Fprintln(m.out, ui.WarningColor("Invalid input. Please enter a number between 1 and 4."))
			continue
		}

		switch choice {
		case choiceQuery:
			fmt.Fprint(m.out, ui.PromptColor("Enter item name to search frequency: "))
			item, err := m.readLine()
			if errors.Is(err, io.EOF) {
				m.exit()
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read item name: %w", err)
			}
			printQueryResult(m.out, item, m.store.GetFrequency(item))
		case choiceList:
			fmt.Fprintln(m.out, ui.HeaderColor("\nFREQUENCY LIST"))
			printFrequencyList(m.out, m.store.AllFrequencies())
		case choiceHistogram:
			fmt.Fprintln(m.out, ui.HeaderColor("\nHISTOGRAM"))
			printHistogram(m.out, m.store.RenderHistogram())
		case choiceExit:
			m.exit()
			return nil
		}
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out, ui.HeaderColor("\nMENU"))
	fmt.Fprintln(m.out, ui.MenuOptionColor("1."), "Search for an item frequency")
	fmt.Fprintln(m.out, ui.MenuOptionColor("2."), "Print all item frequencies")
	fmt.Fprintln(m.out, ui.MenuOptionColor("3."), "Print histogram of item frequencies")
	fmt.Fprintln(m.out, ui.MenuOptionColor("4."), "Exit")
	fmt.Fprint(m.out, ui.PromptColor("Enter your choice: "))
}

func (m *menu) exit() {
	fmt.Fprintln(m.out, ui.InfoColor("\nExiting program."))
}

// readLine consumes one whole line and strips its terminator, so nothing from a
// menu choice can leak into the next read. A final line without a newline is
// still returned; io.EOF is only reported when no input is left.
func (m *menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		} else {
			return "", err
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// parseMenuChoice accepts a number between 1 and 4 surrounded by optional whitespace.
func parseMenuChoice(input string) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidUserInput, input)
	}
	if choice < choiceQuery || choice > choiceExit {
		return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidUserInput, choice)
	}
	return choice, nil
}
