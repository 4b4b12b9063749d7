// Package cli provides the interactive console front end.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"tasktracker/internal/tracker"
)

// errQuit stops the read loop without an error.
var errQuit = errors.New("quit")

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// command is a shell command. Handlers read further input through the shell.
type command struct {
	name     string
	aliases  []string
	synopsis string
	usage    string
	run      func(s *Shell, args []string) error
}

// Options configures a Shell.
type Options struct {
	// DateLayout is the Go time layout for entering and showing due dates.
	DateLayout string

	// DefaultSort is used by list when no sort key is given.
	DefaultSort tracker.SortKey

	// Quiet suppresses the banner and prompts.
	Quiet bool
}

// Shell reads commands line by line and runs them against a tracker.
type Shell struct {
	tracker  *tracker.Tracker
	in       *bufio.Scanner
	out      io.Writer
	opts     Options
	commands map[string]*command
}

// NewShell creates a shell reading from in and writing to out.
func NewShell(t *tracker.Tracker, in io.Reader, out io.Writer, opts Options) *Shell {
	if opts.DateLayout == "" {
		opts.DateLayout = "02/01/2006"
	}
	if opts.DefaultSort == "" {
		opts.DefaultSort = tracker.SortNone
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	s := &Shell{
		tracker:  t,
		in:       scanner,
		out:      out,
		opts:     opts,
		commands: make(map[string]*command),
	}
	for _, c := range builtinCommands() {
		s.register(c)
	}
	return s
}

func (s *Shell) register(c *command) {
	s.commands[c.name] = c
	for _, alias := range c.aliases {
		s.commands[alias] = c
	}
}

// Run processes commands until quit or end of input.
func (s *Shell) Run() error {
	if !s.opts.Quiet {
		fmt.Fprintln(s.out, "----- Task Management System -----")
		fmt.Fprintln(s.out, "Type 'help' for a list of commands.")
	}

	for {
		line, ok := s.readLine("> ")
		if !ok {
			return s.in.Err()
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		err := s.Exec(fields[0], fields[1:])
		if errors.Is(err, errQuit) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return s.in.Err()
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// Exec runs a single command by name.
func (s *Shell) Exec(name string, args []string) error {
	c, ok := s.commands[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown command: %s (try 'help')", name)
	}
	return c.run(s, args)
}

// readLine prints prompt and returns the next trimmed input line.
// Returns false at end of input.
func (s *Shell) readLine(prompt string) (string, bool) {
	if !s.opts.Quiet {
		fmt.Fprint(s.out, prompt)
	}
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// ask is readLine for use inside a command; end of input becomes io.EOF.
func (s *Shell) ask(prompt string) (string, error) {
	line, ok := s.readLine(prompt)
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

// taskID takes the id from args, or asks for one.
func (s *Shell) taskID(args []string, prompt string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		line, err := s.ask(prompt)
		if err != nil {
			return 0, err
		}
		raw = line
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %q", raw)
	}
	return id, nil
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) sortedCommands() []*command {
	seen := make(map[string]*command)
	for _, c := range s.commands {
		seen[c.name] = c
	}

	out := make([]*command, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// layoutHint renders a Go date layout as e.g. DD/MM/YYYY.
func layoutHint(layout string) string {
	return strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD").Replace(layout)
}
