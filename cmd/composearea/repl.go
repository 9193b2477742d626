package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/composearea/internal/engine"
)

var (
	errQuit  = errors.New("quit")
	errUsage = errors.New("usage")
)

type command struct {
	usage string
	help  string
	run   func(r *repl, args string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"text":   {"text <string>", "insert text at the caret", (*repl).insertText},
		"img":    {"img <src> [alt] [class]", "insert an image at the caret", (*repl).insertImage},
		"caret":  {"caret <start> [end]", "set the caret and select it", (*repl).setCaret},
		"sync":   {"sync", "read the caret back from the selection", (*repl).syncCaret},
		"delete": {"delete", "remove the selected content", (*repl).removeSelection},
		"clear":  {"clear", "remove all content", (*repl).clear},
		"html":   {"html", "print the container markup", (*repl).printHTML},
		"plain":  {"plain", "print the plain text", (*repl).printText},
		"config": {"config", "print the effective settings", (*repl).printConfig},
		"help":   {"help", "list commands", (*repl).printHelp},
		"quit":   {"quit", "exit", func(*repl, string) error { return errQuit }},
	}
}

type palette struct {
	ins, del, info, err func(format string, a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(string, ...any) string {
		c := color.New(attrs...)
		if !enabled {
			c.DisableColor()
		}
		return c.SprintfFunc()
	}
	return palette{
		ins:  mk(color.FgGreen),
		del:  mk(color.FgRed, color.CrossedOut),
		info: mk(color.FgCyan),
		err:  mk(color.FgRed, color.Bold),
	}
}

// repl reads commands line by line and applies them to one compose area.
// After each command that changes the markup it prints a diff and the caret.
type repl struct {
	ca       *engine.ComposeArea
	out      io.Writer
	colors   palette
	dmp      *diffmatchpatch.DiffMatchPatch
	noTrim   bool
	settings []string
}

func newREPL(ca *engine.ComposeArea, out io.Writer, colored bool) *repl {
	return &repl{
		ca:     ca,
		out:    out,
		colors: newPalette(colored),
		dmp:    diffmatchpatch.New(),
	}
}

func (r *repl) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		err := r.exec(scanner.Text())
		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			return err
		default:
			fmt.Fprintln(r.out, r.colors.err("error: %v", err))
		}
	}
	return scanner.Err()
}

// exec runs one command line. Blank lines and lines starting with # are
// ignored.
func (r *repl) exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	name, args, _ := strings.Cut(line, " ")
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", name)
	}

	before := r.ca.HTML()
	if err := cmd.run(r, args); err != nil {
		if errors.Is(err, errUsage) {
			return fmt.Errorf("%w: %s", err, cmd.usage)
		}
		return err
	}
	if after := r.ca.HTML(); after != before {
		fmt.Fprintln(r.out, r.diff(before, after))
		fmt.Fprintln(r.out, r.colors.info("caret %s", r.ca.CaretPosition()))
	}
	return nil
}

func (r *repl) diff(before, after string) string {
	diffs := r.dmp.DiffMain(before, after, false)
	diffs = r.dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString(r.colors.ins("{+%s+}", d.Text))
		case diffmatchpatch.DiffDelete:
			b.WriteString(r.colors.del("[-%s-]", d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func (r *repl) insertText(args string) error {
	if args == "" {
		return errUsage
	}
	r.ca.InsertText(args)
	return nil
}

func (r *repl) insertImage(args string) error {
	fields := strings.Fields(args)
	if len(fields) == 0 || len(fields) > 3 {
		return errUsage
	}
	fields = append(fields, "", "")
	r.ca.InsertImage(fields[0], fields[1], fields[2])
	return nil
}

func (r *repl) setCaret(args string) error {
	fields := strings.Fields(args)
	if len(fields) == 0 || len(fields) > 2 {
		return errUsage
	}
	start, err := parseOffset(fields[0])
	if err != nil {
		return err
	}
	end := start
	if len(fields) == 2 {
		if end, err = parseOffset(fields[1]); err != nil {
			return err
		}
	}

	r.ca.SetCaretPosition(start, end)
	// An empty container has no position to select.
	if r.ca.HTML() != "" {
		r.ca.UpdateDOMFromCaret()
	}
	fmt.Fprintln(r.out, r.colors.info("caret %s", r.ca.CaretPosition()))
	return nil
}

func parseOffset(s string) (engine.Offset, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	return engine.Offset(n), nil
}

func (r *repl) syncCaret(string) error {
	r.ca.UpdateCaretFromDOM()
	fmt.Fprintln(r.out, r.colors.info("caret %s", r.ca.CaretPosition()))
	return nil
}

func (r *repl) removeSelection(string) error {
	if !r.ca.RemoveSelection() {
		fmt.Fprintln(r.out, r.colors.info("nothing removed"))
	}
	return nil
}

func (r *repl) clear(string) error {
	r.ca.Clear()
	return nil
}

func (r *repl) printHTML(string) error {
	fmt.Fprintln(r.out, r.ca.HTML())
	return nil
}

func (r *repl) printText(string) error {
	fmt.Fprintln(r.out, r.ca.Text(r.noTrim))
	return nil
}

func (r *repl) printConfig(string) error {
	for _, line := range r.settings {
		fmt.Fprintln(r.out, line)
	}
	return nil
}

func (r *repl) printHelp(string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(r.out, "  %-26s %s\n", commands[name].usage, commands[name].help)
	}
	return nil
}
