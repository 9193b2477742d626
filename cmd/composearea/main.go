// Package main is the entry point for the composearea REPL.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/dshills/composearea/internal/config"
	"github.com/dshills/composearea/internal/dom"
	"github.com/dshills/composearea/internal/engine"
	"github.com/dshills/composearea/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	noColor    bool
	overrides  []config.Option
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath, opts.overrides...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Output: os.Stderr,
		Prefix: "composearea",
	})
	defer func() { _ = log.Sync() }()
	logging.SetDefault(log)

	id := cfg.Area.WrapperID
	if id == "" {
		id = "composearea-" + uuid.NewString()
	}
	win, err := newWindow(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ca, err := engine.BindTo(win, id,
		engine.WithLogger(log),
		engine.WithWrapperClass(cfg.Area.WrapperClass),
		engine.WithInitialHTML(cfg.Area.InitialHTML),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to bind #%s: %v\n", id, err)
		return 1
	}

	color := !opts.noColor && isatty.IsTerminal(os.Stdout.Fd())
	r := newREPL(ca, os.Stdout, color)
	r.noTrim = cfg.Area.NoTrim
	r.settings = cfg.Settings()

	if err := r.run(os.Stdin); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newWindow creates a document whose body holds a single wrapper element.
func newWindow(id string) (*dom.Window, error) {
	win := dom.NewWindow()
	doc := win.Document()
	wrapper := doc.CreateElement("div", dom.Attr{Name: "id", Value: id})
	if err := doc.AppendChild(doc.Body(), wrapper); err != nil {
		return nil, fmt.Errorf("create wrapper: %w", err)
	}
	return win, nil
}

func parseFlags() options {
	var opts options
	var (
		id, class, html, logLevel string
		noTrim                    bool
		showVersion, showHelp     bool
	)

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml or .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&id, "id", "", "Wrapper element id (default: random)")
	flag.StringVar(&class, "class", "", "Class of the editable container")
	flag.StringVar(&html, "html", "", "Initial markup of the container")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&noTrim, "no-trim", false, "Keep surrounding whitespace in plain text")
	flag.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "composearea - interactive compose area\n\n")
		fmt.Fprintf(os.Stderr, "Usage: composearea [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  composearea                       Start with an empty area\n")
		fmt.Fprintf(os.Stderr, "  composearea -html 'hi <b>you</b>'  Start with markup\n")
		fmt.Fprintf(os.Stderr, "  composearea -c composearea.toml    Load settings from a file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("composearea %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Only flags given on the command line override the other layers.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "id":
			opts.overrides = append(opts.overrides, config.WithOverride("area.wrapperId", id))
		case "class":
			opts.overrides = append(opts.overrides, config.WithOverride("area.wrapperClass", class))
		case "html":
			opts.overrides = append(opts.overrides, config.WithOverride("area.initialHtml", html))
		case "log-level":
			opts.overrides = append(opts.overrides, config.WithOverride("logging.level", logLevel))
		case "no-trim":
			opts.overrides = append(opts.overrides, config.WithOverride("area.noTrim", noTrim))
		}
	})

	return opts
}
