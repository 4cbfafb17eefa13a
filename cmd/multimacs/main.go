// Package main is the entry point for the multimacs editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmoose/multimacs/internal/command"
	"github.com/dmoose/multimacs/internal/config"
	"github.com/dmoose/multimacs/internal/editor"
	"github.com/dmoose/multimacs/internal/engine/killring"
	"github.com/dmoose/multimacs/internal/keybind"
	"github.com/dmoose/multimacs/internal/logger"
	"github.com/dmoose/multimacs/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		debug       bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("multimacs %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	if err := logger.Init(debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		return 1
	}
	defer logger.Close()

	ring := killring.New(cfg.Editor.KillRingCapacity)
	state := editor.NewState(ring, editor.WithUndoLimit(cfg.Editor.UndoLimit))
	engine := command.NewEngine(command.NewRegistry(), state)

	bindings := keybind.DefaultBindings()
	for chord, cmd := range cfg.Keymap {
		bindings[chord] = cmd
	}
	resolver := keybind.NewResolver(bindings)

	for _, path := range flag.Args() {
		if err := state.FindFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			return 1
		}
	}

	app, err := term.NewApp(state, engine, resolver, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
