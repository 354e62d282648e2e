package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mdpress/mdpress/internal/assemble"
	"github.com/mdpress/mdpress/internal/config"
	"github.com/mdpress/mdpress/internal/pandoc"
	"github.com/mdpress/mdpress/internal/split"
	"github.com/mdpress/mdpress/internal/version"
)

var CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"mdpress.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Build struct {
		Input       string `short:"i" help:"Corpus root directory" default:"."`
		Output      string `short:"o" help:"Output EPUB path (default from config)"`
		KeepStaging bool   `help:"Keep the staging directory after a successful build"`
	} `cmd:"" help:"Assemble the corpus into an EPUB via pandoc"`

	Split struct {
		Input     string `help:"Source markdown file" default:"INIT.md"`
		OutputDir string `help:"Directory for per-section files" default:"ideas"`
	} `cmd:"" help:"Split one markdown file into per-section files at '## ' headings"`

	Discover struct {
		Input string `short:"i" help:"Corpus root directory" default:"."`
	} `cmd:"" help:"Print the resolved corpus order without building"`

	Probe struct{} `cmd:"" help:"Check that pandoc is installed and report its version"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Write an example configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI, kong.Vars{"version": version.Version})

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var err error
	switch ctx.Command() {
	case "build":
		err = runBuild()
	case "split":
		err = runSplit()
	case "discover":
		err = runDiscover()
	case "probe":
		err = runProbe()
	case "init":
		err = runInit()
	}
	if err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}

func runBuild() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}

	assembler := assemble.New(cfg, pandoc.NewRunner(CLI.Build.Input))
	result, err := assembler.Build(context.Background(), assemble.Options{
		InputDir:    CLI.Build.Input,
		OutputPath:  CLI.Build.Output,
		KeepStaging: CLI.Build.KeepStaging,
	})
	if err != nil {
		return err
	}

	slog.Info("EPUB created",
		"artifact", result.Artifact,
		"units", result.Units,
		"files", result.Files,
		"duration", result.Duration.Round(time.Millisecond).String())
	return nil
}

func runSplit() error {
	written, err := split.Run(CLI.Split.Input, CLI.Split.OutputDir)
	if err != nil {
		return err
	}
	fmt.Printf("\nAll %d files created in %q\n", len(written), CLI.Split.OutputDir)
	return nil
}

func runProbe() error {
	runner := pandoc.NewRunner("")
	if err := runner.Probe(context.Background()); err != nil {
		return err
	}
	version := runner.Version(context.Background())
	if version == "" {
		version = "unknown"
	}
	fmt.Printf("pandoc %s\n", version)
	return nil
}

func runInit() error {
	if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
		return err
	}
	slog.Info("Configuration written", "path", CLI.Config)
	return nil
}
