// Copyright 2026 The silbe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the silbe decomposition server and CLI [DBG] application.

silbe splits German words into syllables and letter clusters for reading
exercises, finds occurrences of letters and clusters inside words, and counts
cluster frequencies across a corpus. It runs as a MessagePack IPC server for
integration with the exercise front end, or as a CLI for trying things out.

# Usage

Start the server with the default config:

	silbe

Use a custom config and enable debug mode:

	silbe -config ./fibel.toml -d

Run in CLI mode:

	silbe -c

Print the frequency table of a word list and exit:

	silbe -freq fibel.words

# Configuration

The config file is created with defaults at ~/.config/silbe/config.toml when
missing:

	[engine]
	clusters = ["sch", "ch", "ck", "ei", "ie", "eu", "äu", "au", "ai", "sp", "st", "qu", "pf", "ng", "nk", "er"]
	initial_only = ["sp", "st"]
	use_clusters = true
	cache_max_entries = 10000
	hyphenation_file = ""

	[server]
	max_word_length = 64
	max_corpus_words = 100000

	[cli]
	show_chunks = true
	color = true

hyphenation_file points to a list of hyphenated words ("Fen-ster" per line)
used before the built-in rules.

# Command Line Flags

	-config string
	    Path to config.toml
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-no-clusters
	    Chunk into single letters
	-hyph string
	    Hyphenation list, overrides the config
	-cache int
	    Maximum cached words, overrides the config (0 for unbounded)
	-freq string
	    Print the frequency table of a word list and exit
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lesewerk/silbe/internal/cli"
	"github.com/lesewerk/silbe/internal/logger"
	"github.com/lesewerk/silbe/pkg/config"
	"github.com/lesewerk/silbe/pkg/dictionary"
	"github.com/lesewerk/silbe/pkg/engine"
	"github.com/lesewerk/silbe/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "silbe"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow between config, engine, server and CLI.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	noClusters := flag.Bool("no-clusters", false, "Chunk into single letters")
	hyphFile := flag.String("hyph", "", "Hyphenation list (one hyphenated word per line)")
	cacheSize := flag.Int("cache", -1, "Maximum cached words (0 for unbounded, default from config)")
	freqFile := flag.String("freq", "", "Print the frequency table of a word list and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)

	cfg, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	if *noClusters {
		cfg.Engine.UseClusters = false
	}
	if *hyphFile != "" {
		cfg.Engine.HyphenationFile = *hyphFile
	}
	if *cacheSize >= 0 {
		cfg.Engine.CacheMaxEntries = *cacheSize
	}

	e, err := engine.New(cfg.Engine, engine.WithLogger(logger.New("engine")))
	if err != nil {
		log.Fatalf("Failed to init engine: %v", err)
	}
	log.Debug("Engine init done", "stats", e.Stats())

	if *freqFile != "" || *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(e, cfg.Server.MaxWordLength, cfg.CLI.ShowChunks, cfg.CLI.Color)

		if *freqFile != "" {
			words, err := dictionary.LoadWordListFile(*freqFile)
			if err != nil {
				log.Fatalf("Failed to load word list: %v", err)
			}
			handler.PrintFrequencies(words)
			return
		}

		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(e, cfg)
	showStartupInfo(cfg)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ silbe ] Syllables and letter clusters for German reading exercises")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(cfg *config.Config) {
	startup := logger.NewWithConfig(AppName, log.InfoLevel, false, false, log.TextFormatter)
	startup.Infof("Version: %s", Version)
	startup.Infof("Process ID: [ %d ]", os.Getpid())
	startup.Info("clusters", "count", len(cfg.Engine.Clusters), "enabled", cfg.Engine.UseClusters)
	if cfg.Engine.HyphenationFile != "" {
		startup.Infof("hyphenation list: ( %s )", cfg.Engine.HyphenationFile)
	}
	startup.Info("status: ready")
}
