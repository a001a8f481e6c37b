package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tfkhs/cosenote"
)

func handleWeekly(args []string) {
	fs := flag.NewFlagSet("weekly", flag.ExitOnError)
	noSummary := fs.Bool("no-summary", false, "Skip the generated summary section")
	fs.Parse(args)

	cfg := loadConfig()
	sessionID := requireEnv("COSENOTE_SID")

	var generator cosenote.Generator
	if !*noSummary {
		generator = newGenerator(cfg, requireEnv("GEMINI_API_KEY"))
	}

	service := cosenote.NewWeeklyService(cfg.Project, newWriter(cfg, sessionID), newResolver(cfg), generator)
	if err := service.Post(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to post weekly page: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Successfully posted weekly page.")
}
