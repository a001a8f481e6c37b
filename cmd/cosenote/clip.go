package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tfkhs/cosenote/clip"
)

func handleClip(args []string) {
	fs := flag.NewFlagSet("clip", flag.ExitOnError)
	fs.Parse(args)

	if len(fs.Args()) < 1 {
		fmt.Fprintln(os.Stderr, "Error: article URL is required")
		fmt.Fprintln(os.Stderr, "Usage: cosenote clip <url>")
		os.Exit(1)
	}
	articleURL := fs.Args()[0]

	cfg := loadConfig()
	sessionID := requireEnv("COSENOTE_SID")

	ctx := context.Background()
	clipper := clip.NewClipper(cfg.Project)
	page, err := clipper.Clip(ctx, articleURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to clip article: %v\n", err)
		os.Exit(1)
	}

	writer := newWriter(cfg, sessionID)
	exists, err := writer.Exists(ctx, page.Title)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to check for existing page: %v\n", err)
		os.Exit(1)
	}
	if exists {
		fmt.Fprintf(os.Stderr, "Error: page already exists: %s\n", page.Title)
		os.Exit(1)
	}

	if err := writer.Post(ctx, page); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to post clipped page: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Clipped %q\n", page.Title)
}
