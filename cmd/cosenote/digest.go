package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tfkhs/cosenote/digest"
)

func handleDigest(args []string) {
	fs := flag.NewFlagSet("digest", flag.ExitOnError)
	fs.Parse(args)

	cfg := loadConfig()
	sessionID := requireEnv("COSENOTE_SID")

	if len(cfg.Feeds) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no feeds configured (set the config file's feeds field)")
		os.Exit(1)
	}

	store, err := digest.NewStore(cfg.DigestDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open digest store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	service := digest.NewService(cfg.Project, cfg.Feeds, store, newWriter(cfg, sessionID))
	if err := service.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to post digest: %v\n", err)
		os.Exit(1)
	}
}
