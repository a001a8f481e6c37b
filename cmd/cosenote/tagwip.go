package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tfkhs/cosenote"
)

func handleTagWIP(args []string) {
	fs := flag.NewFlagSet("tagwip", flag.ExitOnError)
	fs.Parse(args)

	cfg := loadConfig()
	sessionID := requireEnv("COSENOTE_SID")

	client := newClient(cfg)
	service := cosenote.NewTagWIPService(client, client, newWriter(cfg, sessionID))
	if err := service.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to tag drafts: %v\n", err)
		os.Exit(1)
	}
}
