package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tfkhs/cosenote"
)

func handleDaily(args []string) {
	fs := flag.NewFlagSet("daily", flag.ExitOnError)
	fs.Parse(args)

	cfg := loadConfig()
	sessionID := requireEnv("COSENOTE_SID")

	service := cosenote.NewDailyService(cfg.Project, newWriter(cfg, sessionID))
	if err := service.Post(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to post daily page: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Successfully posted daily page.")
}
