package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tfkhs/cosenote"
)

func handleSummarize(args []string) {
	fs := flag.NewFlagSet("summarize", flag.ExitOnError)
	fs.Parse(args)

	cfg := loadConfig()
	apiKey := requireEnv("GEMINI_API_KEY")

	service := cosenote.NewSummarizeService(newResolver(cfg), newGenerator(cfg, apiKey))
	summary, err := service.Summarize(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to summarize daily pages: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(summary)
}
