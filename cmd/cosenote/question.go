package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tfkhs/cosenote"
)

func handleQuestion(args []string) {
	fs := flag.NewFlagSet("question", flag.ExitOnError)
	fs.Parse(args)

	cfg := loadConfig()
	apiKey := requireEnv("GEMINI_API_KEY")

	service := cosenote.NewQuestionService(newResolver(cfg), newGenerator(cfg, apiKey))
	question, err := service.Generate(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to generate question: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Generated English Question:")
	fmt.Println(question)
}
