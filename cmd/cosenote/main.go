package main

import (
	"fmt"
	"os"

	"github.com/tfkhs/cosenote/config"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// requireEnv returns the value of an environment variable or exits.
func requireEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Fprintf(os.Stderr, "Error: please set the %s environment variable\n", key)
		os.Exit(1)
	}
	return value
}

// loadConfig loads the config file and applies environment overrides.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	if project := os.Getenv("COSENOTE_PROJECT"); project != "" {
		cfg.Project = project
	}
	if cfg.Project == "" {
		fmt.Fprintln(os.Stderr, "Error: no project configured (set COSENOTE_PROJECT or the config file's project field)")
		os.Exit(1)
	}
	return cfg
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	subcommand := os.Args[1]
	args := os.Args[2:]

	switch subcommand {
	case "daily":
		handleDaily(args)
	case "weekly":
		handleWeekly(args)
	case "summarize":
		handleSummarize(args)
	case "question":
		handleQuestion(args)
	case "tagwip":
		handleTagWIP(args)
	case "digest":
		handleDigest(args)
	case "clip":
		handleClip(args)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("cosenote - Scrapbox note-blog maintenance")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  cosenote <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  daily      Post today's daily page")
	fmt.Println("  weekly     Post the weekly report")
	fmt.Println("  summarize  Summarize the last six daily pages")
	fmt.Println("  question   Generate English questions from tagged pages")
	fmt.Println("  tagwip     Tag empty drafts with #WIP")
	fmt.Println("  digest     Post a reading-list page from configured feeds")
	fmt.Println("  clip       Clip a web article into a page")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  COSENOTE_SID      Scrapbox session credential (write commands)")
	fmt.Println("  COSENOTE_PROJECT  Project name (overrides the config file)")
	fmt.Println("  GEMINI_API_KEY    Generation API key (weekly, summarize, question)")
}
