package main

import (
	"github.com/tfkhs/cosenote/config"
	"github.com/tfkhs/cosenote/corpus"
	"github.com/tfkhs/cosenote/genai"
)

// Wiring helpers shared by the subcommands.

func newClient(cfg *config.Config) *corpus.Client {
	return corpus.NewClient(cfg.Project, &corpus.ClientConfig{
		BaseURL: cfg.BaseURL,
	})
}

func newResolver(cfg *config.Config) *corpus.Resolver {
	return corpus.NewResolver(newClient(cfg), &corpus.ResolverConfig{
		Concurrency: cfg.Concurrency,
	})
}

func newWriter(cfg *config.Config, sessionID string) *corpus.Writer {
	return corpus.NewWriter(cfg.Project, sessionID, &corpus.WriterConfig{
		SiteURL:    cfg.SiteURL,
		APIBaseURL: cfg.BaseURL,
	})
}

func newGenerator(cfg *config.Config, apiKey string) *genai.Client {
	return genai.NewClient(apiKey, &genai.ClientConfig{
		Model: cfg.Model,
	})
}
