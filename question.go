package cosenote

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// questionKeyword tags the pages eligible as question material.
const questionKeyword = "English"

// questionSampleSize is how many tagged pages feed one question set.
const questionSampleSize = 3

// QuestionService builds English practice questions from a random
// sample of #English pages.
type QuestionService struct {
	resolver  TitleResolver
	generator Generator
}

// NewQuestionService creates a question service.
func NewQuestionService(resolver TitleResolver, generator Generator) *QuestionService {
	return &QuestionService{
		resolver:  resolver,
		generator: generator,
	}
}

// Generate samples tagged pages and asks the generator for questions
// based on their content. Fails when no tagged pages exist or when
// none of the sampled titles resolve.
func (s *QuestionService) Generate(ctx context.Context) (string, error) {
	pages, err := s.resolver.SampleByKeyword(ctx, questionKeyword, questionSampleSize)
	if err != nil {
		return "", err
	}

	blocks := make([]string, 0, len(pages))
	for _, page := range pages {
		blocks = append(blocks, fmt.Sprintf("Title: %s\nContent:\n%s", page.Title, page.Content))
	}
	prompt := strings.Join(blocks, "\n\n---\n\n")

	log.Printf("INFO: Generating questions from %d pages", len(pages))
	question, err := s.generator.Question(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate question: %w", err)
	}
	return question, nil
}
