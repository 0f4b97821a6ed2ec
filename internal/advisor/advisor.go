// Package advisor asks Claude for rewrite suggestions that move a text
// toward a target reading grade.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pthm/readlevel/internal/grade"
)

// ErrNoAPIKey is returned by New when no API key is available
var ErrNoAPIKey = errors.New("ANTHROPIC_API_KEY is not set")

const (
	defaultMaxTokens = 1024
	maxPromptText    = 8000
)

// Options configures an Advisor
type Options struct {
	APIKey    string
	Model     string
	MaxTokens int64
}

// Request is the text to improve and its current statistics
type Request struct {
	Text   string
	Stats  grade.Stats
	Target string
}

// Suggestion is a single proposed rewrite
type Suggestion struct {
	Original  string `json:"original"`
	Rewrite   string `json:"rewrite"`
	Rationale string `json:"rationale"`
}

// Advice is Claude's response
type Advice struct {
	Summary     string       `json:"summary"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Advisor requests rewrite advice from the Claude API
type Advisor struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// New creates an advisor. It fails with ErrNoAPIKey when opts.APIKey is
// empty.
func New(opts Options) (*Advisor, error) {
	if opts.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	model := anthropic.ModelClaude3_5Haiku20241022
	if opts.Model != "" {
		model = anthropic.Model(opts.Model)
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Advisor{
		client:    anthropic.NewClient(option.WithAPIKey(opts.APIKey)),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Advise sends the request to Claude and parses the suggestions
func (a *Advisor) Advise(ctx context.Context, req Request) (*Advice, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildPrompt(req))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Claude API error: %w", err)
	}

	var responseText string
	for _, block := range resp.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}
	if responseText == "" {
		return nil, fmt.Errorf("empty response from Claude")
	}

	return ParseAdvice(responseText)
}

// BuildPrompt renders the prompt sent to Claude
func BuildPrompt(req Request) string {
	target := req.Target
	if target == "" {
		target = "Grade 8"
	}

	return fmt.Sprintf(`The following text scores %s on the Flesch-Kincaid grade level scale
(%d sentences, %d words, %d syllables, score %.2f).

Suggest rewrites that bring it to %s or below. Prefer shorter sentences and
shorter words. Keep the meaning.

Text:
%s

Provide a JSON response with the following structure:
{
  "summary": "one or two sentences on what makes the text hard to read",
  "suggestions": [
    {
      "original": "sentence from the text",
      "rewrite": "simpler version",
      "rationale": "why this reads more easily"
    }
  ]
}

Return ONLY the JSON, no other text.`,
		req.Stats.Label, req.Stats.Sentences, req.Stats.Words, req.Stats.Syllables, req.Stats.Score,
		target, truncateContent(req.Text, maxPromptText))
}

// ParseAdvice decodes Claude's JSON answer, tolerating a markdown fence
func ParseAdvice(response string) (*Advice, error) {
	var advice Advice
	if err := json.Unmarshal([]byte(extractJSON(response)), &advice); err != nil {
		return nil, fmt.Errorf("failed to parse Claude response: %w", err)
	}
	return &advice, nil
}

// extractJSON attempts to extract JSON from a response that might be wrapped in markdown
func extractJSON(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "{") {
		return s
	}

	if idx := strings.Index(s, "```json"); idx != -1 {
		start := idx + 7
		if end := strings.Index(s[start:], "```"); end != -1 {
			return strings.TrimSpace(s[start : start+end])
		}
	}

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}

	return s
}

// truncateContent truncates content to at most maxLen bytes without
// splitting a rune
func truncateContent(content string, maxLen int) string {
	if len(content) <= maxLen {
		return content
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + "\n...[truncated]..."
}
