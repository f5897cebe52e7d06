package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/cliffordnwanna/job-hunter/internal/ai"
	"github.com/cliffordnwanna/job-hunter/internal/jobs"
	"github.com/cliffordnwanna/job-hunter/internal/profile"
	"github.com/cliffordnwanna/job-hunter/internal/util"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200

	// jobPromptDescLen bounds the description sent to the model.
	jobPromptDescLen = 1500
)

// Writer polishes template-drafted cover letters with Gemini.
type Writer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewWriter(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Writer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Writer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (w *Writer) Compose(ctx context.Context, p profile.Profile, l *jobs.Listing, draft string) (*ai.Draft, error) {
	if l == nil {
		return nil, fmt.Errorf("listing is required")
	}
	if strings.TrimSpace(draft) == "" {
		return nil, fmt.Errorf("draft letter is required")
	}

	profilePayload := map[string]any{
		"skills":           p.Skills,
		"years_experience": p.YearsExperience,
	}
	profileJSON, err := json.MarshalIndent(profilePayload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile payload: %w", err)
	}

	desc := l.Description
	if len(desc) > jobPromptDescLen {
		desc = desc[:jobPromptDescLen]
	}
	jobPayload := map[string]any{
		"title":       l.Title,
		"company":     l.Company,
		"location":    l.Location,
		"description": desc,
	}
	jobJSON, err := json.MarshalIndent(jobPayload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal job payload: %w", err)
	}

	prompt := buildPrompt(string(profileJSON), string(jobJSON), draft)

	w.logger.Debug("gemini compose request",
		zap.String("title", l.Title),
		zap.String("company", l.Company),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, w.maxLogLen)),
	)

	raw, err := w.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("gemini compose response",
		zap.String("title", l.Title),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, w.maxLogLen)),
	)

	letter := stripFences(raw)
	if letter == "" {
		return nil, fmt.Errorf("gemini returned an empty letter")
	}

	return &ai.Draft{CoverLetter: letter, Raw: raw}, nil
}

func buildPrompt(profileJSON, jobJSON, draft string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Profile:\n{{PROFILE_JSON}}\n\nJob:\n{{JOB_JSON}}\n\nDraft:\n{{DRAFT}}\n\nRewritten letter:"
	}
	prompt := strings.ReplaceAll(template, "{{PROFILE_JSON}}", profileJSON)
	prompt = strings.ReplaceAll(prompt, "{{JOB_JSON}}", jobJSON)
	prompt = strings.ReplaceAll(prompt, "{{DRAFT}}", draft)
	return prompt
}

// stripFences removes markdown code fences models sometimes wrap text in
// despite instructions.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```text")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
