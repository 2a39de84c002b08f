// File path: internal/compose/prompt.go
package compose

import (
	"fmt"
	"strconv"

	"github.com/tmc/langchaingo/prompts"
)

// SystemInstruction frames every draft generation call.
const SystemInstruction = "You are an assistant that writes professional emails for students and early-career professionals."

// documentTextLimit caps how much extracted CV text is carried into the prompt.
const documentTextLimit = 1000

var draftTemplate = prompts.NewPromptTemplate(
	`Generate an email with:
- Subject line
- Body text

Student Name: {{.student_name}}
Recipient: {{.recipient}}
Purpose: {{.purpose}}
Additional Context: {{.details}}
Tone: {{.tone}}
Writing Style: {{.style}}
Formality Level: {{.formality}}/100
Language: {{.language}}
{{.document_clause}}
Format output as:
Subject: ...
Body: ...`,
	[]string{"student_name", "recipient", "purpose", "details", "tone", "style", "formality", "language", "document_clause"},
)

var suggestionTemplate = prompts.NewPromptTemplate(
	`Generate 5 professional subject line suggestions for this email purpose:
{{.purpose}}, Context: {{.details}}, Tone: {{.tone}}, Language: {{.language}}`,
	[]string{"purpose", "details", "tone", "language"},
)

// BuildDraftPrompt renders the main generation prompt for a normalized request.
func BuildDraftPrompt(req GenerationRequest) (string, error) {
	documentClause := ""
	if req.DocumentText != "" {
		documentClause = "The student has attached their CV. Relevant CV details: " + truncate(req.DocumentText, documentTextLimit) + "\n"
	}
	prompt, err := draftTemplate.Format(map[string]any{
		"student_name":    req.StudentName,
		"recipient":       req.Recipient,
		"purpose":         req.Purpose,
		"details":         req.Details,
		"tone":            req.Tone,
		"style":           req.Style,
		"formality":       strconv.Itoa(req.Formality),
		"language":        req.Language,
		"document_clause": documentClause,
	})
	if err != nil {
		return "", fmt.Errorf("render draft prompt: %w", err)
	}
	return prompt, nil
}

// BuildSuggestionPrompt renders the independent subject-line suggestion prompt.
func BuildSuggestionPrompt(req GenerationRequest) (string, error) {
	prompt, err := suggestionTemplate.Format(map[string]any{
		"purpose":  req.Purpose,
		"details":  req.Details,
		"tone":     req.Tone,
		"language": req.Language,
	})
	if err != nil {
		return "", fmt.Errorf("render suggestion prompt: %w", err)
	}
	return prompt, nil
}

// truncate keeps the first limit characters, never splitting a rune.
func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
