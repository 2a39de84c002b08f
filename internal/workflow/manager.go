// File path: internal/workflow/manager.go
package workflow

import (
	"context"
	"errors"

	"github.com/draftwise/draftwise/internal/common"
	"github.com/draftwise/draftwise/internal/compose"
	"github.com/draftwise/draftwise/internal/llm"
	"github.com/draftwise/draftwise/internal/record"
)

// ErrDraftNotFound is returned when a draft lookup by id misses.
var ErrDraftNotFound = errors.New("draft not found")

const saveWarning = "draft generated but could not be saved"

const suggestionLimit = 5

// Manager runs the synchronous generation pipeline: validate the request,
// build the prompt, call the provider once, parse the reply, persist the
// draft, then request subject-line suggestions with an independent second
// call. Persistence failures degrade to a warning; the generated draft is
// still returned.
type Manager struct {
	generator *compose.Generator
	store     *record.Store
}

func NewManager(provider llm.Provider, store *record.Store) *Manager {
	return &Manager{generator: compose.NewGenerator(provider), store: store}
}

// DraftResult is the outcome of one pipeline run.
type DraftResult struct {
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	Suggestions []string `json:"suggestions,omitempty"`
	Saved       bool     `json:"saved"`
	Warning     string   `json:"warning,omitempty"`
	Provider    string   `json:"provider"`
}

// GenerateDraft executes the full pipeline for an authenticated account.
func (m *Manager) GenerateDraft(ctx context.Context, accountID string, req compose.GenerationRequest) (*DraftResult, error) {
	logger := common.Logger()
	normalized, err := compose.NormalizeRequest(req)
	if err != nil {
		return nil, err
	}
	prompt, err := compose.BuildDraftPrompt(normalized)
	if err != nil {
		return nil, err
	}
	logger.Info("workflow: generating draft", "purpose", normalized.Purpose, "language", normalized.Language)
	raw := m.generator.Generate(ctx, prompt, compose.SystemInstruction)
	subject, body := compose.ParseSubjectBody(raw)

	result := &DraftResult{
		Subject:  subject,
		Body:     body,
		Provider: m.generator.ProviderName(),
	}

	if err := m.store.EnsureUser(ctx, accountID); err != nil {
		logger.Error("workflow: ensure user failed", "error", err)
		result.Warning = saveWarning
	} else if _, err := m.store.SaveDraft(ctx, accountID, subject, body); err != nil {
		logger.Error("workflow: draft save failed", "account_id", accountID, "error", err)
		result.Warning = saveWarning
	} else {
		result.Saved = true
	}

	suggestionPrompt, err := compose.BuildSuggestionPrompt(normalized)
	if err != nil {
		logger.Error("workflow: suggestion prompt failed", "error", err)
		return result, nil
	}
	suggestionsRaw := m.generator.Generate(ctx, suggestionPrompt, "")
	result.Suggestions = compose.CleanSuggestions(suggestionsRaw, suggestionLimit)
	return result, nil
}

// ListDrafts returns the account's saved drafts in insertion order.
func (m *Manager) ListDrafts(ctx context.Context, accountID string) ([]record.Draft, error) {
	return m.store.ListDrafts(ctx, accountID)
}

// RemoveDraft deletes the drafts structurally equal to the given pair.
func (m *Manager) RemoveDraft(ctx context.Context, accountID, subject, body string) error {
	return m.store.RemoveDraft(ctx, accountID, subject, body)
}

// RemoveDraftByID deletes one stored draft by identifier.
func (m *Manager) RemoveDraftByID(ctx context.Context, accountID string, id int64) error {
	return m.store.RemoveDraftByID(ctx, accountID, id)
}

// ClearDrafts empties the account's saved drafts.
func (m *Manager) ClearDrafts(ctx context.Context, accountID string) error {
	return m.store.ClearDrafts(ctx, accountID)
}

// Artifact renders the downloadable text for a stored draft.
func (m *Manager) Artifact(ctx context.Context, accountID string, id int64) (string, error) {
	draft, err := m.store.DraftByID(ctx, accountID, id)
	if err != nil {
		return "", err
	}
	if draft == nil {
		return "", ErrDraftNotFound
	}
	return compose.RenderArtifact(draft.Subject, draft.Body), nil
}

// Provider reports the name of the backing generation provider.
func (m *Manager) Provider() string {
	return m.generator.ProviderName()
}
