// File path: internal/compose/generator.go
package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/draftwise/draftwise/internal/common"
	"github.com/draftwise/draftwise/internal/llm"
)

// FallbackMarker prefixes every deterministic fallback string returned when
// the generation provider cannot be reached.
const FallbackMarker = "(Fallback response)"

// EmptyResponseSentinel is returned when the provider answers with no text.
const EmptyResponseSentinel = "(empty response from provider)"

// Generator wraps a provider behind a call that always yields usable text.
type Generator struct {
	provider llm.Provider
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// ProviderName reports the backing provider, or "none" when unset.
func (g *Generator) ProviderName() string {
	if g == nil || g.provider == nil {
		return "none"
	}
	return g.provider.Name()
}

// Generate runs one blocking completion. It never returns an error: provider
// failures degrade to a fallback string embedding the original prompt, and an
// empty reply degrades to a fixed sentinel.
func (g *Generator) Generate(ctx context.Context, prompt, systemInstruction string) string {
	logger := common.Logger()
	if g == nil || g.provider == nil {
		logger.Error("compose: no generation provider configured")
		return fallbackResponse(prompt, errors.New("no generation provider configured"))
	}
	var messages []llm.Message
	if strings.TrimSpace(systemInstruction) != "" {
		messages = append(messages, llm.Message{Role: "system", Content: systemInstruction})
	}
	messages = append(messages, llm.Message{Role: "user", Content: prompt})
	text, err := g.provider.Chat(ctx, messages)
	if err != nil {
		logger.Error("compose: generation call failed", "provider", g.provider.Name(), "error", err)
		return fallbackResponse(prompt, err)
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("compose: provider returned empty text", "provider", g.provider.Name())
		return EmptyResponseSentinel
	}
	return text
}

func fallbackResponse(prompt string, err error) string {
	return fmt.Sprintf("%s\n\nCould not reach the generation service. Prompt was:\n%s\n\n(Note: fallback used due to: %v)", FallbackMarker, prompt, err)
}
