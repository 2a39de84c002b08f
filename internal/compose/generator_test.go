// File path: internal/compose/generator_test.go
package compose

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/draftwise/draftwise/internal/llm"
)

type scriptedProvider struct {
	response string
	err      error
	calls    int
	lastMsgs []llm.Message
}

func (p *scriptedProvider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	p.calls++
	p.lastMsgs = append([]llm.Message(nil), messages...)
	return p.response, p.err
}

func (p *scriptedProvider) Name() string { return "scripted" }

func TestGenerateReturnsProviderText(t *testing.T) {
	provider := &scriptedProvider{response: "Subject: Hi\nBody: Hello"}
	gen := NewGenerator(provider)
	got := gen.Generate(context.Background(), "write an email", SystemInstruction)
	if got != provider.response {
		t.Fatalf("expected provider text, got %q", got)
	}
	if provider.calls != 1 {
		t.Fatalf("expected 1 call, got %d", provider.calls)
	}
	if len(provider.lastMsgs) != 2 || provider.lastMsgs[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", provider.lastMsgs)
	}
}

func TestGenerateNeverPropagatesProviderFailure(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("quota exceeded")}
	gen := NewGenerator(provider)
	prompt := "please draft a leave application"
	got := gen.Generate(context.Background(), prompt, "")
	if !strings.Contains(got, FallbackMarker) {
		t.Fatalf("fallback missing marker: %q", got)
	}
	if !strings.Contains(got, prompt) {
		t.Fatalf("fallback missing original prompt: %q", got)
	}
	if !strings.Contains(got, "quota exceeded") {
		t.Fatalf("fallback missing failure note: %q", got)
	}
}

func TestGenerateEmptyResponseYieldsSentinel(t *testing.T) {
	provider := &scriptedProvider{response: "   \n "}
	gen := NewGenerator(provider)
	got := gen.Generate(context.Background(), "prompt", "")
	if got != EmptyResponseSentinel {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestGenerateWithoutProviderFallsBack(t *testing.T) {
	gen := NewGenerator(nil)
	got := gen.Generate(context.Background(), "prompt", "")
	if !strings.Contains(got, FallbackMarker) {
		t.Fatalf("expected fallback, got %q", got)
	}
}
