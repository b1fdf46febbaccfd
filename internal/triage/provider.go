// Package triage turns a failed verification run into a short human-readable
// diagnosis using an LLM. It is optional; the verification result never
// depends on it.
package triage

import (
	"fmt"

	"github.com/Shehzz/multibank-automation-framework/internal/report"
)

// Provider defines the interface for failure diagnosis.
type Provider interface {
	Diagnose(summary *report.Summary) (string, error)
}

// NewProvider creates a provider based on the provider name.
func NewProvider(name, model string) (Provider, error) {
	switch name {
	case "claude", "anthropic":
		return NewClaudeProvider(model)
	case "openai", "gpt":
		return NewOpenAIProvider(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: claude, openai)", name)
	}
}
