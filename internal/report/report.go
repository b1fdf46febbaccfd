// Package report aggregates verification outcomes into a run summary and
// writes run artifacts: a JSON report and downscaled failure screenshots.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Shehzz/multibank-automation-framework/internal/nav"
)

// Summary collects one outcome per verified menu item.
type Summary struct {
	StartedAt time.Time     `json:"started_at"`
	BaseURL   string        `json:"base_url"`
	Outcomes  []nav.Outcome `json:"outcomes"`
}

func NewSummary(baseURL string) *Summary {
	return &Summary{StartedAt: time.Now().UTC(), BaseURL: baseURL}
}

func (s *Summary) Add(o nav.Outcome) {
	s.Outcomes = append(s.Outcomes, o)
}

// Counts returns how many outcomes carry each status.
func (s *Summary) Counts() map[nav.Status]int {
	counts := make(map[nav.Status]int)
	for _, o := range s.Outcomes {
		counts[o.Status]++
	}
	return counts
}

// Failures returns the outcomes that did not pass or skip.
func (s *Summary) Failures() []nav.Outcome {
	var out []nav.Outcome
	for _, o := range s.Outcomes {
		if o.Status == nav.StatusFailed || o.Status == nav.StatusError {
			out = append(out, o)
		}
	}
	return out
}

// OK reports whether the run had no failures or errors.
func (s *Summary) OK() bool {
	return len(s.Failures()) == 0
}

func symbol(st nav.Status) string {
	switch st {
	case nav.StatusPassed:
		return "✓"
	case nav.StatusSkipped:
		return "⊘"
	default:
		return "✗"
	}
}

// Render writes a human-readable run summary.
func (s *Summary) Render(w io.Writer) {
	for _, o := range s.Outcomes {
		fmt.Fprintf(w, "  %s %-20s %s\n", symbol(o.Status), o.Item, o.Message)
	}
	counts := s.Counts()
	fmt.Fprintf(w, "\n%d passed, %d failed, %d skipped, %d errors\n",
		counts[nav.StatusPassed], counts[nav.StatusFailed],
		counts[nav.StatusSkipped], counts[nav.StatusError])
	for _, f := range s.Failures() {
		fmt.Fprintf(w, "  %s: expected %q, got %q (%s)\n", f.Item, f.Expected, f.Actual, f.Message)
	}
}

// WriteJSON saves the summary under dir and returns the file path.
func (s *Summary) WriteJSON(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling summary: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("navcheck-%s.json", s.StartedAt.Format("20060102-150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// JSON returns the summary as indented JSON, for triage prompts.
func (s *Summary) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
