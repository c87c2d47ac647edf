// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/prefrank/rank"
)

// Report is the JSON document produced for one ranked round.
type Report struct {
	Items       int                 `json:"items"`
	Preferences int                 `json:"preferences"`
	Damping     float64             `json:"damping"`
	Iterations  int                 `json:"iterations"`
	Converged   bool                `json:"converged"`
	Scores      []rank.ScoredItem   `json:"scores"`
	Variances   []rank.PairVariance `json:"variances,omitempty"`
}

// NewReport assembles a report from an engine and its ranking result.
// Variances are included only when withVariances is set.
func NewReport(eng *rank.Engine, res *rank.Result, withVariances bool) *Report {
	rep := &Report{
		Items:       eng.Len(),
		Preferences: eng.PreferenceCount(),
		Damping:     res.Damping,
		Iterations:  res.Iterations,
		Converged:   res.Converged,
		Scores:      res.Scores.Sorted(),
	}
	if withVariances {
		rep.Variances = eng.Variances()
	}

	return rep
}

// WriteJSON encodes rep as indented JSON followed by a newline.
func WriteJSON(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("dataset: encode report: %w", err)
	}

	return nil
}
