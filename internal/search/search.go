// Package search is a pure projection over a catalog snapshot: every query
// rescans the tree rather than maintaining an index, which is fine for a
// small catalog mutated far less often than it is queried.
package search

import (
	"strings"

	"github.com/helpdeskhq/portal-core/internal/catalog"
)

type ResultType string

const (
	ResultTypeModule ResultType = "module"
	ResultTypeGuide  ResultType = "guide"
	ResultTypeStep   ResultType = "step"
)

// Result is a single match tagged with its granularity and enough context
// to show where it was found. StepIndex is 1-based for deep-linking and set
// only on step results.
type Result struct {
	Type        ResultType `json:"type"`
	ModuleID    string     `json:"moduleId"`
	GuideID     string     `json:"guideId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Breadcrumb  string     `json:"breadcrumb,omitempty"`
	StepIndex   int        `json:"stepIndex,omitempty"`
	StepText    string     `json:"stepText,omitempty"`
}

func matches(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Search returns every case-insensitive substring match across module,
// guide, and step text. One term can hit the same guide at several
// granularities; the caller ranks and groups, the core does not deduplicate.
// A blank term yields no results.
func Search(modules []catalog.Module, term string) []Result {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var results []Result
	for _, m := range modules {
		if matches(term, m.Title, m.Description) {
			results = append(results, Result{
				Type:        ResultTypeModule,
				ModuleID:    m.ID,
				Title:       m.Title,
				Description: m.Description,
			})
		}

		for _, g := range m.Guides {
			if matches(term, g.Title, g.Description) {
				results = append(results, Result{
					Type:        ResultTypeGuide,
					ModuleID:    m.ID,
					GuideID:     g.ID,
					Title:       g.Title,
					Description: g.Description,
					Breadcrumb:  m.Title,
				})
			}

			for i, step := range g.Steps {
				if matches(term, step) {
					results = append(results, Result{
						Type:       ResultTypeStep,
						ModuleID:   m.ID,
						GuideID:    g.ID,
						Title:      g.Title,
						Breadcrumb: m.Title + " > " + g.Title,
						StepIndex:  i + 1,
						StepText:   step,
					})
				}
			}
		}
	}
	return results
}
