package models

import "time"

// GenerationOutcome classifies how a single provider fared during one
// report-generation run.
type GenerationOutcome string

const (
	// OutcomeNotRun means the provider was skipped, e.g. disabled by config.
	OutcomeNotRun GenerationOutcome = "NotRun"

	// OutcomeSuccess means the provider generated its report.
	OutcomeSuccess GenerationOutcome = "Success"

	// OutcomeUnknownFailure means the provider failed with an uncaught error
	// or panic; the failure was captured at the fan-out boundary.
	OutcomeUnknownFailure GenerationOutcome = "UnknownFailure"

	// OutcomeNotEnoughInformation means the provider ran but the window did
	// not carry enough data for a meaningful report.
	OutcomeNotEnoughInformation GenerationOutcome = "NotEnoughInformation"
)

// GenerationResult records one provider's outcome within a run.
type GenerationResult struct {
	Provider string            `json:"provider"`
	Outcome  GenerationOutcome `json:"outcome"`
	Messages []string          `json:"messages,omitempty"`
}

// GenerationSummary is the auditable record of one report-generation run:
// when it ran, how long it took, and how every registered provider fared.
// Summaries are append-only and never mutated after persistence.
type GenerationSummary struct {
	RunAt    time.Time          `json:"runAt"`
	Duration time.Duration      `json:"duration"`
	Results  []GenerationResult `json:"results"`
}
