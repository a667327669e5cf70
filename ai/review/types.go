package review

import "fmt"

// Stage identifies one step of the review pipeline.
type Stage string

const (
	StageDraft         Stage = "draft"
	StageSEOReview     Stage = "seo_review"
	StageLegalReview   Stage = "legal_review"
	StageEthicsReview  Stage = "ethics_review"
	StageMetaAggregate Stage = "meta_aggregate"
)

// StageError reports which stage of the pipeline failed. The pipeline never
// retries a failed stage: the caller converts the error into an inline
// content-error string and the enclosing turn completes.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("review stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// StageReview is a reviewer's critique compressed into the fixed two-field
// structure.
type StageReview struct {
	Reviewer string `json:"Reviewer"`
	Review   string `json:"Review"`
}

// Aggregate is the meta reviewer's roll-up of the three structured reviews.
type Aggregate struct {
	Summary       string   `json:"summary"`
	PriorityFixes []string `json:"priority_fixes"`
	Notes         string   `json:"notes"`
}

// Result is the pipeline outcome. The returned response text is always the
// frozen Draft; Reviews and Aggregate are metadata attached for the caller.
type Result struct {
	Draft     string
	Reviews   []StageReview
	Aggregate *Aggregate
}
