package dto

import (
	"time"

	"github.com/PeterJCLaw/sb-vision/internal/constants"
)

// StepResult records the outcome of a single pipeline step.
type StepResult struct {
	Name       string               `json:"name"`
	Command    string               `json:"command"`
	Status     constants.StepStatus `json:"status"`
	ExitCode   int                  `json:"exit_code"`
	Output     string               `json:"output"`
	LogPath    string               `json:"log_path,omitempty"`
	StartedAt  *time.Time           `json:"started_at"`
	FinishedAt *time.Time           `json:"finished_at"`
}

// PipelineRun is one execution of a pipeline definition against a checkout.
type PipelineRun struct {
	ID            uint64              `json:"id"`
	RepoUrl       string              `json:"repo_url"`
	Branch        *string             `json:"branch"`
	CommitHash    *string             `json:"commit_hash"`
	PipelinePath  string              `json:"pipeline_path"`
	Status        constants.RunStatus `json:"status"`
	Steps         []StepResult        `json:"steps"`
	FailureReason *string             `json:"failure_reason"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	StartedAt     *time.Time          `json:"started_at"`
	CompletedAt   *time.Time          `json:"completed_at"`
}
