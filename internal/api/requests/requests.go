package requests

import (
	"github.com/PeterJCLaw/sb-vision/internal/api/errors"
	"github.com/PeterJCLaw/sb-vision/internal/api/validation"
)

type SubmitRunRequest struct {
	RepoURL      string  `json:"repo_url" validate:"required"`
	Branch       *string `json:"branch,omitempty"`
	CommitHash   *string `json:"commit_hash,omitempty"`
	PipelinePath string  `json:"pipeline_path,omitempty"`
}

func (r *SubmitRunRequest) Validate() error {
	validationErrors := validation.ValidateStruct(r)
	if len(validationErrors) > 0 {
		return errors.NewValidationError(validationErrors)
	}
	return nil
}
