package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDefinition = errors.New("invalid pipeline definition")
	ErrUnresolvedVar     = errors.New("unresolved variable")
)

// DefinitionError wraps a validation failure with the job it occurred in.
type DefinitionError struct {
	Job string
	Msg string
}

func (e *DefinitionError) Error() string {
	if e.Job == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidDefinition.Error(), e.Msg)
	}
	return fmt.Sprintf("%s: job %q: %s", ErrInvalidDefinition.Error(), e.Job, e.Msg)
}

func (e *DefinitionError) Unwrap() error { return ErrInvalidDefinition }

func invalidf(job, format string, args ...any) error {
	return &DefinitionError{Job: job, Msg: fmt.Sprintf(format, args...)}
}
