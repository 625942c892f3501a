package pipeline

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Validate checks a parsed definition against the properties the runner relies
// on: a supported schema version, a non-empty primary image, at least one step
// per job, shell-parseable run commands, and variable references that resolve
// to non-empty values against the job environment.
func (d *Definition) Validate() error {
	if d.Version != SupportedVersion {
		return invalidf("", "unsupported version %d (want %d)", d.Version, SupportedVersion)
	}
	if len(d.Jobs) == 0 {
		return invalidf("", "no jobs defined")
	}

	parser := syntax.NewParser()
	for name, job := range d.Jobs {
		if job.PrimaryImage() == "" {
			return invalidf(name, "no docker image")
		}
		if len(job.Steps) == 0 {
			return invalidf(name, "no steps")
		}
		for i, step := range job.Steps {
			if step.Type != StepTypeRun {
				continue
			}
			if strings.TrimSpace(step.Command) == "" {
				return invalidf(name, "step %d has an empty command", i+1)
			}
			if _, err := parser.Parse(strings.NewReader(step.Command), step.Name); err != nil {
				return invalidf(name, "step %d is not a valid shell invocation: %v", i+1, err)
			}
			if _, err := Expand(step.Command, job.Environment); err != nil {
				return invalidf(name, "step %d: %v", i+1, err)
			}
		}
	}
	return nil
}
