package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only definition schema version the runner accepts.
const SupportedVersion = 2

type StepType string

const (
	// StepTypeCheckout acquires the source checkout into the working directory.
	StepTypeCheckout StepType = "checkout"
	// StepTypeRun executes a shell command.
	StepTypeRun StepType = "run"
)

// Definition is a parsed pipeline file.
type Definition struct {
	Version int            `yaml:"version"`
	Jobs    map[string]Job `yaml:"jobs"`
}

// Job is a named sequence of steps executed in order inside a container image.
type Job struct {
	WorkingDirectory string            `yaml:"working_directory"`
	Docker           []DockerImage     `yaml:"docker"`
	Environment      map[string]string `yaml:"environment"`
	Steps            []Step            `yaml:"steps"`
}

type DockerImage struct {
	Image string `yaml:"image"`
}

// PrimaryImage returns the image steps run in (the first docker entry).
func (j *Job) PrimaryImage() string {
	if len(j.Docker) == 0 {
		return ""
	}
	return j.Docker[0].Image
}

// Step is either the bare `checkout` keyword or a `run` entry. A run entry is
// written as a plain command string or as a mapping with name and command:
//
//	steps:
//	  - checkout
//	  - run: pip install -e .
//	  - run:
//	      name: lint
//	      command: $FLAKE8 script/linting/lint
type Step struct {
	Type    StepType
	Name    string
	Command string
}

type runBody struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
}

func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var keyword string
		if err := node.Decode(&keyword); err != nil {
			return err
		}
		if keyword != string(StepTypeCheckout) {
			return fmt.Errorf("line %d: unknown step keyword %q", node.Line, keyword)
		}
		s.Type = StepTypeCheckout
		s.Name = string(StepTypeCheckout)
		return nil

	case yaml.MappingNode:
		var m map[string]yaml.Node
		if err := node.Decode(&m); err != nil {
			return err
		}
		body, ok := m["run"]
		if !ok {
			return fmt.Errorf("line %d: step mapping must have a run key", node.Line)
		}
		s.Type = StepTypeRun
		if body.Kind == yaml.ScalarNode {
			if err := body.Decode(&s.Command); err != nil {
				return err
			}
			s.Name = s.Command
			return nil
		}
		var rb runBody
		if err := body.Decode(&rb); err != nil {
			return err
		}
		s.Name = rb.Name
		s.Command = rb.Command
		if s.Name == "" {
			s.Name = s.Command
		}
		return nil

	default:
		return fmt.Errorf("line %d: step must be a scalar or mapping", node.Line)
	}
}
