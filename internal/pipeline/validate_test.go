package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSampleDefinition(t *testing.T) {
	def, err := Parse([]byte(sampleDefinition))
	require.NoError(t, err)
	assert.NoError(t, def.Validate())
}

func TestValidate(t *testing.T) {
	env := map[string]string{"FLAKE8": "venv/bin/flake8"}

	tests := []struct {
		name string
		def  Definition
		ok   bool
	}{
		{
			name: "valid single run step",
			def:  definitionWith(env, Step{Type: StepTypeRun, Command: "make test"}),
			ok:   true,
		},
		{
			name: "resolvable variable",
			def:  definitionWith(env, Step{Type: StepTypeRun, Command: "$FLAKE8 script/linting/lint"}),
			ok:   true,
		},
		{
			name: "unresolvable variable",
			def:  definitionWith(nil, Step{Type: StepTypeRun, Command: "$FLAKE8 script/linting/lint"}),
		},
		{
			name: "empty command",
			def:  definitionWith(env, Step{Type: StepTypeRun, Command: "   "}),
		},
		{
			name: "shell syntax error",
			def:  definitionWith(env, Step{Type: StepTypeRun, Command: "echo 'unterminated"}),
		},
		{
			name: "checkout only",
			def:  definitionWith(env, Step{Type: StepTypeCheckout, Name: "checkout"}),
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}
}

func TestValidateStructure(t *testing.T) {
	t.Run("unsupported version", func(t *testing.T) {
		def := definitionWith(nil, Step{Type: StepTypeRun, Command: "true"})
		def.Version = 1
		assert.ErrorIs(t, def.Validate(), ErrInvalidDefinition)
	})

	t.Run("no jobs", func(t *testing.T) {
		def := Definition{Version: SupportedVersion}
		assert.ErrorIs(t, def.Validate(), ErrInvalidDefinition)
	})

	t.Run("no steps", func(t *testing.T) {
		def := definitionWith(nil)
		assert.ErrorIs(t, def.Validate(), ErrInvalidDefinition)
	})

	t.Run("no image", func(t *testing.T) {
		def := definitionWith(nil, Step{Type: StepTypeRun, Command: "true"})
		job := def.Jobs["build"]
		job.Docker = nil
		def.Jobs["build"] = job
		err := def.Validate()
		require.Error(t, err)

		var defErr *DefinitionError
		require.True(t, errors.As(err, &defErr))
		assert.Equal(t, "build", defErr.Job)
	})
}

func definitionWith(env map[string]string, steps ...Step) Definition {
	return Definition{
		Version: SupportedVersion,
		Jobs: map[string]Job{
			"build": {
				Docker:      []DockerImage{{Image: "python:3.5.4"}},
				Environment: env,
				Steps:       steps,
			},
		},
	}
}
