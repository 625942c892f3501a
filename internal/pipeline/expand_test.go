package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	env := map[string]string{
		"FLAKE8": "venv/bin/flake8",
		"MYPY":   "venv/bin/mypy",
		"EMPTY":  "",
	}

	tests := []struct {
		name    string
		command string
		want    string
		wantErr bool
	}{
		{
			name:    "no references",
			command: "apt-get update",
			want:    "apt-get update",
		},
		{
			name:    "dollar reference",
			command: "$FLAKE8 script/linting/lint",
			want:    "venv/bin/flake8 script/linting/lint",
		},
		{
			name:    "braced reference",
			command: "${MYPY} script/typing/check",
			want:    "venv/bin/mypy script/typing/check",
		},
		{
			name:    "unset variable",
			command: "$PYLINT src",
			wantErr: true,
		},
		{
			name:    "empty variable",
			command: "$EMPTY src",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.command, env)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnresolvedVar)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeEnv(t *testing.T) {
	base := map[string]string{"A": "1", "B": "2"}
	merged := MergeEnv(base, map[string]string{"B": "3", "C": "4"})

	assert.Equal(t, map[string]string{"A": "1", "B": "3", "C": "4"}, merged)
	assert.Equal(t, "2", base["B"], "base must not be mutated")
}
