package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStepLog(t *testing.T) {
	base := t.TempDir()
	ls := NewLogStore(base)

	path, err := ls.SaveStepLog(7, 2, "install deps", "some output\n")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "run-7", "02_install_deps.log"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "some output\n", string(data))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"install deps", "install_deps"},
		{"venv/bin/pip install -e .", "venvbinpip_install_-e_"},
		{"///", "step"},
		{"", "step"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitize(tt.in))
	}
}
