package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitRunRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request SubmitRunRequest
		wantErr bool
	}{
		{
			name:    "valid",
			request: SubmitRunRequest{RepoURL: "https://example.com/repo.git"},
		},
		{
			name:    "missing repo url",
			request: SubmitRunRequest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
