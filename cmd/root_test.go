package cmd

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeAppRejectsInvalidOverrides(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown log level",
			args:    []string{"dashboard", "--log-level", "verbose"},
			wantErr: "invalid logging level: verbose",
		},
		{
			name:    "relative base url",
			args:    []string{"dashboard", "--base-url", "localhost:5276"},
			wantErr: "api.base_url must be an absolute http(s) URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(io.Discard)
			rootCmd.SetErr(io.Discard)
			t.Cleanup(func() {
				rootCmd.SetArgs(nil)
				logLevel, baseURL = "", ""
			})

			err := rootCmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
