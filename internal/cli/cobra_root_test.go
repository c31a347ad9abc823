package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-slash/internal/config"
)

func runRoot(t *testing.T, input string, args ...string) (*RootCommand, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(config.NewLoader().WithEnvFile(""), strings.NewReader(input), &out, &errOut)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return root, out.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	_, out, err := runRoot(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "Version 1.0.0 beta\n", out)
}

func TestRootCommand_Shell(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "seeded by default",
			args:     []string{"shell"},
			contains: []string{"Ticket Slash 1.0.0 beta", "Buy Suya", "Added: Call mum"},
		},
		{
			name:     "seed disabled",
			args:     []string{"shell", "--seed=false"},
			contains: []string{"No results found", "Added: Call mum"},
			excludes: []string{"Buy Suya"},
		},
		{
			name:     "french",
			args:     []string{"--lang", "fr"},
			contains: []string{"À faire"},
		},
		{
			name:     "sqlite backend",
			args:     []string{"shell", "--storage", "sqlite"},
			contains: []string{"Buy Suya", "Added: Call mum"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := runRoot(t, "add Call mum\nquit\n", tt.args...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	root, _, err := runRoot(t, "quit\n", "shell", "--date-layout", "02.01.2006", "--completion-policy", "now", "--text-max-length", "40")
	require.NoError(t, err)

	cfg := root.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, "02.01.2006", cfg.Time.DateLayout)
	assert.Equal(t, "now", cfg.Tasks.CompletionPolicy)
	assert.Equal(t, 40, cfg.Validation.TaskTextMaxLength)
	assert.Equal(t, config.BackendMemory, cfg.Storage.Backend)
}

func TestRootCommand_InvalidFlags(t *testing.T) {
	for _, args := range [][]string{
		{"shell", "--storage", "bogus"},
		{"shell", "--completion-policy", "later"},
		{"shell", "--storage", "sqlite", "--dsn", "/tmp/slash.db"},
	} {
		_, _, err := runRoot(t, "quit\n", args...)
		assert.Error(t, err, "args %v", args)
	}
}
