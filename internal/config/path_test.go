package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("BATCHCODE_TEST_DIR", "/tmp/batchcode")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "absolute unchanged", path: "/var/lib/batchcode.db", want: "/var/lib/batchcode.db"},
		{name: "tilde prefix", path: "~/data/history.db", want: filepath.Join(home, "data", "history.db")},
		{name: "bare tilde", path: "~", want: home},
		{name: "env var", path: "$BATCHCODE_TEST_DIR/history.db", want: "/tmp/batchcode/history.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	path := DefaultDatabasePath()
	assert.True(t, filepath.IsAbs(path) || path == "batchcode.db")
	assert.Contains(t, path, "batchcode")
}
