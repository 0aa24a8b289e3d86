package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CatalogCheck_DefaultCatalog(t *testing.T) {
	// arrange
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"catalog", "check"})

	// act
	err := rootCmd.Execute()

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "catalog ok:")
	assert.Contains(t, out.String(), "hard")
}

func Test_CatalogCheck_InvalidFile(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "quests.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quests: []\n"), 0o600))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"catalog", "check", path})

	// act
	err := rootCmd.Execute()

	// assert
	assert.Error(t, err)
}
