package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cotlang/cotup/convert"
)

func TestInitConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cotup.yaml")
	require.NoError(t, initConfigurationFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config convert.Config
	require.NoError(t, yaml.Unmarshal(data, &config))
	assert.Equal(t, "cotup", config.Name)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["convert"])
	assert.True(t, names["watch"])
	assert.True(t, names["init"])
}
