package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lesewerk/silbe/pkg/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cluster.DefaultClusters, cfg.Engine.Clusters)
	assert.Equal(t, cluster.DefaultInitialOnly, cfg.Engine.InitialOnly)
	assert.True(t, cfg.Engine.UseClusters)
	assert.Empty(t, cfg.Engine.HyphenationFile)

	cfg.Engine.Clusters[0] = "xx"
	assert.NotEqual(t, "xx", cluster.DefaultClusters[0])
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[engine]
clusters = ["sch", "ch"]
initial_only = []
use_clusters = false
cache_max_entries = 0
hyphenation_file = "fibel.hyph"

[server]
max_word_length = 32
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"sch", "ch"}, cfg.Engine.Clusters)
	assert.Empty(t, cfg.Engine.InitialOnly)
	assert.False(t, cfg.Engine.UseClusters)
	assert.Equal(t, 0, cfg.Engine.CacheMaxEntries)
	assert.Equal(t, filepath.Join(dir, "fibel.hyph"), cfg.Engine.HyphenationFile)
	assert.Equal(t, 32, cfg.Server.MaxWordLength)
	assert.Equal(t, DefaultConfig().Server.MaxCorpusWords, cfg.Server.MaxCorpusWords)
	assert.Equal(t, DefaultConfig().CLI, cfg.CLI)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[engine]
clusters = ["sch"]
use_clusters = "yes"

[server]
max_word_length = "long"
max_corpus_words = 10

[cli]
color = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"sch"}, cfg.Engine.Clusters)
	assert.True(t, cfg.Engine.UseClusters)
	assert.Equal(t, DefaultConfig().Server.MaxWordLength, cfg.Server.MaxWordLength)
	assert.Equal(t, 10, cfg.Server.MaxCorpusWords)
	assert.False(t, cfg.CLI.Color)
}

func TestLoadConfigUnparseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[engine\nclusters = "), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cli]\nshow_chunks = false\n"), 0644))

	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.False(t, cfg.CLI.ShowChunks)
}
