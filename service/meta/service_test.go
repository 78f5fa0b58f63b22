package meta

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	baseDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, "packs", "math"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "packs", "core.yaml"), []byte("name: core\nauthor: ${env.FLUXBLOCK_TEST_AUTHOR}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "packs", "math", "trig.yml"), []byte("name: trig\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "packs", "readme.txt"), []byte("skip"), 0o644))
	t.Setenv("FLUXBLOCK_TEST_AUTHOR", "tester")

	service := New(afs.New(), baseDir)
	var doc struct {
		Name   string `yaml:"name"`
		Author string `yaml:"author"`
	}
	require.NoError(t, service.Load(ctx, "packs/core.yaml", &doc))
	assert.Equal(t, "core", doc.Name)
	assert.Equal(t, "tester", doc.Author)

	ok, err := service.Exists(ctx, "packs/math/trig.yml")
	require.NoError(t, err)
	assert.True(t, ok)

	URLs, err := service.List(ctx, "packs")
	require.NoError(t, err)
	assert.Len(t, URLs, 2)

	assert.Error(t, service.Load(ctx, "packs/missing.yaml", &doc))
	assert.Equal(t, "/abs/doc.yaml", service.URL("/abs/doc.yaml"))
}
