package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/mdlocal/internal/common"
)

func TestNew_InvalidTimeout(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Download.Timeout = "never"

	_, err := New(cfg, arbor.NewLogger())
	require.Error(t, err)
}

func TestNew_UsesConfiguredAssetsDirAndSuffix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("gif"))
	}))
	defer server.Close()

	cfg := common.NewDefaultConfig()
	cfg.Output.AssetsDir = "media"
	cfg.Output.Suffix = "_offline"

	application, err := New(cfg, arbor.NewLogger())
	require.NoError(t, err)

	docDir := t.TempDir()
	input := filepath.Join(docDir, "page.md")
	require.NoError(t, os.WriteFile(input, []byte("![x]("+server.URL+"/x.gif)"), 0644))

	result, err := application.Localizer.Localize(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(docDir, "page_offline.md"), result.OutputPath)
	require.Len(t, result.Images, 1)
	assert.True(t, strings.HasPrefix(result.Images[0].LocalPath, "./media/image_"))
}
