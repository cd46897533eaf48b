package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octobees/lead-finder/internal/config"
	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/service"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWTSecret:  "secret",
		TokenTTL:   time.Hour,
		StaticDir:  t.TempDir(),
		BackupFile: "-",
		Scan:       config.ScanConfig{Workers: 2, MaxPerQuery: 20, RequestTimeout: time.Second, PhoneRegion: "US"},
		Enrich:     config.EnrichConfig{SearchURL: "http://127.0.0.1:1/html/", Timeout: time.Second},
		Site:       config.SiteConfig{PageStore: "local", Timeout: time.Second},
	}
}

func TestBuild_Minimal(t *testing.T) {
	cfg := testConfig(t)

	a, err := Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Leads)
	assert.NotNil(t, a.Enrich)
	assert.NotNil(t, a.Sites)
	assert.Nil(t, a.Auth)
	assert.Nil(t, a.JWT)
	assert.False(t, a.StoreEnabled())
	assert.DirExists(t, filepath.Join(cfg.StaticDir, "generated"))

	_, err = a.Leads.List(context.Background(), dto.ListFilter{})
	assert.ErrorIs(t, err, service.ErrStoreDisabled)
}

func TestBuild_AuthEnabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.OperatorEmail = "ops@example.com"

	a, err := Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Auth)
	assert.NotNil(t, a.JWT)
}

func TestBuild_GeneratesFallbackPageLocally(t *testing.T) {
	cfg := testConfig(t)
	cfg.Site.OpenAIBaseURL = "http://127.0.0.1:1/v1"

	a, err := Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	resp, err := a.Sites.Generate(context.Background(), dto.GenerateSiteRequest{
		BusinessName: "Acme Plumbing",
		Niche:        "plumbers",
		Location:     "Austin",
		AIAPIKey:     "sk-test",
	})
	require.NoError(t, err)
	assert.Equal(t, "fallback", resp.Source)
	assert.Equal(t, "/static/generated/acme_plumbing.html", resp.PreviewURL)

	html, err := os.ReadFile(filepath.Join(cfg.StaticDir, "generated", "acme_plumbing.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Acme Plumbing")
}

func TestBuild_GCSStore(t *testing.T) {
	t.Setenv("STORAGE_EMULATOR_HOST", "127.0.0.1:1")
	cfg := testConfig(t)
	cfg.Site.PageStore = "gcs"
	cfg.Site.GCSBucket = "pages"

	a, err := Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, a.gcsClient)
	a.Close()
	assert.Nil(t, a.gcsClient)
}

func TestBuild_InvalidDatabaseURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseURL = "://not-a-dsn"

	_, err := Build(context.Background(), cfg, nil)
	assert.Error(t, err)
}
