package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/agora/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadDefaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, 8080, cfg.MonitoringPort)
	assert.Equal(t, "http://localhost:7200/repositories/city_facilities", cfg.GraphDB.URL)
	assert.Equal(t, 30*time.Second, cfg.GraphDB.Timeout)
	assert.Equal(t, "http://example.org/dcc/facilities#", cfg.Namespace)
	assert.Empty(t, cfg.VocabularyPath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 50, cfg.SearchLimit)
	assert.Equal(t, 500, cfg.SearchMaxLimit)
	assert.True(t, cfg.CleanLabels)
}

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("AGORA_ENV", "local")
	t.Setenv("AGORA_PORT", "5050")
	t.Setenv("AGORA_MONITORING_PORT", "9090")
	t.Setenv("GRAPHDB_URL", "http://graphdb:7200/repositories/test")
	t.Setenv("GRAPHDB_TIMEOUT", "5s")
	t.Setenv("AGORA_NAMESPACE", "http://data.example.org/ns#")
	t.Setenv("AGORA_VOCABULARY_PATH", "/etc/agora/vocabulary.yaml")
	t.Setenv("AGORA_CORS_ORIGINS", "https://map.example.org, http://localhost:3000")
	t.Setenv("AGORA_SEARCH_LIMIT", "20")
	t.Setenv("AGORA_SEARCH_MAX_LIMIT", "200")
	t.Setenv("AGORA_CLEAN_LABELS", "false")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 5050, cfg.Port)
	assert.Equal(t, 9090, cfg.MonitoringPort)
	assert.Equal(t, "http://graphdb:7200/repositories/test", cfg.GraphDB.URL)
	assert.Equal(t, 5*time.Second, cfg.GraphDB.Timeout)
	assert.Equal(t, "http://data.example.org/ns#", cfg.Namespace)
	assert.Equal(t, "/etc/agora/vocabulary.yaml", cfg.VocabularyPath)
	assert.Equal(t, []string{"https://map.example.org", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 20, cfg.SearchLimit)
	assert.Equal(t, 200, cfg.SearchMaxLimit)
	assert.False(t, cfg.CleanLabels)
}

func Test_MustLoadFromDotEnv(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, ".env")
	filet.File(t, path, "GRAPHDB_URL=http://dotenv:7200/repositories/facilities\nAGORA_ENV=development\n")

	t.Setenv("AGORA_DOTENV", path)
	// Already-set variables take precedence over the file.
	t.Setenv("AGORA_ENV", "local")
	t.Cleanup(func() { os.Unsetenv("GRAPHDB_URL") })

	cfg := config.MustLoad()

	assert.Equal(t, "http://dotenv:7200/repositories/facilities", cfg.GraphDB.URL)
	assert.Equal(t, "local", cfg.Env)
}

func TestMustLoad_DotEnvError(t *testing.T) {
	t.Setenv("AGORA_DOTENV", "/does/not/exist/.env")

	assert.PanicsWithValue(t, "failed to load dotenv file from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_TimeoutError(t *testing.T) {
	t.Setenv("GRAPHDB_TIMEOUT", "error_value")

	assert.PanicsWithValue(t, "failed to parse graphdb timeout from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("AGORA_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for api server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_MonitoringPortError(t *testing.T) {
	t.Setenv("AGORA_MONITORING_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for monitoring server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_SearchLimitError(t *testing.T) {
	t.Setenv("AGORA_SEARCH_LIMIT", "-3")

	assert.PanicsWithValue(t, "failed to parse search limit from configuration, must be a positive integer", func() {
		config.MustLoad()
	})
}

func TestMustLoad_SearchMaxLimitError(t *testing.T) {
	t.Setenv("AGORA_SEARCH_LIMIT", "100")
	t.Setenv("AGORA_SEARCH_MAX_LIMIT", "10")

	assert.PanicsWithValue(t,
		"failed to parse search max limit from configuration, must be an integer not below the search limit",
		func() { config.MustLoad() },
	)
}

func TestMustLoad_CleanLabelsError(t *testing.T) {
	t.Setenv("AGORA_CLEAN_LABELS", "sometimes")

	assert.PanicsWithValue(t, "failed to parse clean labels flag from configuration, must be a boolean", func() {
		config.MustLoad()
	})
}
