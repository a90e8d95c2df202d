package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the facilities API.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port of the public API server.
// - MonitoringPort: The port of the health/metrics server.
// - GraphDB: Connection settings for the SPARQL endpoint.
// - Namespace: The ontology namespace facility ids are expanded against.
// - VocabularyPath: Optional YAML file overriding the embedded id allow-lists.
// - CORSOrigins: Origins allowed to call the API ("*" for any).
// - SearchLimit: Default number of search results.
// - SearchMaxLimit: Upper bound for the search limit parameter.
// - CleanLabels: Whether "(n)" count suffixes are stripped from labels.
type Config struct {
	Env            string        `yaml:"env"`              // Env is the current environment: local, development, production.
	Port           int           `yaml:"port"`             // Port is the API server port.
	MonitoringPort int           `yaml:"monitoring.port"`  // MonitoringPort serves /healthz and /metrics.
	GraphDB        GraphDBConfig `yaml:"graphdb"`          // GraphDB holds the SPARQL endpoint configuration.
	Namespace      string        `yaml:"namespace"`        // Namespace of the facilities ontology.
	VocabularyPath string        `yaml:"vocabulary_path"`  // VocabularyPath overrides the embedded vocabulary.
	CORSOrigins    []string      `yaml:"cors.origins"`     // CORSOrigins lists allowed origins.
	SearchLimit    int           `yaml:"search.limit"`     // SearchLimit is the default search limit.
	SearchMaxLimit int           `yaml:"search.max_limit"` // SearchMaxLimit clamps the search limit.
	CleanLabels    bool          `yaml:"clean_labels"`     // CleanLabels strips count suffixes from labels.
}

// GraphDBConfig struct holds the details for reaching the triple store.
type GraphDBConfig struct {
	URL     string        `yaml:"url"`     // URL is the repository SPARQL endpoint.
	Timeout time.Duration `yaml:"timeout"` // Timeout bounds a single query.
}

// MustLoad loads the configuration from the environment (and an optional
// .env file) and returns a Config struct. It panics on invalid values.
func MustLoad() *Config {
	loadDotEnv()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	timeout, err := time.ParseDuration(v.GetString("GRAPHDB_TIMEOUT"))
	if err != nil || timeout <= 0 {
		panic("failed to parse graphdb timeout from configuration")
	}

	port, err := strconv.Atoi(v.GetString("AGORA_PORT"))
	if err != nil {
		panic("failed to parse port for api server from configuration")
	}

	monitoringPort, err := strconv.Atoi(v.GetString("AGORA_MONITORING_PORT"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	searchLimit, err := strconv.Atoi(v.GetString("AGORA_SEARCH_LIMIT"))
	if err != nil || searchLimit <= 0 {
		panic("failed to parse search limit from configuration, must be a positive integer")
	}

	searchMaxLimit, err := strconv.Atoi(v.GetString("AGORA_SEARCH_MAX_LIMIT"))
	if err != nil || searchMaxLimit < searchLimit {
		panic("failed to parse search max limit from configuration, must be an integer not below the search limit")
	}

	cleanLabels, err := strconv.ParseBool(v.GetString("AGORA_CLEAN_LABELS"))
	if err != nil {
		panic("failed to parse clean labels flag from configuration, must be a boolean")
	}

	return &Config{
		Env:            v.GetString("AGORA_ENV"),
		Port:           port,
		MonitoringPort: monitoringPort,
		GraphDB: GraphDBConfig{
			URL:     v.GetString("GRAPHDB_URL"),
			Timeout: timeout,
		},
		Namespace:      v.GetString("AGORA_NAMESPACE"),
		VocabularyPath: v.GetString("AGORA_VOCABULARY_PATH"),
		CORSOrigins:    splitList(v.GetString("AGORA_CORS_ORIGINS")),
		SearchLimit:    searchLimit,
		SearchMaxLimit: searchMaxLimit,
		CleanLabels:    cleanLabels,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("AGORA_ENV", "production")
	v.SetDefault("AGORA_PORT", "5000")
	v.SetDefault("AGORA_MONITORING_PORT", "8080")
	v.SetDefault("GRAPHDB_URL", "http://localhost:7200/repositories/city_facilities")
	v.SetDefault("GRAPHDB_TIMEOUT", "30s")
	v.SetDefault("AGORA_NAMESPACE", "http://example.org/dcc/facilities#")
	v.SetDefault("AGORA_VOCABULARY_PATH", "")
	v.SetDefault("AGORA_CORS_ORIGINS", "*")
	v.SetDefault("AGORA_SEARCH_LIMIT", "50")
	v.SetDefault("AGORA_SEARCH_MAX_LIMIT", "500")
	v.SetDefault("AGORA_CLEAN_LABELS", "true")
}

// loadDotEnv loads AGORA_DOTENV if set, else an optional .env in the working
// directory. Variables already present in the environment win.
func loadDotEnv() {
	path, exists := os.LookupEnv("AGORA_DOTENV")
	if !exists {
		_ = godotenv.Load()
		return
	}

	if err := godotenv.Load(path); err != nil {
		panic("failed to load dotenv file from configuration")
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
