package config

const (
	defaultModelPath         = "movie_genre_classifier.joblib"
	defaultBenchmarkPath     = "movie_genre_classifier_benchmark.joblib"
	defaultHistoryPath       = "~/.local/share/moviegenre/history.db"
	defaultHistoryLimit      = 20
	defaultLogFormat         = "console"
	defaultLogLevel          = "warn"
	defaultConfigPath        = "~/.config/moviegenre/config.toml"
	defaultProjectConfigName = "moviegenre.toml"
	envModelPath             = "MOVIEGENRE_MODEL_PATH"
	envLogLevel              = "MOVIEGENRE_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Model: Model{
			Path:          defaultModelPath,
			BenchmarkPath: defaultBenchmarkPath,
		},
		History: History{
			Enabled: false,
			Path:    defaultHistoryPath,
			Limit:   defaultHistoryLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
