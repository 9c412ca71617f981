package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

/*
Config is the configuration for the application.

Contains the configuration for the server, storage, and multiple embedding models.
*/
type Config struct {
	Server       ServerConfig           `json:"server"`
	Storage      StorageConfig          `json:"storage"`
	Models       map[string]ModelConfig `json:"models"`
	LogLevel     string                 `json:"log_level"`
	DefaultModel ModelConfig            `json:"default_model"`
}

/*
ServerConfig is the configuration for the server.
*/
type ServerConfig struct {
	Host string `json:"host"`
	Port string `json:"port"`
}

/*
Word2VecConfig is the configuration for skip-gram embedding training.
*/
type Word2VecConfig struct {
	// width of the learned embedding vectors
	Dimensions int `json:"dimensions"`
	// maximum context window radius around the target word
	Window int `json:"window"`
	// subsampling rate for frequent words (0 disables downsampling)
	SampleRate float64 `json:"sample_rate"`
	// initial learning rate
	Alpha float64 `json:"alpha"`
	// number of passes over the corpus
	Epochs int `json:"epochs"`
	// words occurring fewer times than this are discarded
	MinCount int `json:"min_count"`
	// softmax approximation strategy
	Approximation Approximation `json:"approximation"`
	// negative samples drawn per training pair (negative sampling only)
	NegativeCount int `json:"negative_count"`
}

/*
Approximation is the softmax approximation strategy.
*/
type Approximation int

const (
	ApproximationNegativeSampling    Approximation = iota
	ApproximationHierarchicalSoftmax Approximation = iota
)

/*
StorageConfig is the configuration for the storage.
*/
type StorageConfig struct {
	// path to the data directory
	DataPath string `json:"data_path"`
	// whether to use persistence engine
	PersistenceEngine bool `json:"persistence_engine"`
	// interval to persist data [seconds]
	PersistenceInterval int `json:"persistence_interval"`
}

/*
ModelConfig represents the configuration for a single embedding model.
*/
type ModelConfig struct {
	Word2Vec Word2VecConfig `json:"word2vec"`
	// Additional model-specific settings can be added here
}

/*
Default config
*/
func DefaultConfig() *Config {
	return &Config{
		// server configuration
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
		},
		// storage configuration
		Storage: StorageConfig{
			DataPath:            "./data",
			PersistenceEngine:   true,
			PersistenceInterval: 5,
		},
		// default model configuration
		Models: map[string]ModelConfig{
			"default": {
				Word2Vec: Word2VecConfig{
					Dimensions:    100,
					Window:        2,
					SampleRate:    1e-3,
					Alpha:         0.025,
					Epochs:        5,
					MinCount:      2,
					Approximation: ApproximationNegativeSampling,
					NegativeCount: 1,
				},
			},
		},
		// logging configuration
		LogLevel: "warn",
	}
}

/*
LoadFromFile loads the configuration from a JSON file.
*/
func LoadFromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

/*
LoadFromEnv loads the configuration from the environment variables.
*/
func LoadFromEnv() (*Config, error) {
	config := DefaultConfig()

	// Server config
	if host := os.Getenv("W2V_HOST"); host != "" {
		config.Server.Host = host
	}

	if portStr := os.Getenv("W2V_PORT"); portStr != "" {
		config.Server.Port = portStr
	}

	// Default model config
	defaultModel := config.Models["default"]

	if dimsStr := os.Getenv("W2V_DIMENSIONS"); dimsStr != "" {
		if dims, err := strconv.Atoi(dimsStr); err == nil {
			defaultModel.Word2Vec.Dimensions = dims
		}
	}

	if windowStr := os.Getenv("W2V_WINDOW"); windowStr != "" {
		if window, err := strconv.Atoi(windowStr); err == nil {
			defaultModel.Word2Vec.Window = window
		}
	}

	if sampleStr := os.Getenv("W2V_SAMPLE_RATE"); sampleStr != "" {
		if sample, err := strconv.ParseFloat(sampleStr, 64); err == nil {
			defaultModel.Word2Vec.SampleRate = sample
		}
	}

	if alphaStr := os.Getenv("W2V_ALPHA"); alphaStr != "" {
		if alpha, err := strconv.ParseFloat(alphaStr, 64); err == nil {
			defaultModel.Word2Vec.Alpha = alpha
		}
	}

	if epochsStr := os.Getenv("W2V_EPOCHS"); epochsStr != "" {
		if epochs, err := strconv.Atoi(epochsStr); err == nil {
			defaultModel.Word2Vec.Epochs = epochs
		}
	}

	if minCountStr := os.Getenv("W2V_MIN_COUNT"); minCountStr != "" {
		if minCount, err := strconv.Atoi(minCountStr); err == nil {
			defaultModel.Word2Vec.MinCount = minCount
		}
	}

	if approx := os.Getenv("W2V_APPROXIMATION"); approx != "" {
		defaultModel.Word2Vec.Approximation = ParseApproximation(approx)
	}

	if negStr := os.Getenv("W2V_NEGATIVE_COUNT"); negStr != "" {
		if neg, err := strconv.Atoi(negStr); err == nil {
			defaultModel.Word2Vec.NegativeCount = neg
		}
	}

	config.Models["default"] = defaultModel

	// Storage config
	if dataPath := os.Getenv("W2V_DATA_PATH"); dataPath != "" {
		config.Storage.DataPath = dataPath
	}

	if persistStr := os.Getenv("W2V_PERSISTENCE_ENABLED"); persistStr != "" {
		if persist, err := strconv.ParseBool(persistStr); err == nil {
			config.Storage.PersistenceEngine = persist
		}
	}

	if intervalStr := os.Getenv("W2V_AUTOSAVE_INTERVAL"); intervalStr != "" {
		if interval, err := strconv.Atoi(intervalStr); err == nil {
			config.Storage.PersistenceInterval = interval
		}
	}

	return config, nil
}

/*
Validate checks if the training parameters are within their allowed bounds
*/
func (c *Word2VecConfig) Validate() error {
	if c.Dimensions < 5 {
		return fmt.Errorf("invalid dimensions: %d, must be at least 5", c.Dimensions)
	}
	if c.Window < 1 || c.Window > 5 {
		return fmt.Errorf("invalid window: %d, must be between 1 and 5", c.Window)
	}
	if c.SampleRate < 0 {
		return fmt.Errorf("invalid sample rate: %f, must be non-negative", c.SampleRate)
	}
	if c.Alpha <= 0 {
		return fmt.Errorf("invalid alpha: %f, must be positive", c.Alpha)
	}
	if c.Epochs < 1 {
		return fmt.Errorf("invalid epochs: %d, must be at least 1", c.Epochs)
	}
	if c.MinCount < 1 {
		return fmt.Errorf("invalid min count: %d, must be at least 1", c.MinCount)
	}
	if c.Approximation == ApproximationNegativeSampling && c.NegativeCount < 1 {
		return fmt.Errorf("invalid negative count: %d, must be at least 1", c.NegativeCount)
	}
	return nil
}

/*
Validate checks if the configuration is valid
*/
func (c *Config) Validate() error {
	return c.DefaultModel.Word2Vec.Validate()
}

/*
String returns the string representation of the approximation strategy
*/
func (a Approximation) String() string {
	switch a {
	case ApproximationNegativeSampling:
		return "negative_sampling"
	case ApproximationHierarchicalSoftmax:
		return "hierarchical_softmax"
	default:
		return "unknown"
	}
}

/*
ParseApproximation converts a string to an Approximation
*/
func ParseApproximation(s string) Approximation {
	switch s {
	case "negative_sampling":
		return ApproximationNegativeSampling
	case "hierarchical_softmax":
		return ApproximationHierarchicalSoftmax
	default:
		return ApproximationNegativeSampling
	}
}
