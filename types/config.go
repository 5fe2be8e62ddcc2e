package types

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
	"teinei.dev/flip/utils"
)

const (
	AnalyzerModeNormal   = "normal"
	AnalyzerModeSearch   = "search"
	AnalyzerModeExtended = "extended"
)

var (
	// errors
	WrongAnalyzerModeError = errors.New("configuration: wrong analyzer mode")
	WrongDirectionError    = errors.New("configuration: wrong direction")
)

type AnalyzerConfig struct {
	Mode           string `yaml:"mode" json:"mode"`
	UserDictionary string `yaml:"user_dictionary" json:"user_dictionary"`
}

type PipelineConfig struct {
	Direction       Direction `yaml:"direction" json:"direction"`
	CacheTTLSeconds int       `yaml:"cache_ttl_seconds" json:"cache_ttl_seconds"`
}

type Configuration struct {
	Name     string         `json:"name"`
	FilePath string         `json:"file_path"`
	Analyzer AnalyzerConfig `yaml:"analyzer" json:"analyzer"`
	Pipeline PipelineConfig `yaml:"pipeline" json:"pipeline"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Name:     "default",
		Analyzer: AnalyzerConfig{Mode: AnalyzerModeNormal},
		Pipeline: PipelineConfig{Direction: DirectionToggle},
	}
}

// GetHashCode identifies the analyzer setup; results produced under different
// analyzer settings must not share cache entries.
func (cfg Configuration) GetHashCode() uint64 {
	key := fmt.Sprintf("%s|%s", strings.ToLower(cfg.Analyzer.Mode), cfg.Analyzer.UserDictionary)
	return utils.HashString(key)
}

func (cfg Configuration) Validate() error {
	switch cfg.Analyzer.Mode {
	case AnalyzerModeNormal, AnalyzerModeSearch, AnalyzerModeExtended:
	default:
		return fmt.Errorf("%w: %q", WrongAnalyzerModeError, cfg.Analyzer.Mode)
	}
	if !cfg.Pipeline.Direction.IsValid() {
		return fmt.Errorf("%w: %q", WrongDirectionError, cfg.Pipeline.Direction)
	}
	return nil
}

// LoadConfiguration reads a yaml configuration; missing fields keep their defaults.
func LoadConfiguration(filePath string) (Configuration, error) {
	cfg := DefaultConfiguration()
	cfg.FilePath = filePath
	cfg.Name = strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

	buf, err := os.ReadFile(filePath)
	if err != nil {
		return Configuration{}, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Configuration{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}
