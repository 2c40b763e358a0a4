package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RomaZinkevich/Hide-n-C/stegano/img"
	"github.com/RomaZinkevich/Hide-n-C/util"
)

/*
 * Limits applied by the interactive session before anything reaches the
 * steganography code.
 */
type LimitsConfig struct {
	MaxPathLength    int      `yaml:"max_path_length"`
	MaxMessageLength int      `yaml:"max_message_length"`
	Extensions       []string `yaml:"extensions"` // accepted destination extensions
}

// how hidden images are written to disk
type OutputConfig struct {
	Format string `yaml:"format"` // "bmp" or "auto"
}

type FullConfig struct {
	Limits LimitsConfig    `yaml:"limits"`
	Output OutputConfig    `yaml:"output"`
	Logger util.LoggerInfo `yaml:"logger_config"`
	Debug  bool            `yaml:"debug"`
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		Limits: LimitsConfig{
			MaxPathLength:    99,
			MaxMessageLength: 169,
			Extensions:       []string{"png", "jpg", "bmp"},
		},
		Output: OutputConfig{
			Format: img.OutputBMP,
		},
		Logger: util.LoggerInfo{
			Filename:  "",
			IsColored: true,
			SaveTime:  false,
			Mode:      util.Error | util.Warning,
		},
	}
}

func (c *FullConfig) Validate() error {
	if c.Limits.MaxPathLength < 1 {
		return fmt.Errorf("max_path_length must be positive, got %d", c.Limits.MaxPathLength)
	}
	if c.Limits.MaxMessageLength < 1 || c.Limits.MaxMessageLength > img.MaxMessageLength {
		return fmt.Errorf("max_message_length must be in [1, %d], got %d",
			img.MaxMessageLength, c.Limits.MaxMessageLength)
	}
	if len(c.Limits.Extensions) == 0 {
		return fmt.Errorf("At least one destination extension is required")
	}
	if c.Output.Format != img.OutputBMP && c.Output.Format != img.OutputAuto {
		return fmt.Errorf("Unknown output format %q", c.Output.Format)
	}
	return nil
}

/*
 * Functions for loading and saving configuration in YAML format.
 * Keys missing from the file keep their default values.
 */
func LoadConfig(filename string) (*FullConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	conf := DefaultConfig()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return conf, nil
}

func SaveConfig(filename string, c *FullConfig) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0600)
}
