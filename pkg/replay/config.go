package replay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/peaktrack/pkg/indicator/peakbidask"
)

const DefaultSymbol = "UNKNOWN"

type Config struct {
	Symbol      string `json:"symbol" yaml:"symbol"`
	SamplesFile string `json:"samplesFile" yaml:"samplesFile"`

	// RecomputeEvery is the number of samples between two recomputation ticks.
	RecomputeEvery int `json:"recomputeEvery" yaml:"recomputeEvery"`

	// RoundLength is the number of samples in one round, 0 disables round resets.
	RoundLength int `json:"roundLength" yaml:"roundLength"`

	Tracker peakbidask.Config `json:"tracker" yaml:"tracker"`
}

func (c *Config) Defaults() {
	if len(c.Symbol) == 0 {
		c.Symbol = DefaultSymbol
	}

	if c.RecomputeEvery == 0 {
		c.RecomputeEvery = 1
	}

	c.Tracker.Defaults()
}

func (c *Config) Validate() (err error) {
	if c.RecomputeEvery <= 0 {
		err = multierr.Append(err, fmt.Errorf("recomputeEvery must be positive, got %d", c.RecomputeEvery))
	}

	if c.RoundLength < 0 {
		err = multierr.Append(err, fmt.Errorf("roundLength can not be negative, got %d", c.RoundLength))
	}

	return multierr.Append(err, c.Tracker.Validate())
}

// LoadConfig reads a yaml config file. A relative samplesFile is resolved
// against the directory of the config file.
func LoadConfig(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, errors.Wrapf(err, "unable to parse config file %s", configFile)
	}

	config.Defaults()
	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", configFile)
	}

	if len(config.SamplesFile) > 0 && !filepath.IsAbs(config.SamplesFile) {
		config.SamplesFile = filepath.Join(filepath.Dir(configFile), config.SamplesFile)
	}

	return &config, nil
}
