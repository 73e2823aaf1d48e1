package peakbidask

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/c9s/peaktrack/pkg/indicator/trailing"
)

type Config struct {
	SamplingLength   int `json:"samplingLength" yaml:"samplingLength"`
	ProcessingLength int `json:"processingLength" yaml:"processingLength"`
}

func (c *Config) Defaults() {
	if c.SamplingLength == 0 {
		c.SamplingLength = trailing.DefaultSamplingLength
	}

	if c.ProcessingLength == 0 {
		c.ProcessingLength = trailing.DefaultProcessingLength
	}
}

func (c *Config) Validate() (err error) {
	if c.SamplingLength <= 0 {
		err = multierr.Append(err, fmt.Errorf("samplingLength must be positive, got %d", c.SamplingLength))
	}

	if c.ProcessingLength <= 0 {
		err = multierr.Append(err, fmt.Errorf("processingLength must be positive, got %d", c.ProcessingLength))
	}

	return err
}
