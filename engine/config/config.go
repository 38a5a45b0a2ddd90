package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pingcap-incubator/tinybase/engine/util/scratch"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Config holds the settings of the transaction ordering subsystem.
type Config struct {
	// OrderRecheck re-validates every write set right after it is sorted. Use in
	// tests and debug deployments.
	OrderRecheck bool `toml:"order-recheck" json:"order-recheck"`

	// ScratchBufSize is the capacity of newly allocated scratch key buffers. Zero
	// picks the built-in default.
	ScratchBufSize int `toml:"scratch-buf-size" json:"scratch-buf-size"`

	// Log related config.
	Log log.Config `toml:"log" json:"log"`
}

func getLogLevel() (logLevel string) {
	logLevel = "info"
	if l := os.Getenv("LOG_LEVEL"); len(l) != 0 {
		logLevel = l
	}
	return
}

// NewDefaultConfig returns the subsystem defaults: order re-checking off, default
// scratch sizing, log level from the LOG_LEVEL environment variable.
func NewDefaultConfig() *Config {
	return &Config{
		OrderRecheck:   false,
		ScratchBufSize: scratch.DefaultBufSize,
		Log:            log.Config{Level: getLogLevel()},
	}
}

// FromFile loads config from a toml file on top of the current values.
func (c *Config) FromFile(path string) error {
	_, err := toml.DecodeFile(path, c)
	return errors.WithStack(err)
}

func (c *Config) Validate() error {
	if c.ScratchBufSize < 0 {
		return errors.Errorf("scratch-buf-size must not be negative, got %d", c.ScratchBufSize)
	}

	if c.ScratchBufSize > 0 && c.ScratchBufSize < 16 {
		log.Warn("scratch buffers are smaller than a typical row key, every borrow will reallocate",
			zap.Int("scratch-buf-size", c.ScratchBufSize))
	}

	return nil
}
