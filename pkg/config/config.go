package config

import (
	"errors"
)

// DefaultPath is where the definitions file is looked up when no path is
// given, relative to the working directory.
const DefaultPath = "public/data/simplified/definitions.json"

type Config struct {
	// Path is the location of the definitions file.
	Path string
}

func Default() Config {
	return Config{Path: DefaultPath}
}

func (c Config) Validate() error {
	if c.Path == "" {
		return errors.New("definitions path is empty")
	}

	return nil
}
