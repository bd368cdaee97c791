package config

import (
	"bytes"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/rangepicker/pkg/errors"
)

// Load reads the YAML file at path into a new T. Unknown keys are errors.
func Load[T any](path string) (*T, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", abs)
	}

	return Parse[T](data)
}

func Parse[T any](data []byte) (*T, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg T
	err := dec.Decode(&cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	return &cfg, nil
}
