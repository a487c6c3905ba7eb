// Package chstate persists the arguments bundle of a chooser so the dialog
// can be rebuilt after the process restarts.
package chstate

import (
	"bytes"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/filetug/filechooser/pkg/chooser"
	"github.com/filetug/filechooser/pkg/fsutils"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	AppDirName        = "filechooser"
	argumentsFileName = "arguments.yaml"
)

// ErrNoSavedArguments is returned by Load when nothing was saved yet.
var ErrNoSavedArguments = errors.New("no saved chooser arguments")

var validate = validator.New(validator.WithRequiredStructEnabled())

var stateFilePath = func() string {
	return filepath.Join(xdg.StateHome, AppDirName, argumentsFileName)
}

var readYAML = fsutils.ReadYAMLFile
var writeYAML = fsutils.WriteYAMLFile

// newDecoder rejects fields that chooser.Config does not have.
var newDecoder = fsutils.NewYAMLDecoder(true)

// FilePath returns where Save writes the bundle.
func FilePath() string {
	return stateFilePath()
}

// Marshal encodes cfg as a YAML bundle.
func Marshal(cfg chooser.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	return data, errors.WithStack(err)
}

// Unmarshal decodes and validates a YAML bundle.
func Unmarshal(data []byte) (chooser.Config, error) {
	var cfg chooser.Config
	if err := newDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
		return chooser.Config{}, errors.Wrap(err, "failed to decode chooser arguments")
	}
	if err := Validate(cfg); err != nil {
		return chooser.Config{}, err
	}
	return cfg, nil
}

// Validate checks a config that did not come from a chooser.Builder.
func Validate(cfg chooser.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid chooser arguments")
	}
	return nil
}

// Save writes cfg to FilePath().
func Save(cfg chooser.Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	if err := writeYAML(stateFilePath(), cfg); err != nil {
		return errors.Wrap(err, "failed to save chooser arguments")
	}
	return nil
}

// Load reads the bundle written by Save.
func Load() (chooser.Config, error) {
	var cfg chooser.Config
	filePath := stateFilePath()
	if err := readYAML(filePath, false, true, &cfg); err != nil {
		return chooser.Config{}, errors.Wrapf(err, "failed to read %s", filePath)
	}
	if cfg.Mode == "" {
		return chooser.Config{}, ErrNoSavedArguments
	}
	if err := Validate(cfg); err != nil {
		return chooser.Config{}, err
	}
	return cfg, nil
}
