package fsutils

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decoder decodes
type Decoder interface {
	Decode(o interface{}) error
}

var osUserHomeDir = os.UserHomeDir
var osMkdirAll = os.MkdirAll
var osWriteFile = os.WriteFile

// NewYAMLDecoder returns a decoder factory. With knownFields set, mapping
// keys that have no field in the target struct are an error.
func NewYAMLDecoder(knownFields bool) func(r io.Reader) Decoder {
	return func(r io.Reader) Decoder {
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(knownFields)
		return decoder
	}
}

// ReadYAMLFile decodes a YAML document from filePath into o. A missing file
// is not an error unless required; an empty file leaves o untouched.
func ReadYAMLFile(filePath string, required, knownFields bool, o interface{}) (err error) {
	err = ReadFile(filePath, required, o, NewYAMLDecoder(knownFields))
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func ReadFile(filePath string, required bool, o interface{}, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close file %v: %v", filePath, err)
		}
	}()
	decoder := newDecoder(file)
	return decoder.Decode(o)
}

// WriteYAMLFile writes o to filePath, creating parent directories.
func WriteYAMLFile(filePath string, o interface{}) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return err
	}
	if err = osMkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	return osWriteFile(filePath, data, 0o644)
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := osUserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}
