package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-pbkdf2-hasher/hashing"
)

// loadConfig reads hasher options from a YAML file:
//
//	salt_length: 16
//	iterations: 600000
//	key_length: 32
//	digest: sha256
//
// Omitted keys keep their defaults; unknown keys are an error.
func loadConfig(path string) (hashing.PBKDF2Options, error) {
	var opts hashing.PBKDF2Options

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("could not read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return hashing.PBKDF2Options{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return opts, nil
}
