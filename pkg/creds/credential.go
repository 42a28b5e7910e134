// Package creds loads credentials from literal values, files or the environment
package creds

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const (
	executableBits = 0o111
)

// Credential is a structure to configure a credential.
// Credentials can be passed as a string, read from a file or an environment
// variable, and can be base64 encoded. When the configured file is executable
// it is run and its output is used as the credential.
type Credential struct {
	Value  string `yaml:"value"`
	File   string `yaml:"file"`
	Env    string `yaml:"env"`
	Base64 bool   `yaml:"base64"`
}

// IsSet returns true when any credential source is configured
func (c Credential) IsSet() bool {
	return c.Value != "" || c.File != "" || c.Env != ""
}

func isExecutable(filename string) (isExecutable bool, err error) {
	fi, err := os.Lstat(filename)
	if err != nil {
		return false, err
	}
	mode := fi.Mode()
	return mode&executableBits == executableBits, nil
}

func fromExecutable(filename string) (value string, err error) {
	// Running a command set as a parameter is the point here: it allows a 3rd
	// party tool (e.g. a secret manager client) to produce the credential.
	// #nosec
	out, err := exec.Command(filename).Output()
	if err != nil {
		return "", fmt.Errorf("credential command %s failed: %w", filename, err)
	}
	return string(out), nil
}

func fromFile(filename string) (value string, err error) {
	isExec, err := isExecutable(filename)
	if err != nil {
		return "", err
	}
	if isExec {
		return fromExecutable(filename)
	}
	// Reading a file which name is set by a variable is the point here.
	// #nosec
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetCred resolves the configured source and returns the plain credential value (or an error)
func (c *Credential) GetCred() (string, error) {
	var err error
	if !c.IsSet() {
		return "", errors.New("either value, file or env must be set in a credential")
	}
	if c.Value == "" && c.File != "" {
		if c.Value, err = fromFile(c.File); err != nil {
			return "", err
		}
	}
	if c.Value == "" && c.Env != "" {
		c.Value = os.Getenv(c.Env)
	}
	if c.Value == "" {
		return "", errors.New("credential source is empty")
	}
	if c.Base64 {
		data, err := base64.StdEncoding.DecodeString(c.Value)
		if err != nil {
			return "", err
		}
		c.Value = string(data)
		c.Base64 = false
		if c.Value == "" {
			return "", errors.New("empty credential after base64 decoding")
		}
	}
	return c.Value, nil
}
