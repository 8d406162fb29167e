package judge

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ErrNoCases is returned when a case file defines no cases
var ErrNoCases = errors.New("no cases defined")

// Case is a single input with its expected output
type Case struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadCases reads cases from a YAML file
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	cases, err := ParseCases(data)
	if err != nil {
		return nil, fmt.Errorf("invalid case file %s: %w", path, err)
	}
	return cases, nil
}

// ParseCases decodes YAML of the form:
//
//	cases:
//	  - name: sample
//	    input: "5 2 1 2 4 3"
//	    output: "4 2 4 -1 -1"
//
// Unnamed cases are named by their one-based position.
func ParseCases(data []byte) ([]Case, error) {
	var file caseFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode cases: %w", err)
	}
	if len(file.Cases) == 0 {
		return nil, ErrNoCases
	}

	for i := range file.Cases {
		if file.Cases[i].Name == "" {
			file.Cases[i].Name = fmt.Sprintf("case-%d", i+1)
		}
	}

	return file.Cases, nil
}
