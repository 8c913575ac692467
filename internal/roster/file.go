package roster

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileRoster struct {
	Users []string `yaml:"users"`
}

// FileSource reads a YAML document of the form:
//
//	users:
//	  - alice
//	  - bob
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return "file " + s.Path
}

func (s FileSource) Usernames(context.Context) ([]string, error) {
	if s.Path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var parsed fileRoster
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}
	return parsed.Users, nil
}
