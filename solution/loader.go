package solution

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a solution file.
func Load(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg, err = Parse(data)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	cfg.Path = path
	return
}

// Parse decodes a YAML mapping of solution names to solutions.
func Parse(data []byte) (cfg *Config, err error) {
	solutions := map[string]*Solution{}
	err = yaml.Unmarshal(data, &solutions)
	if err != nil {
		return
	}

	for name, sol := range solutions {
		if sol == nil {
			sol = &Solution{}
			solutions[name] = sol
		}
		sol.Name = name
	}

	cfg = &Config{Solutions: solutions}
	return
}

// ParseTarget splits a 'path[:name1[:name2...]]' command line target.
func ParseTarget(target string) (path string, names []string, err error) {
	parts := strings.Split(target, ":")
	path = parts[0]
	if len(path) == 0 {
		err = ErrTargetSyntax
		return
	}

	for _, name := range parts[1:] {
		if len(name) == 0 {
			err = ErrTargetSyntax
			return
		}
		names = append(names, name)
	}

	return
}
