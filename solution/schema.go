package solution

import (
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/hrm/cpu"
)

// Config is a set of named solutions, as loaded from one file.
type Config struct {
	Path      string
	Solutions map[string]*Solution
}

// Solution is a puzzle solution with its test data.
type Solution struct {
	Name string `yaml:"-"`

	Inbox  *string `yaml:"inbox"`  // Whitespace separated input tokens.
	Outbox *string `yaml:"outbox"` // Whitespace separated expected output tokens.
	Code   Code    `yaml:"code"`

	Registers int               `yaml:"registers,omitempty"` // Register count; cpu.REGISTER_COUNT if zero.
	Floor     map[int]string    `yaml:"floor,omitempty"`     // Preset register values.
	Defines   map[string]string `yaml:"defines,omitempty"`   // Compile-time names.
	MaxSteps  int               `yaml:"max_steps,omitempty"` // Step limit; the runner's limit if zero.
}

// Code is the ordered list of labeled blocks of a solution.
type Code []cpu.CodeBlock

// UnmarshalYAML decodes a mapping of labels to lines, keeping the order of the labels.
// A block may be a list of lines, a single multi-line string, or empty.
func (code *Code) UnmarshalYAML(node *yaml.Node) (err error) {
	if node.Kind != yaml.MappingNode {
		err = ErrCodeSyntax
		return
	}

	blocks := Code{}
	for n := 0; n+1 < len(node.Content); n += 2 {
		key := node.Content[n]
		value := node.Content[n+1]

		block := cpu.CodeBlock{Label: key.Value}
		switch {
		case value.ShortTag() == "!!null":
		case value.Kind == yaml.ScalarNode:
			block.Lines = strings.Split(strings.TrimRight(value.Value, "\n"), "\n")
		case value.Kind == yaml.SequenceNode:
			err = value.Decode(&block.Lines)
			if err != nil {
				return
			}
		default:
			err = ErrCodeSyntax
			return
		}

		blocks = append(blocks, block)
	}

	*code = blocks
	return
}

// Names returns the solution names in sorted order.
func (cfg *Config) Names() []string {
	names := make([]string, 0, len(cfg.Solutions))
	for name := range cfg.Solutions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get finds a solution by name.
func (cfg *Config) Get(name string) (sol *Solution, err error) {
	sol, ok := cfg.Solutions[name]
	if !ok || sol == nil {
		err = ErrNotFound(name)
		return
	}
	return
}

// Validate checks that the required fields are present.
func (sol *Solution) Validate() (err error) {
	switch {
	case sol.Inbox == nil:
		err = ErrIncomplete{Name: sol.Name, Field: "inbox"}
	case sol.Outbox == nil:
		err = ErrIncomplete{Name: sol.Name, Field: "outbox"}
	case sol.Code == nil:
		err = ErrIncomplete{Name: sol.Name, Field: "code"}
	}
	return
}

// InboxTokens returns the input tokens.
func (sol *Solution) InboxTokens() []string {
	if sol.Inbox == nil {
		return nil
	}
	return strings.Fields(*sol.Inbox)
}

// OutboxTokens returns the expected output tokens.
func (sol *Solution) OutboxTokens() []string {
	if sol.Outbox == nil {
		return nil
	}
	return strings.Fields(*sol.Outbox)
}
