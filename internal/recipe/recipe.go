// Package recipe reads chain recipes: YAML documents naming the operations
// of a builder chain in order, so that patterns can be built without Go
// code.
//
// A recipe looks like this:
//
//	flags: gi
//	steps:
//	  - op: between
//	    args: [2, 4]
//	  - op: digit
//	  - op: then
//	    args: ["-"]
//	  - op: then
//	  - op: oneOrMore
//	  - op: alphaNumeric
//
// It builds /\d{2,4}-\w+/gi. A then step without arguments opens the next
// token. Arguments are scalars (strings, integers, null for an unset bound,
// .inf for an unbounded one) or nested fragments written as {steps: [...]},
// which are built on their own and spliced in unescaped. A fragment may not
// end with a pending quantifier or negation.
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/coregx/rebuild"
	"github.com/coregx/rebuild/engine"
)

// Recipe is a chain recipe.
type Recipe struct {
	Flags string `yaml:"flags" validate:"regexflags"`
	Steps []Step `yaml:"steps" validate:"required,min=1,dive"`
}

// Step is one operation of a chain.
type Step struct {
	Op   string `yaml:"op" validate:"required"`
	Args []Arg  `yaml:"args" validate:"dive"`
}

// UnmarshalYAML implements yaml.Unmarshaler. It decodes every argument
// itself so that null arguments keep their position.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: step must be a mapping", node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		switch key := node.Content[i].Value; key {
		case "op", "args":
		default:
			return fmt.Errorf("line %d: field %s not found in type recipe.Step", node.Content[i].Line, key)
		}
	}

	var raw struct {
		Op   string      `yaml:"op"`
		Args []yaml.Node `yaml:"args"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	s.Op = raw.Op
	s.Args = make([]Arg, len(raw.Args))
	for i := range raw.Args {
		if err := s.Args[i].UnmarshalYAML(&raw.Args[i]); err != nil {
			return err
		}
	}
	return nil
}

// Fragment is a nested chain used as an argument. It carries no flags.
type Fragment struct {
	Steps []Step `yaml:"steps" validate:"required,min=1,dive"`
}

// Arg is a step argument: either a scalar Value or a Fragment.
type Arg struct {
	Value    any
	Fragment *Fragment
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Arg) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return a.scalar(node)
	case yaml.MappingNode:
		for i := 0; i < len(node.Content); i += 2 {
			if key := node.Content[i].Value; key != "steps" {
				return fmt.Errorf("line %d: field %s not allowed in a fragment", node.Line, key)
			}
		}
		var f Fragment
		if err := node.Decode(&f); err != nil {
			return err
		}
		a.Fragment = &f
		return nil
	default:
		return fmt.Errorf("line %d: argument must be a scalar or a fragment", node.Line)
	}
}

func (a *Arg) scalar(node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!null":
		a.Value = nil
		return nil
	case "!!int":
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		a.Value = n
		return nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		a.Value = f
		return nil
	case "!!str":
		a.Value = node.Value
		return nil
	default:
		return fmt.Errorf("line %d: unsupported argument %q", node.Line, node.Value)
	}
}

// Parse decodes and validates a recipe.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("recipe: %w", err)
	}
	if err := Validate(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Load reads the recipe stored at path. Files ending in .json or .jsonc are
// read as JSON, which may carry comments and trailing commas.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}
	return Parse(data)
}

// Expand resolves glob patterns such as recipes/**/*.yaml to the files
// they match, keeping plain paths and "-" as given. A pattern that matches
// nothing is an error.
func Expand(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if pattern == "-" || !strings.ContainsAny(pattern, "*?[{") {
			paths = append(paths, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("recipe: %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("recipe: %s: no matching files", pattern)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// Read reads a recipe from r.
func Read(r io.Reader) (*Recipe, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Open reads the recipe at path, or from stdin when path is "-".
func Open(path string, stdin io.Reader) (*Recipe, error) {
	if path == "-" {
		return Read(stdin)
	}
	return Load(path)
}

// Build applies the steps in order and returns the final chain value.
//
// The chain starts at a flag collector carrying the recipe flags. A first
// step that the collector does not offer implicitly opens a token, so
// recipes may start with quantifiers or tokens directly.
func (r *Recipe) Build() (rebuild.Context, error) {
	return run(rebuild.WithFlags(r.Flags), r.Steps, "steps")
}

// Compile builds the recipe and returns its pattern. The chain must end
// after a complete atom or inside a character class.
func (r *Recipe) Compile(config engine.Config) (*rebuild.Pattern, error) {
	c, err := r.Build()
	if err != nil {
		return nil, err
	}
	switch c.Kind() {
	case rebuild.KindSequence, rebuild.KindClass:
		return rebuild.PatternWithConfig(c, config), nil
	default:
		return nil, &IncompleteError{Kind: c.Kind()}
	}
}

func run(c rebuild.Context, steps []Step, path string) (rebuild.Context, error) {
	for i, step := range steps {
		at := fmt.Sprintf("%s[%d]", path, i)

		if f, ok := c.(rebuild.Flagger); ok && !offers(c, step.Op) {
			c = f.Matching()
		}

		args := make([]any, len(step.Args))
		for j, arg := range step.Args {
			if arg.Fragment == nil {
				args[j] = arg.Value
				continue
			}
			frag, err := run(rebuild.WithFlags(""), arg.Fragment.Steps, fmt.Sprintf("%s.args[%d].steps", at, j))
			if err != nil {
				return nil, err
			}
			if pending(frag.Kind()) {
				return nil, &StepError{Path: at, Op: step.Op, Err: &IncompleteError{Kind: frag.Kind()}}
			}
			args[j] = frag
		}

		next, err := rebuild.Apply(c, step.Op, args...)
		if err != nil {
			return nil, &StepError{Path: at, Op: step.Op, Err: err}
		}
		c = next
	}
	return c, nil
}

// pending reports whether a chain value of kind k holds a quantifier or
// negation that splicing its source would lose.
func pending(k rebuild.Kind) bool {
	switch k {
	case rebuild.KindQuantified, rebuild.KindLazy, rebuild.KindNegated,
		rebuild.KindNegatedQuantified, rebuild.KindNegatedClass:
		return true
	}
	return false
}

func offers(c rebuild.Context, op string) bool {
	for _, name := range rebuild.Legal(c) {
		if name == op {
			return true
		}
	}
	return false
}
