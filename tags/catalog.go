package tags

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps tag names to specs.
type Catalog map[string]Spec

// Parse looks up name and parses raw with its spec.
func (c Catalog) Parse(name, raw string) (Value, error) {
	spec, ok := c[name]
	if !ok {
		return Value{}, fmt.Errorf("%q: %w", name, ErrUnknownTag)
	}
	v, err := spec.Parse(raw)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", name, err)
	}

	return v, nil
}

// Merge returns a new catalog holding c and extra. Names present in both
// are rejected.
func (c Catalog) Merge(extra Catalog) (Catalog, error) {
	out := make(Catalog, len(c)+len(extra))
	for name, spec := range c {
		out[name] = spec
	}
	for name, spec := range extra {
		if _, ok := out[name]; ok {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateTag)
		}
		out[name] = spec
	}

	return out, nil
}

// LoadCatalog decodes a YAML catalog from r.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if err == io.EOF {
			return Catalog{}, nil
		}
		return nil, fmt.Errorf("tags: decode catalog: %w", err)
	}

	return c, nil
}

// specDoc is the mapping form {kind, min, choices}.
type specDoc struct {
	Kind    string   `yaml:"kind"`
	Min     string   `yaml:"min"`
	Choices []string `yaml:"choices"`
}

// UnmarshalYAML selects the variant from the node shape.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		k, err := ParseKind(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*s = Spec{Kind: k}
		return nil

	case yaml.SequenceNode:
		var allowed []string
		if err := node.Decode(&allowed); err != nil {
			return err
		}
		*s = Choice(allowed...)
		return nil

	case yaml.MappingNode:
		var doc specDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		if len(doc.Choices) > 0 {
			*s = Choice(doc.Choices...)
			return nil
		}
		k, err := ParseKind(doc.Kind)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		c, err := parseConstraint(doc.Min)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*s = Spec{Kind: k, Constraint: c}
		return nil
	}

	return fmt.Errorf("line %d: unsupported node: %w", node.Line, ErrUnknownKind)
}

func parseConstraint(name string) (Constraint, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Unbounded, nil
	case "positive":
		return Positive, nil
	case "non_negative", "nonnegative":
		return NonNegative, nil
	}

	return 0, fmt.Errorf("min %q: %w", name, ErrUnknownKind)
}
