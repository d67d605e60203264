package codec

import (
	"errors"
	"fmt"

	"github.com/turboMaCk/any-dict/dict"
	"github.com/turboMaCk/any-dict/logger"
	"github.com/turboMaCk/any-dict/sortable"
	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a YAML node is not a mapping.
var ErrNotMapping = errors.New("expected a YAML mapping")

// EncodeYAMLObject renders d as a YAML mapping node with entries in ascending
// sort-key order. The node can be passed to yaml.Marshal or embedded in a
// larger document.
func EncodeYAMLObject[K any, C sortable.Sortable[C], V any](
	d *dict.Dict[K, C, V],
	keyText func(K) string,
	value func(V) (*yaml.Node, error),
) (*yaml.Node, error) {
	node := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for k, v := range d.Seq() {
		valueNode, err := value(v)
		if err != nil {
			return nil, logger.Annotate(fmt.Errorf("encoding value: %w", err),
				"key", keyText(k))
		}

		node.Content = append(node.Content,
			&yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: keyText(k),
			},
			valueNode,
		)
	}

	return node, nil
}

// DecodeYAMLObject parses a YAML mapping node into a dictionary built over
// project, with the same contracts as DecodeObject: entries in document
// order, fail-fast, value handed to the key parser, later entries overwrite
// earlier ones sharing a sort key. Document nodes are unwrapped.
func DecodeYAMLObject[K any, C sortable.Sortable[C], V any](
	node *yaml.Node,
	project func(K) C,
	keyFromText func(string, V) (K, error),
	value func(*yaml.Node) (V, error),
) (*dict.Dict[K, C, V], error) {
	if node != nil && node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node == nil || node.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	out := dict.New[K, C, V](project)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var (
			keyNode   = node.Content[i]
			valueNode = node.Content[i+1]
			index     = i / 2
		)

		if keyNode.Kind != yaml.ScalarNode {
			return nil, logger.Annotate(ErrNotMapping,
				"index", index, "line", keyNode.Line)
		}

		v, err := value(valueNode)
		if err != nil {
			return nil, logger.Annotate(fmt.Errorf("decoding value: %w", err),
				"key", keyNode.Value, "index", index, "line", valueNode.Line)
		}

		k, err := keyFromText(keyNode.Value, v)
		if err != nil {
			return nil, logger.Annotate(fmt.Errorf("decoding key: %w", err),
				"key", keyNode.Value, "index", index, "line", keyNode.Line)
		}

		out.Add(k, v)
	}

	return out, nil
}
