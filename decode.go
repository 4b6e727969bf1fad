// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the input markup of a document.
type Format string

const (
	// FormatAuto tries JSON first and falls back to YAML.
	FormatAuto Format = "auto"
	// FormatJSON decodes strict JSON only.
	FormatJSON Format = "json"
	// FormatYAML decodes YAML only.
	FormatYAML Format = "yaml"
)

// defaultMaxDepth bounds container nesting when no explicit limit is set.
const defaultMaxDepth = 1000

// decodeConfig is the resolved decoder configuration.
type decodeConfig struct {
	format   Format
	maxDepth int
}

// DecodeOption adjusts document decoding.
type DecodeOption func(*decodeConfig) error

// WithFormat pins the input format instead of auto-detection.
func WithFormat(format Format) DecodeOption {
	return func(cfg *decodeConfig) error {
		normalized, err := normalizeFormat(format)
		if err != nil {
			return err
		}

		cfg.format = normalized
		return nil
	}
}

// WithMaxDepth bounds container nesting; n must be positive.
func WithMaxDepth(n int) DecodeOption {
	return func(cfg *decodeConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: max depth must be positive, got %d", ErrOptionValue, n)
		}

		cfg.maxDepth = n
		return nil
	}
}

// Decode parses one JSON or YAML document into a Value, preserving
// member order and the textual spelling of numbers.
func Decode(data []byte, opts ...DecodeOption) (Value, error) {
	cfg := decodeConfig{format: FormatAuto, maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	switch cfg.format {
	case FormatJSON:
		return decodeJSON(data, cfg.maxDepth)
	case FormatYAML:
		return decodeYAML(data, cfg.maxDepth)
	default:
		value, jsonErr := decodeJSON(data, cfg.maxDepth)
		if jsonErr == nil {
			return value, nil
		}

		if value, yamlErr := decodeYAML(data, cfg.maxDepth); yamlErr == nil {
			return value, nil
		}

		return nil, jsonErr
	}
}

// normalizeFormat validates a format name and defaults empty to auto.
func normalizeFormat(format Format) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(string(format))))
	if normalized == "" {
		return FormatAuto, nil
	}

	switch normalized {
	case FormatAuto, FormatJSON, FormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, string(format))
	}
}

// decodeJSON parses strict JSON through the token stream, which keeps
// object member order where unmarshalling into a map would lose it.
func decodeJSON(data []byte, maxDepth int) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := decodeJSONValue(decoder, maxDepth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeDocument, err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrDecodeDocument, ErrTrailingData)
	}

	return value, nil
}

// decodeJSONValue reads one complete value from the token stream.
func decodeJSONValue(decoder *json.Decoder, remaining int) (Value, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	switch t := token.(type) {
	case json.Delim:
		if remaining <= 0 {
			return nil, ErrMaxDepthExceeded
		}

		switch t {
		case '{':
			return decodeJSONObject(decoder, remaining-1)
		case '[':
			return decodeJSONArray(decoder, remaining-1)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", token)
	}
}

// decodeJSONObject reads members until the closing brace.
func decodeJSONObject(decoder *json.Decoder, remaining int) (Value, error) {
	object := Object{}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyToken)
		}

		value, err := decodeJSONValue(decoder, remaining)
		if err != nil {
			return nil, err
		}

		object = appendMember(object, key, value)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return object, nil
}

// decodeJSONArray reads items until the closing bracket.
func decodeJSONArray(decoder *json.Decoder, remaining int) (Value, error) {
	array := Array{}
	for decoder.More() {
		value, err := decodeJSONValue(decoder, remaining)
		if err != nil {
			return nil, err
		}

		array = append(array, value)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return array, nil
}

// decodeYAML parses one YAML document through the node tree, which
// keeps mapping order.
func decodeYAML(data []byte, maxDepth int) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeDocument, err)
	}

	value, err := decodeYAMLNode(&root, maxDepth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeDocument, err)
	}

	return value, nil
}

// decodeYAMLNode converts one yaml node by kind and tag.
func decodeYAMLNode(node *yaml.Node, remaining int) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, errors.New("empty document")
		}

		return decodeYAMLNode(node.Content[0], remaining)
	case yaml.AliasNode:
		return decodeYAMLNode(node.Alias, remaining)
	case yaml.MappingNode:
		if remaining <= 0 {
			return nil, ErrMaxDepthExceeded
		}

		object := Object{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := decodeYAMLNode(node.Content[i+1], remaining-1)
			if err != nil {
				return nil, err
			}

			object = appendMember(object, node.Content[i].Value, value)
		}

		return object, nil
	case yaml.SequenceNode:
		if remaining <= 0 {
			return nil, ErrMaxDepthExceeded
		}

		array := make(Array, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := decodeYAMLNode(item, remaining-1)
			if err != nil {
				return nil, err
			}

			array = append(array, value)
		}

		return array, nil
	case yaml.ScalarNode:
		return decodeYAMLScalar(node), nil
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d", node.Kind)
	}
}

// decodeYAMLScalar maps a scalar node by resolved tag, keeping the
// original scalar text for numbers.
func decodeYAMLScalar(node *yaml.Node) Value {
	switch node.Tag {
	case "!!null":
		return Null{}
	case "!!bool":
		parsed, err := strconv.ParseBool(strings.ToLower(node.Value))
		if err != nil {
			return String(node.Value)
		}

		return Bool(parsed)
	case "!!int", "!!float":
		return Number(node.Value)
	default:
		return String(node.Value)
	}
}

// appendMember inserts a member, keeping the first position of a
// repeated key and its latest value.
func appendMember(object Object, key string, value Value) Object {
	for i := range object {
		if object[i].Key == key {
			object[i].Value = value
			return object
		}
	}

	return append(object, Member{Key: key, Value: value})
}
