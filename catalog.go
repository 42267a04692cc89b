package rtfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Catalog is a table of format strings keyed by message name, such as a
// translation table. Every message is syntax-checked when the catalog is
// loaded. A Catalog is safe for concurrent use once loaded.
type Catalog struct {
	messages map[string]string
}

type catalogFile struct {
	Messages map[string]string `yaml:"messages"`
}

// LoadCatalog reads a YAML catalog of the form
//
//	messages:
//	  greeting: "Hello, {name}!"
//	  count: "{0} of {1:>4}"
//
// An empty document is an empty catalog. Unknown top-level keys are an
// error.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
	}
	return NewCatalog(f.Messages)
}

// ParseCatalog calls [LoadCatalog] on data.
func ParseCatalog(data []byte) (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(data))
}

// NewCatalog builds a catalog from messages, validating each one. The map
// is copied.
func NewCatalog(messages map[string]string) (*Catalog, error) {
	c := &Catalog{messages: maps.Clone(messages)}
	if c.messages == nil {
		c.messages = map[string]string{}
	}
	for _, key := range c.Keys() {
		if err := Validate(c.messages[key]); err != nil {
			return nil, fmt.Errorf("%w: message %q: %w", ErrInvalidCatalog, key, err)
		}
	}
	return c, nil
}

// Keys returns the message names in sorted order.
func (c *Catalog) Keys() []string {
	return slices.Sorted(maps.Keys(c.messages))
}

// Lookup returns the format string for key.
func (c *Catalog) Lookup(key string) (string, bool) {
	s, ok := c.messages[key]
	return s, ok
}

// WriteYAML writes c in the form read by [LoadCatalog].
func (c *Catalog) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(catalogFile{Messages: c.messages}); err != nil {
		return err
	}
	return enc.Close()
}

// FormatMessage renders the message named key.
func FormatMessage[V Value](c *Catalog, key string, positional []V, named Map[V]) (string, error) {
	format, ok := c.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMessage, key)
	}
	return Format(format, positional, named)
}
