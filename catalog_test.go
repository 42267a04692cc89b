package rtfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/rtfmt"
)

const catalogYAML = `
messages:
  greeting: "Hello, {name}!"
  progress: "{0} of {1:>4}"
  braces: "{{literal}}"
`

func TestLoadCatalog(t *testing.T) {
	t.Parallel()
	c, err := rtfmt.LoadCatalog(strings.NewReader(catalogYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"braces", "greeting", "progress"}, c.Keys())

	s, ok := c.Lookup("greeting")
	assert.True(t, ok)
	assert.Equal(t, "Hello, {name}!", s)
	_, ok = c.Lookup("farewell")
	assert.False(t, ok)
}

func TestFormatMessage(t *testing.T) {
	t.Parallel()
	c, err := rtfmt.ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)

	tests := map[string]struct {
		key        string
		positional []rtfmt.Dynamic
		named      rtfmt.Map[rtfmt.Dynamic]
		want       string
	}{
		"named":      {key: "greeting", named: rtfmt.DynamicMap(map[string]any{"name": "Ada"}), want: "Hello, Ada!"},
		"positional": {key: "progress", positional: rtfmt.Dynamics(3, 10), want: "3 of   10"},
		"escapes":    {key: "braces", want: "{literal}"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := rtfmt.FormatMessage(c, tt.key, tt.positional, tt.named)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMessageErrors(t *testing.T) {
	t.Parallel()
	c, err := rtfmt.ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)

	_, err = rtfmt.FormatMessage[rtfmt.Dynamic](c, "farewell", nil, nil)
	assert.ErrorIs(t, err, rtfmt.ErrUnknownMessage)

	_, err = rtfmt.FormatMessage[rtfmt.Dynamic](c, "greeting", nil, nil)
	requireOffset(t, err, 7, rtfmt.ErrMissingArgument)
}

func TestLoadCatalogInvalidMessage(t *testing.T) {
	t.Parallel()
	_, err := rtfmt.ParseCatalog([]byte("messages:\n  ok: \"{}\"\n  bad: \"foo {:Z}\"\n"))
	require.ErrorIs(t, err, rtfmt.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), `message "bad"`)
	requireOffset(t, err, 4, rtfmt.ErrBadSpecifier)
}

func TestLoadCatalogBadYAML(t *testing.T) {
	t.Parallel()
	_, err := rtfmt.ParseCatalog([]byte("messages: [unterminated"))
	assert.ErrorIs(t, err, rtfmt.ErrInvalidCatalog)

	_, err = rtfmt.ParseCatalog([]byte("messages:\n  nested:\n    a: b\n"))
	assert.ErrorIs(t, err, rtfmt.ErrInvalidCatalog)

	_, err = rtfmt.ParseCatalog([]byte("mesages:\n  greeting: \"hi\"\n"))
	assert.ErrorIs(t, err, rtfmt.ErrInvalidCatalog)
}

func TestLoadCatalogEmpty(t *testing.T) {
	t.Parallel()
	c, err := rtfmt.ParseCatalog(nil)
	require.NoError(t, err)
	assert.Empty(t, c.Keys())
}

func TestNewCatalogCopies(t *testing.T) {
	t.Parallel()
	src := map[string]string{"a": "{}"}
	c, err := rtfmt.NewCatalog(src)
	require.NoError(t, err)
	src["a"] = "changed"
	s, _ := c.Lookup("a")
	assert.Equal(t, "{}", s)
}

func TestCatalogWriteYAML(t *testing.T) {
	t.Parallel()
	c, err := rtfmt.ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.WriteYAML(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "messages:\n  braces: "))

	again, err := rtfmt.LoadCatalog(&buf)
	require.NoError(t, err)
	for _, key := range c.Keys() {
		want, _ := c.Lookup(key)
		got, ok := again.Lookup(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}
