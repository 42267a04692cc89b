package rtfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/rtfmt"
)

func TestParseSpecifier(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want rtfmt.Specifier
	}{
		"empty":          {in: "", want: rtfmt.Specifier{}},
		"left":           {in: "<", want: rtfmt.Specifier{Align: rtfmt.AlignLeft}},
		"center":         {in: "^", want: rtfmt.Specifier{Align: rtfmt.AlignCenter}},
		"right":          {in: ">", want: rtfmt.Specifier{Align: rtfmt.AlignRight}},
		"sign":           {in: "+", want: rtfmt.Specifier{Sign: rtfmt.SignAlways}},
		"alternate":      {in: "#", want: rtfmt.Specifier{Repr: rtfmt.ReprAlt}},
		"zero alone":     {in: "0", want: rtfmt.Specifier{Pad: rtfmt.PadZero}},
		"zero width":     {in: "05", want: rtfmt.Specifier{Pad: rtfmt.PadZero, Width: rtfmt.AtLeast(5)}},
		"zero zero":      {in: "00", want: rtfmt.Specifier{Pad: rtfmt.PadZero, Width: rtfmt.AtLeast(0)}},
		"width":          {in: "10", want: rtfmt.Specifier{Width: rtfmt.AtLeast(10)}},
		"precision":      {in: ".3", want: rtfmt.Specifier{Precision: rtfmt.Exactly(3)}},
		"width and prec": {in: "8.2", want: rtfmt.Specifier{Width: rtfmt.AtLeast(8), Precision: rtfmt.Exactly(2)}},
		"debug":          {in: "?", want: rtfmt.Specifier{Kind: rtfmt.Debug}},
		"octal":          {in: "o", want: rtfmt.Specifier{Kind: rtfmt.Octal}},
		"lower hex":      {in: "x", want: rtfmt.Specifier{Kind: rtfmt.LowerHex}},
		"upper hex":      {in: "X", want: rtfmt.Specifier{Kind: rtfmt.UpperHex}},
		"binary":         {in: "b", want: rtfmt.Specifier{Kind: rtfmt.Binary}},
		"lower exp":      {in: "e", want: rtfmt.Specifier{Kind: rtfmt.LowerExp}},
		"upper exp":      {in: "E", want: rtfmt.Specifier{Kind: rtfmt.UpperExp}},
		"everything": {in: ">+#08.3e", want: rtfmt.Specifier{
			Align:     rtfmt.AlignRight,
			Sign:      rtfmt.SignAlways,
			Repr:      rtfmt.ReprAlt,
			Pad:       rtfmt.PadZero,
			Width:     rtfmt.AtLeast(8),
			Precision: rtfmt.Exactly(3),
			Kind:      rtfmt.LowerExp,
		}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := rtfmt.ParseSpecifier(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParseSpecifierErrors(t *testing.T) {
	t.Parallel()
	for _, in := range []string{
		"Z", ".", ".x", "+<", "#+", "xx", "5.", "<<", "x5", "?.2", "-", " ", "99999999999999999999999",
	} {
		_, err := rtfmt.ParseSpecifier(in)
		assert.ErrorIs(t, err, rtfmt.ErrBadSpecifier, in)
	}
}

func TestSpecifierComparable(t *testing.T) {
	t.Parallel()
	a, err := rtfmt.ParseSpecifier("^+10.1E")
	require.NoError(t, err)
	b, err := rtfmt.ParseSpecifier("^+10.1E")
	require.NoError(t, err)
	assert.True(t, a == b)
	assert.NotEqual(t, a, rtfmt.Specifier{})
}

func TestWidthPrecisionValue(t *testing.T) {
	t.Parallel()
	_, ok := rtfmt.Width{}.Value()
	assert.False(t, ok)
	n, ok := rtfmt.AtLeast(4).Value()
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = rtfmt.Precision{}.Value()
	assert.False(t, ok)
	n, ok = rtfmt.Exactly(0).Value()
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestArgumentRefString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", rtfmt.Next().String())
	assert.Equal(t, "3", rtfmt.Index(3).String())
	assert.Equal(t, "name", rtfmt.Named("name").String())
}
