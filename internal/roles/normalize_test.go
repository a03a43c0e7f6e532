package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "accents and case", in: "Líder", want: "lider"},
		{name: "trims and collapses whitespace", in: "  Líder   de\tJóvenes ", want: "lider de jovenes"},
		{name: "enye is stripped", in: "Compañero", want: "companero"},
		{name: "already canonical", in: "cultivador", want: "cultivador"},
		{name: "blank", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "normalization must be idempotent")
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "pastor", NormalizeValue(" PASTOR "))
	assert.Equal(t, "", NormalizeValue(42))
	assert.Equal(t, "", NormalizeValue(nil))
}

func TestNormalizeList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{name: "list of any keeps order and duplicates", in: []any{"Líder", 3, " ", "lider", "Cultivador"}, want: []string{"lider", "lider", "cultivador"}},
		{name: "list of strings", in: []string{"Músico", ""}, want: []string{"musico"}},
		{name: "single string is wrapped", in: "Diácono", want: []string{"diacono"}},
		{name: "empty string", in: "", want: []string{}},
		{name: "unsupported type", in: map[string]any{"a": 1}, want: []string{}},
		{name: "nil", in: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeList(tt.in))
		})
	}
}

func TestSet(t *testing.T) {
	s := NewSet(NormalizeList([]any{"Líder"}))

	assert.True(t, s.Has("lider"))
	assert.False(t, s.Has("liderazgo"))
	assert.False(t, s.Has("Líder"), "set holds canonical roles only")
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Cultivador", Capitalize("cultivador"))
	assert.Equal(t, "Lider de jovenes", Capitalize("lider de jovenes"))
	assert.Equal(t, "", Capitalize(""))
}
