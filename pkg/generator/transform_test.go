package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakegen/pkg/generator"
)

func TestNewTransform_Errors(t *testing.T) {
	t.Parallel()

	_, err := generator.NewTransform(nil, generator.LowercaseFold)
	require.ErrorIs(t, err, generator.ErrNilGenerator)

	_, err = generator.NewTransform(generator.Must(generator.NewPool("x")), nil)
	require.ErrorIs(t, err, generator.ErrNilTransform)

	assert.Panics(t, func() { generator.Capitalize(nil) })
}

func TestLowercaseFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Melvin", "melvin"},
		{"ÉCOLE", "école"},
		{"ΑΘΗΝΑ", "αθηνα"},
		{"already lower", "already lower"},
		{"MiXeD 123", "mixed 123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, generator.LowercaseFold(tt.in), "input %q", tt.in)
	}
}

func TestASCIILowercase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Quitzon", "quitzon"},
		{"Élodie", "elodie"},
		{"Ångström", "angstrom"},
		{"Søren", "soren"},
		{"Łukasz", "lukasz"},
		{"Straße", "strasse"},
		{"Œuvre", "oeuvre"},
		{"Dupont-Aignan", "dupontaignan"},
		{"O'Brien Smith", "obriensmith"},
		{"François 2nd", "francoisnd"},
		{"123 !?", ""},
		{"日本", "riben"},
		{"北京", "beijing"},
		{"Иванов", "ivanov"},
		{"Παπαδόπουλος", "papadopoulos"},
		{"ﬁnn", "finn"},
		{"Ǆemal", "dzemal"},
		{"e\u0301lan", "elan"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := generator.ASCIILowercase(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, generator.ASCIILowercase(got), "not idempotent")
			for _, r := range got {
				assert.True(t, r >= 'a' && r <= 'z', "unexpected rune %q", r)
			}
		})
	}
}

func TestCapitalizeFirst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "ascii", in: "impedit", want: "Impedit"},
		{name: "single rune", in: "a", want: "A"},
		{name: "already capitalized", in: "Totam", want: "Totam"},
		{name: "rest untouched", in: "hELLO", want: "HELLO"},
		{name: "accented", in: "éclair", want: "Éclair"},
		{name: "expanding mapping", in: "ßa", want: "SSa"},
		{name: "non letter", in: "1st", want: "1st"},
		{name: "invalid utf8", in: "\xffabc", want: "\xffabc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, generator.CapitalizeFirst(tt.in))
		})
	}
}

func TestTransformWrappers(t *testing.T) {
	t.Parallel()

	name := generator.Must(generator.NewPool("Zoë"))
	src := generator.NewSource(1)

	assert.Equal(t, "zoë", generator.Lowercase(name).Sample(src))
	assert.Equal(t, "zoe", generator.ASCIILower(name).Sample(src))
	assert.Equal(t, "Zoe", generator.Capitalize(generator.ASCIILower(name)).Sample(src))
	assert.Equal(t, generator.KindTransform, generator.Capitalize(name).Kind())
}

func TestTransformOfEmptyResult(t *testing.T) {
	t.Parallel()

	symbols := generator.Must(generator.NewPool("!!!", "???"))
	g := generator.Capitalize(generator.ASCIILower(symbols))

	src := generator.NewSource(9)
	for range 10 {
		assert.Equal(t, "", g.Sample(src))
	}
}
