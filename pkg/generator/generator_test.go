package generator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakegen/pkg/generator"
)

// scriptedSource replays fixed draws and records every requested bound.
type scriptedSource struct {
	draws  []int
	bounds []int
}

func (s *scriptedSource) IntN(n int) int {
	s.bounds = append(s.bounds, n)
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func TestNewPool(t *testing.T) {
	t.Parallel()

	t.Run("empty pool is rejected", func(t *testing.T) {
		t.Parallel()
		g, err := generator.NewPool()
		require.ErrorIs(t, err, generator.ErrEmptyPool)
		assert.Nil(t, g)
	})

	t.Run("values are copied", func(t *testing.T) {
		t.Parallel()
		values := []string{"a", "b"}
		g, err := generator.NewPool(values...)
		require.NoError(t, err)

		values[0] = "changed"
		assert.Equal(t, []string{"a", "b"}, g.Values())
		assert.Equal(t, generator.KindPool, g.Kind())
	})

	t.Run("returns the drawn index", func(t *testing.T) {
		t.Parallel()
		g := generator.Must(generator.NewPool("a", "b", "c"))
		src := &scriptedSource{draws: []int{2, 0}}

		assert.Equal(t, "c", g.Sample(src))
		assert.Equal(t, "a", g.Sample(src))
		assert.Equal(t, []int{3, 3}, src.bounds)
	})
}

func TestPoolUniformity(t *testing.T) {
	t.Parallel()

	values := []string{"north", "east", "south", "west"}
	g := generator.Must(generator.NewPool(values...))
	src := generator.NewSource(1)

	const draws = 100_000
	counts := make(map[string]int, len(values))
	for range draws {
		counts[g.Sample(src)]++
	}

	require.Len(t, counts, len(values))
	expected := 1.0 / float64(len(values))
	for _, v := range values {
		assert.InDelta(t, expected, float64(counts[v])/draws, 0.01, "frequency of %q", v)
	}
}

func TestDeterminism(t *testing.T) {
	t.Parallel()

	letters := generator.Must(generator.NewPool(
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
		"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	))
	digits := generator.Must(generator.NewPool("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"))
	word := generator.Must(generator.NewTemplate(
		generator.NewRule("{}{}{}", letters, letters, letters),
		generator.NewRule("{}{}{}{}", letters, letters, letters, letters),
	))
	handle := generator.Must(generator.NewTemplate(
		generator.NewRule("{}{}", generator.Capitalize(word), digits),
		generator.NewRule("{}.{}", word, word),
	))

	a := generator.NewSource(7)
	b := generator.NewSource(7)
	assert.Equal(t, handle.SampleN(a, 1000), handle.SampleN(b, 1000))

	c := generator.NewSource(8)
	assert.NotEqual(t, handle.SampleN(generator.NewSource(7), 100), handle.SampleN(c, 100))
}

func TestSampleN(t *testing.T) {
	t.Parallel()

	g := generator.Must(generator.NewPool("only"))
	src := generator.NewSource(1)

	assert.Empty(t, g.SampleN(src, 0))
	assert.Empty(t, g.SampleN(src, -3))
	assert.Equal(t, []string{"only", "only", "only"}, g.SampleN(src, 3))
}

func TestGeneratorString(t *testing.T) {
	t.Parallel()

	one := generator.Must(generator.NewPool("x"))
	three := generator.Must(generator.NewPool("x", "y", "z"))
	tpl := generator.Must(generator.NewTemplate(
		generator.NewRule("{}", one),
		generator.NewRule("{}", three),
	)).Named("names.full_name")

	assert.Equal(t, "pool(1 value)", one.String())
	assert.Equal(t, "pool(3 values)", three.String())
	assert.Equal(t, "template(names.full_name, 2 rules)", tpl.String())
	assert.Equal(t, "transform(of pool(1 value))", generator.Lowercase(one).String())
	assert.Equal(t, "names.full_name", tpl.Name())
	assert.Equal(t, "", one.Name())
}

func TestNamedSharesData(t *testing.T) {
	t.Parallel()

	g := generator.Must(generator.NewPool("a", "b", "c", "d"))
	named := g.Named("letters")

	assert.Equal(t, g.SampleN(generator.NewSource(3), 50), named.SampleN(generator.NewSource(3), 50))
	assert.Equal(t, "", g.Name())
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { generator.Must(generator.NewPool()) })
	assert.NotPanics(t, func() { generator.Must(generator.NewPool("ok")) })
}

func TestLockedSource(t *testing.T) {
	t.Parallel()

	g := generator.Must(generator.NewPool("a", "b", "c"))
	src := generator.NewLockedSource(generator.NewSource(99))

	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = g.SampleN(src, 500)
		}(i)
	}
	wg.Wait()

	for _, rs := range results {
		require.Len(t, rs, 500)
		for _, v := range rs {
			assert.Contains(t, []string{"a", "b", "c"}, v)
		}
	}
}
