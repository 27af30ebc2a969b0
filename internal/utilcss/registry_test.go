package utilcss

import (
	"slices"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry()
	require.NoError(t, err)
	return reg
}

func TestNewRegistry(t *testing.T) {
	reg := newTestRegistry(t)

	v, ok := reg.Padding.Lookup("4")
	require.True(t, ok)
	assert.Equal(t, "1rem", v)

	_, ok = reg.Padding.Lookup("7")
	assert.False(t, ok, "7 is not part of the padding scale")

	v, ok = reg.Margin.Lookup("auto")
	require.True(t, ok)
	assert.Equal(t, "auto", v)

	_, ok = reg.SpaceBetween.Lookup("auto")
	assert.False(t, ok)

	v, ok = reg.States.Lookup("hover")
	require.True(t, ok)
	assert.Equal(t, ":hover", v)

	v, ok = reg.Breakpoints.Lookup("md")
	require.True(t, ok)
	assert.Equal(t, "768px", v)
}

func TestTableKeys_NaturalOrder(t *testing.T) {
	reg := newTestRegistry(t)
	keys := reg.Padding.Keys()

	require.Equal(t, reg.Padding.Len(), len(keys))
	assert.Equal(t, "0", keys[0])
	assert.Equal(t, "px", keys[len(keys)-1])
	assert.Less(t, slices.Index(keys, "2"), slices.Index(keys, "10"))
	assert.Less(t, slices.Index(keys, "1.5"), slices.Index(keys, "2"))
}

func TestTableKeys_ReturnsCopy(t *testing.T) {
	reg := newTestRegistry(t)

	keys := reg.Margin.Keys()
	keys[0] = "mutated"

	assert.NotEqual(t, "mutated", reg.Margin.Keys()[0])
}

func TestNewTable_CopiesInput(t *testing.T) {
	values := map[string]string{"1": "0.25rem"}
	table := NewTable("test", values)
	values["1"] = "changed"

	v, _ := table.Lookup("1")
	assert.Equal(t, "0.25rem", v)
	assert.Equal(t, "test", table.Name())
}

func TestLoadRegistry_Errors(t *testing.T) {
	complete := func() fstest.MapFS {
		return fstest.MapFS{
			"padding.yaml":       {Data: []byte(`"1": "0.25rem"`)},
			"margin.yaml":        {Data: []byte(`"1": "0.25rem"`)},
			"space_between.yaml": {Data: []byte(`"1": "0.25rem"`)},
			"states.yaml":        {Data: []byte(`"hover": ":hover"`)},
			"breakpoints.yaml":   {Data: []byte(`"sm": "640px"`)},
		}
	}

	t.Run("complete set loads", func(t *testing.T) {
		reg, err := LoadRegistry(complete())
		require.NoError(t, err)
		assert.Equal(t, 1, reg.Padding.Len())
	})

	t.Run("missing table", func(t *testing.T) {
		fsys := complete()
		delete(fsys, "margin.yaml")

		_, err := LoadRegistry(fsys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read table margin")
	})

	t.Run("duplicate keys", func(t *testing.T) {
		fsys := complete()
		fsys["padding.yaml"] = &fstest.MapFile{Data: []byte("\"1\": \"a\"\n\"1\": \"b\"\n")}

		_, err := LoadRegistry(fsys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse table padding")
	})

	t.Run("nested value", func(t *testing.T) {
		fsys := complete()
		fsys["states.yaml"] = &fstest.MapFile{Data: []byte("hover:\n  nested: true\n")}

		_, err := LoadRegistry(fsys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-scalar")
	})
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	reg := newTestRegistry(t)
	resolver := NewResolver(reg)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolved, err := resolver.Resolve(Token{Text: "mt-4"})
			assert.NoError(t, err)
			assert.Equal(t, "1rem", resolved.Decl.Value)
		}()
	}
	wg.Wait()
}
