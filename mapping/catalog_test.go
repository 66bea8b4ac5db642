package mapping_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/WithPrecedent/camina/bunch"
	"github.com/WithPrecedent/camina/mapping"
)

func testCatalog(opts ...mapping.CatalogOption[string, string]) *mapping.Catalog[string, string] {
	return mapping.CatalogFromPairs(pairs("tester", "X", "another", "Y", "third", "Z"), opts...)
}

func TestCatalogResolveAll(t *testing.T) {
	t.Parallel()

	c := testCatalog()
	got, err := c.Resolve(mapping.All[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, got)
	assert.Len(t, got, c.Len())
}

func TestCatalogResolveDefault(t *testing.T) {
	t.Parallel()

	t.Run("unset default is all", func(t *testing.T) {
		t.Parallel()

		c := testCatalog()
		all, err := c.Resolve(mapping.All[string]())
		require.NoError(t, err)
		def, err := c.Resolve(mapping.Default[string]())
		require.NoError(t, err)
		assert.Equal(t, all, def)
	})

	t.Run("redirected default", func(t *testing.T) {
		t.Parallel()

		c := testCatalog()
		c.SetDefaultKey(mapping.Scalar("tester"))
		def, err := c.Resolve(mapping.Default[string]())
		require.NoError(t, err)
		direct, err := c.Resolve(mapping.Scalar("tester"))
		require.NoError(t, err)
		assert.Equal(t, direct, def)
	})

	t.Run("default group of keys", func(t *testing.T) {
		t.Parallel()

		c := testCatalog()
		c.SetDefaultKey(mapping.Batch("third", "tester"))
		def, err := c.Resolve(mapping.Default[string]())
		require.NoError(t, err)
		assert.Equal(t, []string{"Z", "X"}, def)
	})

	t.Run("self-referential default rejected", func(t *testing.T) {
		t.Parallel()

		c := testCatalog()
		c.SetDefaultKey(mapping.Default[string]())
		_, err := c.Resolve(mapping.Default[string]())
		assert.ErrorIs(t, err, bunch.ErrInvalidArgument)
	})
}

func TestCatalogResolveNone(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		got, err := testCatalog().Resolve(mapping.None[string]())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("always list", func(t *testing.T) {
		t.Parallel()

		got, err := testCatalog(mapping.WithAlwaysList[string, string]()).Resolve(mapping.None[string]())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("default factory wins", func(t *testing.T) {
		t.Parallel()

		c := testCatalog()
		c.SetDefault("nothing here")
		got, err := c.Resolve(mapping.None[string]())
		require.NoError(t, err)
		assert.Equal(t, []string{"nothing here"}, got)
	})
}

func TestCatalogResolveBatch(t *testing.T) {
	t.Parallel()

	c := testCatalog()
	got, err := c.Resolve(mapping.Batch("tester", "missing", "another"))
	require.NoError(t, err)

	spew.Dump(got)

	// missing keys are silently skipped, never an error
	assert.Equal(t, []string{"X", "Y"}, got)
}

func TestCatalogResolveScalar(t *testing.T) {
	t.Parallel()

	c := testCatalog()
	got, err := c.Resolve(mapping.Scalar("another"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Y"}, got)

	_, err = c.Resolve(mapping.Scalar("missing"))
	assert.ErrorIs(t, err, bunch.ErrKeyNotFound)

	_, err = c.Resolve(mapping.Key[string]{})
	assert.ErrorIs(t, err, bunch.ErrInvalidArgument)
}

func TestCatalogSetBatch(t *testing.T) {
	t.Parallel()

	t.Run("pairwise assignment", func(t *testing.T) {
		t.Parallel()

		c := mapping.NewCatalog[string, int]()
		require.NoError(t, c.SetBatch([]string{"a", "b"}, []int{1, 2}))
		assert.Equal(t, []string{"a", "b"}, c.Keys())
		assert.Equal(t, []int{1, 2}, c.Values())
	})

	t.Run("length mismatch assigns nothing", func(t *testing.T) {
		t.Parallel()

		c := mapping.NewCatalog[string, int]()
		err := c.SetBatch([]string{"a", "b"}, []int{1})
		assert.ErrorIs(t, err, bunch.ErrInvalidArgument)
		assert.Zero(t, c.Len())
	})
}

func TestCatalogDelete(t *testing.T) {
	t.Parallel()

	t.Run("batch removal", func(t *testing.T) {
		t.Parallel()

		c := testCatalog()
		require.NoError(t, c.Delete("tester", "third"))
		assert.Equal(t, []string{"another"}, c.Keys())
	})

	t.Run("all-or-nothing", func(t *testing.T) {
		t.Parallel()

		c := testCatalog()
		err := c.Delete("tester", "missing", "gone")
		require.ErrorIs(t, err, bunch.ErrKeyNotFound)
		assert.Len(t, multierr.Errors(err), 2, "every missing key is reported")
		assert.Equal(t, 3, c.Len(), "nothing is removed on failure")
	})
}

func TestCatalogSubset(t *testing.T) {
	t.Parallel()

	c := testCatalog(mapping.WithAlwaysList[string, string]())
	c.SetDefaultKey(mapping.Scalar("tester"))

	sub, err := c.Subset([]string{"tester", "another"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"tester", "another"}, sub.Keys())

	def, err := sub.Resolve(mapping.Default[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, def, "default key carries over")

	none, err := sub.Resolve(mapping.None[string]())
	require.NoError(t, err)
	assert.NotNil(t, none, "list behavior carries over")
}
