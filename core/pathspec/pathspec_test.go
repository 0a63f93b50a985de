package pathspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/core/pathspec"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("root pattern", func(t *testing.T) {
		t.Parallel()

		segs, err := pathspec.Parse("/")
		require.NoError(t, err)
		assert.Empty(t, segs)
	})

	t.Run("fixed segments", func(t *testing.T) {
		t.Parallel()

		segs, err := pathspec.Parse("/users/orders")
		require.NoError(t, err)
		require.Len(t, segs, 2)
		assert.Equal(t, pathspec.Fixed("users"), segs[0])
		assert.Equal(t, pathspec.Fixed("orders"), segs[1])
	})

	t.Run("variable segments", func(t *testing.T) {
		t.Parallel()

		segs, err := pathspec.Parse("/users/{id}/orders/{orderId}")
		require.NoError(t, err)
		require.Len(t, segs, 4)
		assert.Equal(t, pathspec.Variable("id"), segs[1])
		assert.Equal(t, pathspec.Variable("orderId"), segs[3])
	})

	t.Run("allowed character set", func(t *testing.T) {
		t.Parallel()

		segs, err := pathspec.Parse("/v1.2/~user_name/file-(copy)")
		require.NoError(t, err)
		assert.Len(t, segs, 3)
	})

	t.Run("rejects malformed patterns", func(t *testing.T) {
		t.Parallel()

		for _, pattern := range []string{
			"",
			"foo",
			"foo/bar",
			"/foo/",
			"/foo//bar",
			"/fo{o",
			"/fo}o",
			"/{foo",
			"/foo}",
			"/{}",
			"/{{foo}}",
			"/{foo}bar",
			"/foo bar",
			"/fo o",
		} {
			_, err := pathspec.Parse(pattern)
			assert.Error(t, err, "pattern %q should be rejected", pattern)
		}
	})

	t.Run("validation errors wrap sentinels", func(t *testing.T) {
		t.Parallel()

		_, err := pathspec.Parse("no-leading-slash")
		assert.ErrorIs(t, err, pathspec.ErrInvalidPattern)

		_, err = pathspec.Parse("/{unclosed")
		assert.ErrorIs(t, err, pathspec.ErrInvalidSegment)
	})
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	t.Run("terminal wildcard", func(t *testing.T) {
		t.Parallel()

		segs, wildcard, err := pathspec.ParseFilter("/foo/*")
		require.NoError(t, err)
		assert.True(t, wildcard)
		require.Len(t, segs, 1)
		assert.Equal(t, pathspec.Fixed("foo"), segs[0])
	})

	t.Run("match-everything pattern", func(t *testing.T) {
		t.Parallel()

		segs, wildcard, err := pathspec.ParseFilter("/*")
		require.NoError(t, err)
		assert.True(t, wildcard)
		assert.Empty(t, segs)
	})

	t.Run("exact pattern without wildcard", func(t *testing.T) {
		t.Parallel()

		segs, wildcard, err := pathspec.ParseFilter("/foo/{x}")
		require.NoError(t, err)
		assert.False(t, wildcard)
		assert.Len(t, segs, 2)
	})

	t.Run("wildcard must be last", func(t *testing.T) {
		t.Parallel()

		_, _, err := pathspec.ParseFilter("/foo/*/bar")
		assert.ErrorIs(t, err, pathspec.ErrInvalidPattern)
	})
}

func TestJoinRoundTrip(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{
		"/",
		"/foo",
		"/foo/bar",
		"/users/{id}",
		"/users/{id}/orders/{orderId}",
		"/v1.2/~user_name/file-(copy)",
	} {
		segs, err := pathspec.Parse(pattern)
		require.NoError(t, err, "pattern %q", pattern)
		assert.Equal(t, pattern, pathspec.Join(segs), "pattern %q should round-trip", pattern)
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pathspec.Split(""))
	assert.Empty(t, pathspec.Split("/"))
	assert.Equal(t, []string{"foo"}, pathspec.Split("/foo"))
	assert.Equal(t, []string{"foo", "bar"}, pathspec.Split("/foo/bar"))
	assert.Equal(t, []string{"hello", "Peter"}, pathspec.Split("/hello/Peter"))

	// Trailing slashes produce an empty segment that never matches.
	assert.Equal(t, []string{"foo", ""}, pathspec.Split("/foo/"))
}
