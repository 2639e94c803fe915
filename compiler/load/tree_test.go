package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// terminalPaths collects the full path of every terminal node, pre-order.
func terminalPaths(f Forest) []string {
	var paths []string
	f.Walk(func(path string, n *Node) bool {
		if len(n.Children) == 0 {
			paths = append(paths, path)
		}
		return true
	})
	return paths
}

// allPaths collects the full path of every node, pre-order.
func allPaths(f Forest) []string {
	var paths []string
	f.Walk(func(path string, n *Node) bool {
		paths = append(paths, path)
		return true
	})
	return paths
}

func fixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestParseEquivalentForms(t *testing.T) {
	t.Parallel()

	want := []string{
		"hierarchical.keys.with.five.layers",
		"hierarchical.keys.with.six.hierarchical.layers",
	}

	for _, name := range []string{"hierarchical.keys", "enumerated.keys", "mixed.keys"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			forest := Parse(fixture(t, name))
			assert.Equal(t, want, terminalPaths(forest))
		})
	}

	t.Run("identical structure across forms", func(t *testing.T) {
		t.Parallel()

		hierarchical := Parse(fixture(t, "hierarchical.keys"))
		enumerated := Parse(fixture(t, "enumerated.keys"))
		mixed := Parse(fixture(t, "mixed.keys"))

		assert.Equal(t, hierarchical, enumerated)
		assert.Equal(t, hierarchical, mixed)
	})
}

func TestParseMixedFormNesting(t *testing.T) {
	t.Parallel()

	forest := Parse(fixture(t, "mixed.keys"))

	assert.Equal(t, []string{
		"hierarchical.keys.with.five.layers",
		"hierarchical.keys.with.six.hierarchical.layers",
	}, terminalPaths(forest))

	// The shared prefix is one chain of groupings, not parallel trees.
	require.Len(t, forest, 1)
	with := forest.Root("hierarchical").Child("keys").Child("with")
	require.NotNil(t, with)
	assert.Len(t, with.Children, 2)
	assert.NotEmpty(t, with.Child("six").Children)
}

func TestParseTabEquivalence(t *testing.T) {
	t.Parallel()

	tabs := Parse("a\n\tb\n\t\tc\n")
	spaces := Parse("a\n    b\n        c\n")
	assert.Equal(t, spaces, tabs)
}

func TestParseDottedChainPushesDeepestNode(t *testing.T) {
	t.Parallel()

	// The indented line attaches under the deepest node of the dotted
	// chain, not under its first segment.
	forest := Parse("a.b.c\n  d\n")
	assert.Equal(t, []string{"a.b.c.d"}, terminalPaths(forest))
}

func TestParseDottedLinesAlwaysTopLevel(t *testing.T) {
	t.Parallel()

	// Width-zero lines never nest under previous lines.
	forest := Parse("a.b\nc.d\n")
	require.Len(t, forest, 2)
	assert.Equal(t, []string{"a.b", "c.d"}, terminalPaths(forest))
}

func TestParseRedundantDeclarationMerges(t *testing.T) {
	t.Parallel()

	forest := Parse("a.b\na.b.c\na.b\n")

	require.Len(t, forest, 1)
	b := forest.Root("a").Child("b")
	require.NotNil(t, b)
	assert.Len(t, b.Children, 1)
	assert.Equal(t, []string{"a.b.c"}, terminalPaths(forest))
}

func TestParsePromotion(t *testing.T) {
	t.Parallel()

	// First seen as a leaf, later extended: the node gains children
	// with no state to migrate.
	forest := Parse("metrics\nmetrics.requests\n")

	metrics := forest.Root("metrics")
	require.NotNil(t, metrics)
	assert.NotEmpty(t, metrics.Children)
	assert.Equal(t, []string{"metrics.requests"}, terminalPaths(forest))
}

func TestParseOrderingIsFirstSeen(t *testing.T) {
	t.Parallel()

	forest := Parse("zeta.one\nalpha.two\nzeta.three\nalpha.two\n")

	assert.Equal(t, []string{"zeta", "zeta.one", "zeta.three", "alpha", "alpha.two"}, allPaths(forest))
}

func TestParseDedentToUnseenWidth(t *testing.T) {
	t.Parallel()

	// The middle dedent width (2) was never pushed; the line attaches
	// at the nearest shallower level by pure width comparison.
	forest := Parse("a\n    b\n  c\n")
	assert.Equal(t, []string{"a.b", "a.c"}, terminalPaths(forest))
}

func TestParseMixedTabsAndSpacesDeterministic(t *testing.T) {
	t.Parallel()

	// One tab and four spaces tie at width 4, so both lines are
	// siblings under the root.
	forest := Parse("root\n\tfirst\n    second\n")
	assert.Equal(t, []string{"root.first", "root.second"}, terminalPaths(forest))
}

func TestParseEmptyAndBlankInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n\n  \t \n...\n"))
}

func TestForestRootAndChildLookup(t *testing.T) {
	t.Parallel()

	forest := Parse("a.b\n")
	assert.Nil(t, forest.Root("missing"))
	assert.Nil(t, forest.Root("a").Child("missing"))
	assert.NotNil(t, forest.Root("a").Child("b"))
}

func TestWalkStopsWhenToldTo(t *testing.T) {
	t.Parallel()

	forest := Parse("a.b\nc.d\n")
	var visited []string
	forest.Walk(func(path string, n *Node) bool {
		visited = append(visited, path)
		return path != "a.b"
	})
	assert.Equal(t, []string{"a", "a.b"}, visited)
}
