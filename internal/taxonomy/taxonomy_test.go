package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTaxonomy = `{
	"Science": {
		"Physics": {"Quantum Mechanics": null, "Relativity": null},
		"Biology": null
	},
	"Technology": {
		"Programming": {"Python": null, "Go": null},
		"AI": null
	},
	"Arts": null
}`

func TestBuildPreservesOrder(t *testing.T) {
	nodes, err := Build([]byte(sampleTaxonomy))
	require.NoError(t, err)

	require.Len(t, nodes, 3)
	assert.Equal(t, "Science", nodes[0].Name)
	assert.Equal(t, "Technology", nodes[1].Name)
	assert.Equal(t, "Arts", nodes[2].Name)

	// Insertion order, not alphabetical, inside each level.
	require.Len(t, nodes[0].Children, 2)
	assert.Equal(t, "Physics", nodes[0].Children[0].Name)
	assert.Equal(t, "Biology", nodes[0].Children[1].Name)
}

func TestBuildIDsAndLevels(t *testing.T) {
	nodes, err := Build([]byte(sampleTaxonomy))
	require.NoError(t, err)

	quantum := nodes[0].Children[0].Children[0]
	assert.Equal(t, "Science > Physics > Quantum Mechanics", quantum.ID)
	assert.Equal(t, 2, quantum.Level)

	assert.Equal(t, "Arts", nodes[2].ID)
	assert.Equal(t, 0, nodes[2].Level)
}

func TestBuildNodeCountAndUniqueIDs(t *testing.T) {
	nodes, err := Build([]byte(sampleTaxonomy))
	require.NoError(t, err)

	assert.Equal(t, 11, Count(nodes))

	seen := map[string]bool{}
	var walk func([]Node)
	walk = func(ns []Node) {
		for _, n := range ns {
			assert.False(t, seen[n.ID], "duplicate id %q", n.ID)
			seen[n.ID] = true
			walk(n.Children)
		}
	}
	walk(nodes)
	assert.Len(t, seen, 11)
}

func TestBuildSameNameDifferentParents(t *testing.T) {
	nodes, err := Build([]byte(`{"Music": {"Theory": null}, "Math": {"Theory": null}}`))
	require.NoError(t, err)

	assert.Equal(t, "Music > Theory", nodes[0].Children[0].ID)
	assert.Equal(t, "Math > Theory", nodes[1].Children[0].ID)
}

func TestBuildIsPure(t *testing.T) {
	a, err := Build([]byte(sampleTaxonomy))
	require.NoError(t, err)
	b, err := Build([]byte(sampleTaxonomy))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildLeafCounts(t *testing.T) {
	nodes, err := Build([]byte(`{"AI": 12, "Go": null}`))
	require.NoError(t, err)
	assert.Equal(t, 12, nodes[0].VideoCount)
	assert.Equal(t, 0, nodes[1].VideoCount)
}

func TestBuildRejectsNonObject(t *testing.T) {
	_, err := Build([]byte(`["a","b"]`))
	assert.Error(t, err)

	_, err = Build([]byte(`{"a": ["nested array"]}`))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	nodes, err := Build([]byte(sampleTaxonomy))
	require.NoError(t, err)

	n, ok := Find(nodes, "Technology > Programming > Go")
	require.True(t, ok)
	assert.Equal(t, "Go", n.Name)

	_, ok = Find(nodes, "Technology > Hardware")
	assert.False(t, ok)
}

func TestAncestors(t *testing.T) {
	assert.Nil(t, Ancestors("Science"))
	assert.Equal(t,
		[]string{"Science", "Science > Physics"},
		Ancestors("Science > Physics > Relativity"))
}
