package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fluxblock/model/graph"
)

func TestService_CategoryScenario(t *testing.T) {
	registry := New(WithEditorMode(true))
	pack := &graph.Pack{Name: "core", Version: "1.0.0"}
	r1 := graph.NewDefinition("r1", "Sin", "Math/Trig")
	r2 := graph.NewDefinition("r2", "Solve", "Math/Algebra")
	assert.True(t, registry.RegisterBlock(r1, pack, true))
	assert.True(t, registry.RegisterBlock(r2, pack, true))

	math := registry.FindBlocksListCategory("Math")
	require.Len(t, math.Children, 2)
	assert.Equal(t, "Trig", math.Children[0].Name)
	assert.Equal(t, "Algebra", math.Children[1].Name)
	assert.Equal(t, []*graph.Definition{r1}, math.Children[0].Blocks)
	assert.Equal(t, []*graph.Definition{r2}, math.Children[1].Blocks)
	assert.Empty(t, math.Blocks)
	assert.False(t, math.Open)
	assert.True(t, math.Show)
	assert.True(t, math.FilterShow)

	top := registry.Categories()
	require.Len(t, top, 2)
	assert.Equal(t, "", top[0].Name)
	assert.True(t, top[0].Open)
	assert.Same(t, math, top[1])
	assert.Same(t, pack, r1.Pack)
	assert.True(t, r1.Grouped)
	assert.Same(t, math.Child("Trig"), registry.CategoryOf("r1"))
}

func TestService_FindBlocksListCategory(t *testing.T) {
	registry := New()
	testCases := []struct {
		description string
		path        string
		expected    []string
	}{
		{description: "root", path: "", expected: []string{""}},
		{description: "nested", path: "A/B", expected: []string{"A", "B"}},
		{description: "case sensitive", path: "a/B", expected: []string{"a", "B"}},
		{description: "trailing slash", path: "C/", expected: []string{"C", ""}},
		{description: "leading slash is part of the name", path: "/D", expected: []string{"/D"}},
	}
	for _, testCase := range testCases {
		node := registry.FindBlocksListCategory(testCase.path)
		assert.Same(t, node, registry.FindBlocksListCategory(testCase.path), testCase.description)
		assert.Equal(t, testCase.expected[len(testCase.expected)-1], node.Name, testCase.description)
		level := registry.Categories()
		var actual *Category
		for _, name := range testCase.expected {
			actual = lookupCategory(level, name)
			require.NotNil(t, actual, testCase.description)
			level = actual.Children
		}
		assert.Same(t, node, actual, testCase.description)
	}
	assert.Len(t, registry.Categories(), 5)
}

func TestService_RegisterDuplicate(t *testing.T) {
	registry := New(WithEditorMode(true))
	first := graph.NewDefinition("dup", "First", "A/B")
	second := graph.NewDefinition("dup", "Second", "A/B")
	assert.True(t, registry.RegisterBlock(first, nil, true))
	assert.False(t, registry.RegisterBlock(second, nil, true))
	assert.Same(t, first, registry.GetRegisteredBlock("dup"))
	assert.Len(t, registry.Blocks(), 1)

	node := registry.FindBlocksListCategory("A/B")
	assert.Equal(t, []*graph.Definition{first}, node.Blocks)
	registry.UpdateBlocksList()
	assert.Len(t, node.Blocks, 1)
}

func TestService_LazyGrouping(t *testing.T) {
	registry := New()
	def := graph.NewDefinition("lazy", "Lazy", "Util")
	registry.RegisterBlock(def, nil, true)
	registry.UpdateBlocksList()
	assert.False(t, def.Grouped)
	assert.Len(t, registry.Categories(), 1)

	registry.SetEditorMode(true)
	registry.RegisterBlock(graph.NewDefinition("later", "Later", "Util"), nil, false)
	assert.False(t, def.Grouped)
	registry.UpdateBlocksList()
	assert.True(t, def.Grouped)
	assert.Len(t, registry.FindBlocksListCategory("Util").Blocks, 2)
}

func TestService_UnregisterBlock(t *testing.T) {
	registry := New(WithEditorMode(true))
	def := graph.NewDefinition("u1", "Remove me", "Tools")
	registry.RegisterBlock(def, nil, true)
	node := registry.FindBlocksListCategory("Tools")
	require.Len(t, node.Blocks, 1)

	assert.True(t, registry.UnregisterBlock("u1", true))
	assert.False(t, registry.UnregisterBlock("u1", true))
	assert.Empty(t, node.Blocks)
	assert.Nil(t, registry.GetRegisteredBlock("u1"))
	assert.Nil(t, registry.CategoryOf("u1"))
	assert.False(t, def.Grouped)

	assert.True(t, registry.RegisterBlock(def, nil, true))
	assert.Equal(t, []*graph.Definition{def}, node.Blocks)
}

func TestService_Packs(t *testing.T) {
	registry := New()
	core := &graph.Pack{Name: "core", Version: "1.0.0"}
	extra := &graph.Pack{Name: "extra"}
	require.NoError(t, registry.RegisterBlockPack(core))
	require.NoError(t, registry.RegisterBlockPack(extra))
	assert.Equal(t, []*graph.Pack{core, extra}, registry.Packs())
	assert.Same(t, core, registry.GetBlockPackRegistered("core"))
	assert.Nil(t, registry.GetBlockPackRegistered("missing"))

	require.NoError(t, registry.RegisterBlockPack(&graph.Pack{Name: "core", Version: "0.9.0"}))
	assert.Same(t, core, registry.GetBlockPackRegistered("core"))
	upgrade := &graph.Pack{Name: "core", Version: "1.1.0"}
	require.NoError(t, registry.RegisterBlockPack(upgrade))
	assert.Equal(t, []*graph.Pack{upgrade, extra}, registry.Packs())
	assert.Error(t, registry.RegisterBlockPack(&graph.Pack{Name: "bad", Version: "x.y"}))

	def := graph.NewDefinition("b1", "B1", "")
	registry.RegisterBlock(def, upgrade, true)
	assert.True(t, registry.UnregisterBlockPack("core"))
	assert.False(t, registry.UnregisterBlockPack("core"))
	assert.Nil(t, registry.GetBlockPackRegistered("core"))
	assert.Same(t, def, registry.GetRegisteredBlock("b1"), "blocks outlive their pack")
}

func TestService_BlocksForPlatform(t *testing.T) {
	registry := New()
	web := graph.NewDefinition("web", "Web", "")
	web.Platforms = []graph.Platform{graph.PlatformWeb}
	node := graph.NewDefinition("node", "Node", "")
	node.Platforms = []graph.Platform{graph.PlatformNode}
	everywhere := graph.NewDefinition("any", "Any", "")
	for _, def := range []*graph.Definition{web, node, everywhere} {
		registry.RegisterBlock(def, nil, true)
	}
	assert.Equal(t, graph.PlatformAll, registry.CurrentPlatform())
	assert.Len(t, registry.BlocksForPlatform(), 3)
	registry.SetCurrentPlatform(graph.PlatformWeb)
	assert.Equal(t, []*graph.Definition{web, everywhere}, registry.BlocksForPlatform())
}

func TestService_FilterCategories(t *testing.T) {
	registry := New(WithEditorMode(true))
	registry.RegisterBlock(graph.NewDefinition("sin", "Sine", "Math/Trig"), nil, true)
	registry.RegisterBlock(graph.NewDefinition("print", "Print", "Debug"), nil, true)

	registry.FilterCategories("SIN")
	assert.True(t, registry.FindBlocksListCategory("Math").FilterShow)
	assert.True(t, registry.FindBlocksListCategory("Math/Trig").FilterShow)
	assert.False(t, registry.FindBlocksListCategory("Debug").FilterShow)

	registry.FilterCategories("")
	assert.True(t, registry.FindBlocksListCategory("Debug").FilterShow)
}
