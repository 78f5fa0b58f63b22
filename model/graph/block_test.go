package graph

import (
	"errors"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fluxblock/model/types"
)

func newAddDefinition() *Definition {
	return NewDefinition("math-add", "Add", "Math").
		WithPort(NewPortDefinition("IN", Input, types.Execute())).
		WithPort(NewPortDefinition("A", Input, types.Any()).WithFlex("g")).
		WithPort(NewPortDefinition("B", Input, types.Any()).WithFlex("g")).
		WithPort(NewPortDefinition("OUT", Output, types.Execute())).
		WithPort(NewPortDefinition("SUM", Output, types.Any()).WithFlex("g")).
		WithFlexable("g", &Flexable{SetResultToOptions: "opType"})
}

func TestNewBlock(t *testing.T) {
	created := 0
	def := newAddDefinition()
	def.Options = map[string]interface{}{"opType": "any", "nested": map[string]interface{}{"a": 1}}
	def.Hooks.Create = CreateFunc(func(block *Block) { created++ })

	block := NewBlock(def)
	tassert.Equal(t, 1, created)
	tassert.Equal(t, "Add", block.Name)
	tassert.Len(t, block.InputPorts(), 3)
	tassert.Len(t, block.OutputPorts(), 2)
	tassert.Len(t, block.AllPorts(), 5)
	tassert.Equal(t, "IN", block.AllPorts()[0].Name)
	tassert.Same(t, block, block.InputPort("A").Block())
	tassert.True(t, block.InputPort("IN").IsExecute())
	tassert.False(t, block.InputPort("IN").IsFlexible())
	tassert.True(t, block.InputPort("A").IsFlexible())
	tassert.Len(t, block.FlexMembers("g"), 3)
	tassert.NotNil(t, block.Flexable("g"))
	tassert.NotSame(t, def.Flexables["g"], block.Flexable("g"))

	block.Options["nested"].(map[string]interface{})["a"] = 2
	tassert.Equal(t, 1, def.Options["nested"].(map[string]interface{})["a"])
}

func TestBlock_AddRemovePort(t *testing.T) {
	block := NewBlock(newAddDefinition())

	_, err := block.AddPort(NewPortDefinition("A", Input, types.Any()), true, nil)
	tassert.True(t, errors.Is(err, ErrPortExists))

	port, err := block.AddPort(NewPortDefinition("C", Input, types.New(types.KindNumber)), true, 3.0)
	require.NoError(t, err)
	tassert.True(t, port.Dynamic)
	tassert.Equal(t, 3.0, port.Value)
	tassert.Same(t, port, block.Port(port.GUID))

	tassert.NoError(t, block.RemovePort(port))
	tassert.Nil(t, block.InputPort("C"))
	tassert.True(t, errors.Is(block.RemovePort(port), ErrPortNotFound))
}

func TestBlock_Clone(t *testing.T) {
	saved := 0
	def := newAddDefinition()
	def.Hooks.Save = SaveFunc(func(block *Block) {
		saved++
		block.Options["state"] = "saved"
	})
	block := NewBlock(def)
	block.Mark = "note"
	block.Breakpoint = true
	_, err := block.AddPort(NewPortDefinition("C", Input, types.New(types.KindNumber)), true, 7.0)
	require.NoError(t, err)

	g := New()
	other := NewBlock(def)
	require.NoError(t, g.AddBlock(block))
	require.NoError(t, g.AddBlock(other))
	g.Attach(other.OutputPort("OUT"), block.InputPort("IN"))

	clone := block.Clone()
	tassert.Equal(t, 1, saved)
	tassert.NotEqual(t, block.GUID, clone.GUID)
	tassert.Equal(t, "note", clone.Mark)
	tassert.True(t, clone.Breakpoint)
	tassert.Equal(t, "saved", clone.Options["state"])
	tassert.Len(t, clone.InputPorts(), 4)
	tassert.Equal(t, 7.0, clone.InputPort("C").Value)
	tassert.True(t, clone.InputPort("C").Dynamic)
	tassert.Equal(t, 0, clone.ConnectedPortCount())
	tassert.False(t, clone.InputPort("IN").IsConnected())
}

func TestBlock_UserAddPort(t *testing.T) {
	def := newAddDefinition()
	block := NewBlock(def)
	ports, err := block.UserAddPort(Input, AddParam)
	tassert.NoError(t, err)
	tassert.Nil(t, ports)

	def.Hooks.UserAddPort = UserAddPortFunc(func(block *Block, direction Direction, kind AddKind) []*PortDefinition {
		return []*PortDefinition{NewPortDefinition("X", "", types.Any()).WithFlex("g")}
	})
	ports, err = block.UserAddPort(Input, AddParam)
	require.NoError(t, err)
	require.Len(t, ports, 1)
	tassert.Equal(t, Input, ports[0].Direction)
	tassert.True(t, ports[0].Dynamic)
	tassert.Len(t, block.FlexMembers("g"), 4)
}

func TestBlock_CheckPlatform(t *testing.T) {
	def := newAddDefinition()
	def.Platforms = []Platform{PlatformElectron}
	block := NewBlock(def)
	tassert.True(t, block.CheckPlatform(PlatformElectron))
	tassert.Empty(t, block.Issues)
	tassert.False(t, block.CheckPlatform(PlatformWeb))
	require.Len(t, block.Issues, 1)
	tassert.True(t, errors.Is(block.Issues[0], ErrUnsupportedPlatform))
}
