package flex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fluxblock/model/graph"
	"github.com/viant/fluxblock/model/types"
)

func flexDefinition() *graph.Definition {
	return graph.NewDefinition("flex", "Flex", "Test").
		WithPort(graph.NewPortDefinition("A", graph.Input, types.Any()).WithFlex("g").WithMulti()).
		WithPort(graph.NewPortDefinition("L", graph.Input, types.ArrayOf(types.KindAny)).WithFlex("g")).
		WithPort(graph.NewPortDefinition("O", graph.Output, types.Any()).WithFlex("g")).
		WithPort(graph.NewPortDefinition("F", graph.Output, types.Any())).
		WithFlexable("g", &graph.Flexable{SetResultToData: "resolved", SetResultToOptions: "opType"})
}

func sourceDefinition(guid string, aType types.Descriptor) *graph.Definition {
	return graph.NewDefinition(guid, guid, "Test").
		WithPort(graph.NewPortDefinition("O", graph.Output, aType)).
		WithPort(graph.NewPortDefinition("I", graph.Input, aType))
}

func newBlocks(t *testing.T, g *graph.Graph, defs ...*graph.Definition) []*graph.Block {
	var ret []*graph.Block
	for _, def := range defs {
		block := graph.NewBlock(def)
		require.NoError(t, g.AddBlock(block))
		ret = append(ret, block)
	}
	return ret
}

func TestService_Propagate(t *testing.T) {
	g := graph.New()
	service := New()
	blocks := newBlocks(t, g, flexDefinition(), sourceDefinition("number", types.New(types.KindNumber)))
	flex, number := blocks[0], blocks[1]

	connector := g.Attach(number.OutputPort("O"), flex.InputPort("A"))
	service.Propagate(connector.From, connector.To)

	assert.Equal(t, types.New(types.KindNumber), flex.InputPort("A").Type)
	assert.Equal(t, types.ArrayOf(types.KindNumber), flex.InputPort("L").Type)
	assert.Equal(t, types.New(types.KindNumber), flex.OutputPort("O").Type)
	assert.Equal(t, types.Any(), flex.OutputPort("F").Type, "port outside the group")
	assert.Equal(t, float64(0), flex.OutputPort("O").Value)
	assert.Equal(t, []float64{}, flex.InputPort("L").Value)
	assert.Equal(t, "number", flex.Data["resolved"])
	assert.Equal(t, "number", flex.Options["opType"])

	g.Detach(connector)
	service.Propagate(connector.From, connector.To)
	assert.Equal(t, types.Any(), flex.InputPort("A").Type)
	assert.Equal(t, types.ArrayOf(types.KindAny), flex.InputPort("L").Type)
	assert.Equal(t, types.Any(), flex.OutputPort("O").Type)
	assert.Nil(t, flex.OutputPort("O").Value)
	assert.Equal(t, "any", flex.Data["resolved"])
	assert.Equal(t, "any", flex.Options["opType"])
}

func TestService_PropagateDictionaryKey(t *testing.T) {
	g := graph.New()
	service := New()
	def := graph.NewDefinition("dict", "Dict", "Test").
		WithPort(graph.NewPortDefinition("I", graph.Input, types.DictionaryOf(types.KindAny, types.KindAny)).WithFlex("g")).
		WithPort(graph.NewPortDefinition("V", graph.Output, types.Any()).WithFlex("g"))
	blocks := newBlocks(t, g, def, sourceDefinition("map", types.DictionaryOf(types.KindString, types.KindBoolean)))
	dict, source := blocks[0], blocks[1]

	connector := g.Attach(source.OutputPort("O"), dict.InputPort("I"))
	service.Propagate(connector.From, connector.To)
	assert.Equal(t, "map[string]boolean", dict.InputPort("I").Type.String())
	assert.Equal(t, "boolean", dict.OutputPort("V").Type.String())

	g.Detach(connector)
	service.Propagate(connector.From, connector.To)
	assert.Equal(t, "map[any]any", dict.InputPort("I").Type.String())
	assert.Equal(t, "any", dict.OutputPort("V").Type.String())
}

func TestService_PropagateTransitive(t *testing.T) {
	g := graph.New()
	service := New()
	blocks := newBlocks(t, g, flexDefinition(), flexDefinition(), sourceDefinition("string", types.New(types.KindString)))
	first, second, source := blocks[0], blocks[1], blocks[2]

	chain := g.Attach(first.OutputPort("O"), second.InputPort("A"))
	service.Propagate(chain.From, chain.To)
	assert.Equal(t, types.Any(), first.OutputPort("O").Type)
	assert.Equal(t, types.Any(), second.InputPort("A").Type)

	concrete := g.Attach(source.OutputPort("O"), first.InputPort("A"))
	service.Propagate(concrete.From, concrete.To)
	assert.Equal(t, types.New(types.KindString), first.OutputPort("O").Type)
	assert.Equal(t, types.New(types.KindString), second.InputPort("A").Type)
	assert.Equal(t, types.New(types.KindString), second.OutputPort("O").Type)
	assert.Equal(t, "string", second.Options["opType"])

	g.Detach(concrete)
	service.Propagate(concrete.From, concrete.To)
	assert.Equal(t, types.Any(), first.OutputPort("O").Type)
	assert.Equal(t, types.Any(), second.OutputPort("O").Type, "group must not stay concrete on its own pushed type")

	g.Detach(chain)
	concrete = g.Attach(source.OutputPort("O"), first.InputPort("A"))
	service.Propagate(concrete.From, concrete.To)
	assert.Equal(t, types.New(types.KindString), first.OutputPort("O").Type)
	assert.Equal(t, types.Any(), second.OutputPort("O").Type, "unlinked group stays any")
}

func TestService_PropagateLastEstablishedWins(t *testing.T) {
	g := graph.New()
	service := New()
	blocks := newBlocks(t, g, flexDefinition(),
		sourceDefinition("number", types.New(types.KindNumber)),
		sourceDefinition("string", types.New(types.KindString)))
	flex, number, text := blocks[0], blocks[1], blocks[2]

	first := g.Attach(number.OutputPort("O"), flex.InputPort("A"))
	service.Propagate(first.From, first.To)
	second := g.Attach(text.OutputPort("O"), flex.InputPort("A"))
	service.Propagate(second.From, second.To)
	assert.Equal(t, types.New(types.KindString), flex.OutputPort("O").Type)

	g.Detach(second)
	service.Propagate(second.From, second.To)
	assert.Equal(t, types.New(types.KindNumber), flex.OutputPort("O").Type)
}

func TestService_PropagateReentrancy(t *testing.T) {
	g := graph.New()
	service := New()
	nested := 0
	def := flexDefinition()
	def.Hooks.PortTypeChange = graph.PortTypeChangeFunc(func(block *graph.Block, port *graph.Port) {
		nested++
		service.Propagate(port)
	})
	blocks := newBlocks(t, g, def, sourceDefinition("number", types.New(types.KindNumber)))
	flex, number := blocks[0], blocks[1]

	connector := g.Attach(number.OutputPort("O"), flex.InputPort("A"))
	service.Propagate(connector.From, connector.To)
	assert.Equal(t, 3, nested)
	assert.Equal(t, types.New(types.KindNumber), flex.OutputPort("O").Type)
}

func TestService_TypeChangeListener(t *testing.T) {
	g := graph.New()
	var changed []string
	service := New(WithTypeChangeListener(func(port *graph.Port) {
		changed = append(changed, port.Name+":"+port.Type.String())
	}))
	blocks := newBlocks(t, g, flexDefinition(), sourceDefinition("number", types.New(types.KindNumber)))
	flex, number := blocks[0], blocks[1]

	connector := g.Attach(number.OutputPort("O"), flex.InputPort("A"))
	service.Propagate(connector.From, connector.To)
	assert.Equal(t, []string{"A:number", "L:[]number", "O:number"}, changed)

	changed = nil
	service.Propagate(connector.From, connector.To)
	assert.Empty(t, changed, "resolving an unchanged group reports nothing")
}

func TestService_PropagateDeferred(t *testing.T) {
	g := graph.New()
	service := New()
	var connector *graph.Connector
	def := flexDefinition()
	def.Hooks.PortTypeChange = graph.PortTypeChangeFunc(func(block *graph.Block, port *graph.Port) {
		if g.Detach(connector) {
			service.Propagate(connector.From, connector.To)
		}
	})
	blocks := newBlocks(t, g, def, sourceDefinition("number", types.New(types.KindNumber)))
	flex, number := blocks[0], blocks[1]

	connector = g.Attach(number.OutputPort("O"), flex.InputPort("A"))
	service.Propagate(connector.From, connector.To)
	assert.False(t, flex.InputPort("A").IsConnected())
	assert.Equal(t, types.Any(), flex.InputPort("A").Type)
	assert.Equal(t, types.ArrayOf(types.KindAny), flex.InputPort("L").Type)
	assert.Equal(t, types.Any(), flex.OutputPort("O").Type)
	assert.Equal(t, "any", flex.Options["opType"])
}

func TestService_Prospective(t *testing.T) {
	g := graph.New()
	service := New()
	blocks := newBlocks(t, g, flexDefinition(),
		sourceDefinition("number", types.New(types.KindNumber)),
		sourceDefinition("string", types.New(types.KindString)))
	flex, number, text := blocks[0], blocks[1], blocks[2]

	first := g.Attach(number.OutputPort("O"), flex.InputPort("A"))
	service.Propagate(first.From, first.To)
	assert.Equal(t, types.New(types.KindNumber), service.Prospective(flex.OutputPort("O")))
	assert.Equal(t, types.Any(), service.Prospective(flex.OutputPort("O"), first))
	assert.Equal(t, types.ArrayOf(types.KindAny), service.Prospective(flex.InputPort("L"), first))

	second := g.Attach(text.OutputPort("O"), flex.InputPort("A"))
	service.Propagate(second.From, second.To)
	assert.Equal(t, types.New(types.KindNumber), service.Prospective(flex.OutputPort("O"), second))
	assert.Equal(t, types.New(types.KindString), flex.OutputPort("O").Type, "prospective type leaves the graph untouched")
	assert.Equal(t, types.New(types.KindNumber), service.Prospective(number.OutputPort("O"), first))
	assert.Equal(t, types.Any(), service.Prospective(nil))
}
