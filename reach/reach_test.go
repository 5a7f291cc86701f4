package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfta-go/sfta/core"
	"github.com/sfta-go/sfta/parser"
	"github.com/sfta-go/sfta/reach"
)

// layered builds:
//   Base  = OR(E1, E2)
//   Mid   = AND(Base, E3)
//   Top   = OR(Mid, E4)
func layered(t *testing.T) *core.FaultTree {
	t.Helper()
	const src = `- time_unit: h

Event: E1
- probability: 0.1

Event: E2
- probability: 0.2

Event: E3
- probability: 0.3

Event: E4
- probability: 0.4

Gate: Base
- type: OR
- inputs: E1, E2

Gate: Mid
- type: AND
- inputs: Base, E3

Gate: Top
- type: OR
- inputs: Mid, E4
`
	doc, err := parser.Parse(src)
	require.NoError(t, err)
	tree, err := core.Build(doc)
	require.NoError(t, err)
	return tree
}

func TestReachable_VisitsEveryTransitiveInput(t *testing.T) {
	tree := layered(t)

	res, err := reach.Reachable(tree, "Top")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Top", "Mid", "Base", "E4", "E1", "E2", "E3"}, res.Order)
	assert.ElementsMatch(t, []string{"E1", "E2", "E3", "E4"}, res.Events())
}

func TestReachable_Depths(t *testing.T) {
	tree := layered(t)

	res, err := reach.Reachable(tree, "Top")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Depth["Top"])
	assert.Equal(t, 1, res.Depth["Mid"])
	assert.Equal(t, 1, res.Depth["E4"])
	assert.Equal(t, 2, res.Depth["Base"])
	assert.Equal(t, 2, res.Depth["E3"])
	assert.Equal(t, 3, res.Depth["E1"])
	assert.Equal(t, 3, res.Depth["E2"])
}

func TestReachable_MaxDepthTruncates(t *testing.T) {
	tree := layered(t)

	res, err := reach.Reachable(tree, "Top", reach.WithMaxDepth(1))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Top", "Mid", "E4"}, res.Order)
	_, sawBase := res.Depth["Base"]
	assert.False(t, sawBase, "Base is two edges away and should be excluded by WithMaxDepth(1)")
}

func TestReachable_SharedSubgateVisitedOnce(t *testing.T) {
	// Diamond: Top = AND(Left, Right), Left = OR(Shared, E1), Right = OR(Shared, E2).
	const src = `- time_unit: h

Event: Shared
- probability: 0.1

Event: E1
- probability: 0.2

Event: E2
- probability: 0.3

Gate: Left
- type: OR
- inputs: Shared, E1

Gate: Right
- type: OR
- inputs: Shared, E2

Gate: Top
- type: AND
- inputs: Left, Right
`
	doc, err := parser.Parse(src)
	require.NoError(t, err)
	tree, err := core.Build(doc)
	require.NoError(t, err)

	res, err := reach.Reachable(tree, "Top")
	require.NoError(t, err)

	count := 0
	for _, id := range res.Order {
		if id == "Shared" {
			count++
		}
	}
	assert.Equal(t, 1, count, "Shared must be visited exactly once despite two incoming edges")
}

func TestReachable_PathTo(t *testing.T) {
	tree := layered(t)

	res, err := reach.Reachable(tree, "Top")
	require.NoError(t, err)

	path, err := res.PathTo("E1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Top", "Mid", "Base", "E1"}, path)
}

func TestReachable_PathToUnreachedID(t *testing.T) {
	tree := layered(t)

	res, err := reach.Reachable(tree, "Base")
	require.NoError(t, err)

	_, err = res.PathTo("E4")
	assert.Error(t, err)
}

func TestReachable_UnknownGate(t *testing.T) {
	tree := layered(t)

	_, err := reach.Reachable(tree, "NoSuchGate")
	require.Error(t, err)
	assert.ErrorIs(t, err, reach.ErrUnknownGate)
}

func TestReachable_LeafGateReachesOnlyItsOwnEvents(t *testing.T) {
	tree := layered(t)

	res, err := reach.Reachable(tree, "Base")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Base", "E1", "E2"}, res.Order)
}
