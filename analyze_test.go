package sfta_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfta-go/sfta"
	"github.com/sfta-go/sfta/core"
)

const sampleSource = `- time_unit: h

Event: Valve
- label: Valve fails closed
- probability: 0.01

Event: Pump
- label: Pump fails to start
- probability: 0.02

Event: Sensor
- label: Sensor false negative
- rate: 0.001

Gate: LossOfFlow
- type: OR
- inputs: Valve, Pump

Gate: TopEvent
- type: AND
- inputs: LossOfFlow, Sensor
`

func TestAnalyze_EndToEnd(t *testing.T) {
	result, err := sfta.Analyze(sampleSource)
	require.NoError(t, err)

	top := result.TopGates()
	require.Len(t, top, 1)
	assert.Equal(t, "TopEvent", top[0].ID)

	cutSets, err := result.MCS("TopEvent")
	require.NoError(t, err)
	assert.Len(t, cutSets, 2) // {Valve,Sensor}, {Pump,Sensor}

	q, err := result.Quantity("TopEvent")
	require.NoError(t, err)
	assert.InDelta(t, 0.00003, q.Value, 1e-9)

	contrib, err := result.Contribution("TopEvent", "Valve")
	require.NoError(t, err)
	assert.InDelta(t, 0.00001, contrib, 1e-9)

	imp, err := result.Importance("TopEvent", "Valve")
	require.NoError(t, err)
	assert.InDelta(t, 0.00001/0.00003, imp, 1e-6)
}

func TestAnalyze_SyntaxErrorPropagates(t *testing.T) {
	_, err := sfta.Analyze("not a valid line\n")
	require.Error(t, err)
}

func TestAnalyze_StructuralErrorPropagates(t *testing.T) {
	const cyclic = `
Gate: G1
- type: OR
- inputs: G2

Gate: G2
- type: AND
- inputs: G1
`
	_, err := sfta.Analyze(cyclic)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrCycle))
}

func TestAnalyze_UnknownGateID(t *testing.T) {
	result, err := sfta.Analyze(sampleSource)
	require.NoError(t, err)

	_, err = result.MCS("NoSuchGate")
	assert.Error(t, err)
	_, err = result.Quantity("NoSuchGate")
	assert.Error(t, err)
}

func TestAnalyze_IncidenceMatrix(t *testing.T) {
	result, err := sfta.Analyze(sampleSource)
	require.NoError(t, err)

	inc, err := result.IncidenceMatrix("TopEvent")
	require.NoError(t, err)
	assert.Equal(t, 2, inc.Rows())
	assert.Equal(t, 3, inc.Cols())
}

func TestAnalyze_ImmutableAcrossRepeatedQueries(t *testing.T) {
	result, err := sfta.Analyze(sampleSource)
	require.NoError(t, err)

	first, err := result.Quantity("TopEvent")
	require.NoError(t, err)
	second, err := result.Quantity("TopEvent")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyze_ReachableAndEventIDs(t *testing.T) {
	result, err := sfta.Analyze(sampleSource)
	require.NoError(t, err)

	reached, err := result.Reachable("TopEvent")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Valve", "Pump", "Sensor"}, reached.Events())

	cutSets, err := result.MCS("TopEvent")
	require.NoError(t, err)
	for _, cs := range cutSets {
		assert.Len(t, result.EventIDs(cs), 2)
	}

	_, err = result.Reachable("NoSuchGate")
	assert.Error(t, err)
}

func TestAnalyze_ZeroProbabilityGateImportanceIsNaN(t *testing.T) {
	const src = `
Event: E1
- probability: 0

Gate: G1
- type: OR
- inputs: E1
`
	result, err := sfta.Analyze(src)
	require.NoError(t, err)
	imp, err := result.Importance("G1", "E1")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(imp))
}
