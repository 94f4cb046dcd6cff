package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWarningAggregatorCounts(t *testing.T) {
	w := NewWarningAggregator()
	assert.Nil(t, w.Counts())

	w.Add(WarningInvalidLength, "link1")
	w.Add(WarningInvalidLength, "link2")
	w.Add(WarningNodeMissingAttrs, "node9")

	counts := w.Counts()
	require.NotNil(t, counts)
	assert.Equal(t, 2, counts[WarningInvalidLength])
	assert.Equal(t, 1, counts[WarningNodeMissingAttrs])
}

func TestWarningAggregatorKeepsThreeExamples(t *testing.T) {
	w := NewWarningAggregator()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		w.Add(WarningInvalidStartTime, id)
	}

	core, observed := observer.New(zapcore.WarnLevel)
	w.LogAll(zap.New(core))

	entries := observed.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, int64(5), fields["occurrences"])
	assert.Equal(t, []any{"a", "b", "c"}, fields["examples"])
}

func TestWarningAggregatorLogAllEmpty(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	NewWarningAggregator().LogAll(zap.New(core))
	assert.Zero(t, observed.Len())
}

func TestWarningAggregatorOneEntryPerType(t *testing.T) {
	w := NewWarningAggregator()
	w.Add(WarningInvalidCapacity, "l1")
	w.Add(WarningInvalidCapacity, "l2")
	w.Add(WarningInvalidPermlanes, "l1")
	w.Add(WarningTripMissingAttrs, "t3")

	core, observed := observer.New(zapcore.WarnLevel)
	w.LogAll(zap.New(core))
	assert.Equal(t, 3, observed.Len())
}
