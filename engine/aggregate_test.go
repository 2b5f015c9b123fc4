package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayLaterLayerWins(t *testing.T) {
	primary := NewRecordFromStrings(map[string]string{"NAME": "A"})
	item := NewRecordFromStrings(map[string]string{"NAME": "B"})

	composite := Overlay(primary, item)
	v, _ := composite.Get("NAME")
	assert.Equal(t, "B", v)
}

func TestOverlayDoesNotMutateInputs(t *testing.T) {
	primary := NewRecordFromStrings(map[string]string{"NAME": "A", "REF": "X"})
	item := NewRecordFromStrings(map[string]string{"NAME": "B"})

	_ = Overlay(primary, item)

	v, _ := primary.Get("NAME")
	assert.Equal(t, "A", v)
	v, _ = item.Get("NAME")
	assert.Equal(t, "B", v)
}

func TestAggregatePrecedenceOrder(t *testing.T) {
	primary := NewRecordFromStrings(map[string]string{
		"REFERANCE":   "SHP-001",
		"CLIENT_CODE": "ACME",
		"CURRENCY":    "USD",
	})
	items := []Record{
		NewRecordFromStrings(map[string]string{
			"SHIPMENT_REF": "SHP-001",
			"CURRENCY":     "EUR",
			"HS_CODE":      "851713",
		}),
	}
	clients := []Record{
		NewRecordFromStrings(map[string]string{
			"CODE":          "ACME",
			"CURRENCY":      "GBP",
			"RECEIVER_NAME": "Acme Ltd",
		}),
	}

	composite := Aggregate(primary, items, clients)

	// client overlays item overlays primary
	v, _ := composite.Get("CURRENCY")
	assert.Equal(t, "GBP", v)
	v, _ = composite.Get("HS_CODE")
	assert.Equal(t, "851713", v)
	v, _ = composite.Get("RECEIVER_NAME")
	assert.Equal(t, "Acme Ltd", v)
	v, _ = composite.Get("REFERANCE")
	assert.Equal(t, "SHP-001", v)
}

func TestAggregateItemLinkageIsCaseSensitive(t *testing.T) {
	primary := NewRecordFromStrings(map[string]string{"REFERANCE": "SHP-001"})
	items := []Record{
		NewRecordFromStrings(map[string]string{"SHIPMENT_REF": "shp-001", "HS_CODE": "999999"}),
	}

	composite := Aggregate(primary, items, nil)
	_, ok := composite.Get("HS_CODE")
	assert.False(t, ok, "linkage values are system identifiers; case must match exactly")
}

func TestAggregateWithoutSecondaryMatches(t *testing.T) {
	primary := NewRecordFromStrings(map[string]string{"REFERANCE": "SHP-001", "CURRENCY": "USD"})

	composite := Aggregate(primary, nil, nil)
	require.Equal(t, primary.Map(), composite.Map())
}

func TestAggregateNoAccountCodeSkipsClients(t *testing.T) {
	primary := NewRecordFromStrings(map[string]string{"REFERANCE": "SHP-001"})
	clients := []Record{
		NewRecordFromStrings(map[string]string{"CODE": "", "RECEIVER_NAME": "Nobody"}),
	}

	composite := Aggregate(primary, nil, clients)
	_, ok := composite.Get("RECEIVER_NAME")
	assert.False(t, ok)
}

func TestAggregateFirstItemMatchWins(t *testing.T) {
	primary := NewRecordFromStrings(map[string]string{"REFERANCE": "SHP-001"})
	items := []Record{
		NewRecordFromStrings(map[string]string{"SHIPMENT_REF": "SHP-001", "HS_CODE": "111111"}),
		NewRecordFromStrings(map[string]string{"SHIPMENT_REF": "SHP-001", "HS_CODE": "222222"}),
	}

	composite := Aggregate(primary, items, nil)
	v, _ := composite.Get("HS_CODE")
	assert.Equal(t, "111111", v)
}
