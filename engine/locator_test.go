package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shipment(kv map[string]string) Record {
	return NewRecordFromStrings(kv)
}

func TestLocateByReference(t *testing.T) {
	shipments := []Record{
		shipment(map[string]string{"REFERANCE": "SHP-001", "SHIPPER_NAME": "Acme"}),
		shipment(map[string]string{"REFERANCE": "SHP-002", "SHIPPER_NAME": "Globex"}),
	}

	rec, ok := Locate("shp-002", shipments)
	require.True(t, ok)
	v, _ := rec.Get("SHIPPER_NAME")
	assert.Equal(t, "Globex", v)
}

func TestLocateByTrackingIdentifier(t *testing.T) {
	shipments := []Record{
		shipment(map[string]string{"REFERANCE": "SHP-001", "AWB_NUMBER": "157-12345675"}),
	}

	rec, ok := Locate("  157-12345675 ", shipments)
	require.True(t, ok)
	v, _ := rec.Get("REFERANCE")
	assert.Equal(t, "SHP-001", v)
}

func TestLocateNotFound(t *testing.T) {
	_, ok := Locate("NOPE123", nil)
	assert.False(t, ok)

	_, ok = Locate("NOPE123", []Record{shipment(map[string]string{"REFERANCE": "SHP-001"})})
	assert.False(t, ok)
}

func TestLocateEmptyTokenNeverMatches(t *testing.T) {
	shipments := []Record{
		shipment(map[string]string{"REFERANCE": "", "AWB_NUMBER": ""}),
	}
	_, ok := Locate("   ", shipments)
	assert.False(t, ok)
}

func TestLocateFirstMatchWinsOnDuplicates(t *testing.T) {
	shipments := []Record{
		shipment(map[string]string{"REFERANCE": "SHP-001", "SHIPPER_NAME": "First"}),
		shipment(map[string]string{"REFERANCE": "SHP-001", "SHIPPER_NAME": "Second"}),
	}

	rec, ok := Locate("SHP-001", shipments)
	require.True(t, ok)
	v, _ := rec.Get("SHIPPER_NAME")
	assert.Equal(t, "First", v)
}

func TestLocateReferenceCheckedBeforeTrackingPerRecord(t *testing.T) {
	// A record whose tracking number equals another record's reference:
	// the scan is record-by-record, so the earlier record wins.
	shipments := []Record{
		shipment(map[string]string{"REFERANCE": "AAA", "AWB_NUMBER": "SHP-9"}),
		shipment(map[string]string{"REFERANCE": "SHP-9"}),
	}

	rec, ok := Locate("SHP-9", shipments)
	require.True(t, ok)
	v, _ := rec.Get("REFERANCE")
	assert.Equal(t, "AAA", v)
}
