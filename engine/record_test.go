package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCaseInsensitiveLookup(t *testing.T) {
	rec := NewRecordFromStrings(map[string]string{"AWB_NUMBER": "123"})

	v, ok := rec.First([]string{"awb_number", "AWB"})
	require.True(t, ok)
	assert.Equal(t, "123", v)

	v, ok = rec.Get("Awb_Number")
	require.True(t, ok)
	assert.Equal(t, "123", v)
}

func TestRecordFirstNonEmptyWins(t *testing.T) {
	rec := NewRecordFromStrings(map[string]string{
		"REFERANCE":  "",
		"INVOICE_NO": "INV1",
	})

	v, ok := rec.First([]string{"REFERANCE", "INVOICE_NO"})
	require.True(t, ok)
	assert.Equal(t, "INV1", v)
}

func TestRecordWhitespaceOnlyIsAbsent(t *testing.T) {
	rec := NewRecordFromStrings(map[string]string{
		"REF_NO":     "   ",
		"INVOICE_NO": "INV2",
	})

	v, ok := rec.First([]string{"REF_NO", "INVOICE_NO"})
	require.True(t, ok)
	assert.Equal(t, "INV2", v)

	_, ok = rec.First([]string{"REF_NO"})
	assert.False(t, ok)
}

func TestRecordNoCandidateMatches(t *testing.T) {
	rec := NewRecordFromStrings(map[string]string{"NAME": "A"})

	_, ok := rec.First([]string{"INVOICE_NO", "REF_NO"})
	assert.False(t, ok)

	_, ok = rec.First(nil)
	assert.False(t, ok)
}

func TestNewRecordScalarConversion(t *testing.T) {
	rec := NewRecord(map[string]interface{}{
		"PACKAGE_COUNT": float64(12),
		"GROSS_WEIGHT":  12.5,
		"NOTES":         nil,
		"ACTIVE":        true,
		"NAME":          "  Acme  ",
	})

	v, _ := rec.Get("package_count")
	assert.Equal(t, "12", v)
	v, _ = rec.Get("gross_weight")
	assert.Equal(t, "12.5", v)
	v, _ = rec.Get("name")
	assert.Equal(t, "Acme", v)
	v, _ = rec.Get("active")
	assert.Equal(t, "true", v)
	v, ok := rec.Get("notes")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestNewRecordFoldCollisionIsDeterministic(t *testing.T) {
	// Raw keys that fold to the same name: sorted raw-key order decides,
	// so "Ref_No" (sorting before "ref_no") wins on every run.
	for i := 0; i < 20; i++ {
		rec := NewRecord(map[string]interface{}{
			"Ref_No": "first",
			"ref_no": "second",
		})
		v, ok := rec.Get("REF_NO")
		require.True(t, ok)
		assert.Equal(t, "first", v)
		assert.Equal(t, 1, rec.Len())
	}
}

func TestRecordKeysFirstSeenOrder(t *testing.T) {
	rec := NewRecordFromStrings(map[string]string{"b": "2", "a": "1", "c": "3"})
	assert.Equal(t, []string{"A", "B", "C"}, rec.Keys())
}
