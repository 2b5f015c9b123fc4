package engine

import "strings"

// Shipment rows may identify themselves by reference number or by carrier
// tracking number; the user types whichever they have at hand. The legacy
// REFERANCE spelling is what the primary feed actually ships.
var (
	referenceIdentifierKeys = []string{"REFERANCE", "REFERENCE", "REF_NO"}
	trackingIdentifierKeys  = []string{"AWB_NUMBER", "TRACKING_NO", "BL_NUMBER"}
)

// Locate scans the shipment collection for the record whose reference
// identifier or tracking identifier equals the token, compared
// case-insensitively after trimming. The slice's insertion order makes the
// scan deterministic: when duplicates exist the first record wins.
//
// A miss is a normal outcome signaled via ok=false, never an error.
func Locate(referenceToken string, shipments []Record) (Record, bool) {
	token := FoldKey(referenceToken)
	if token == "" {
		return Record{}, false
	}
	for _, rec := range shipments {
		if matchesIdentifier(rec, referenceIdentifierKeys, token) {
			return rec, true
		}
		if matchesIdentifier(rec, trackingIdentifierKeys, token) {
			return rec, true
		}
	}
	return Record{}, false
}

func matchesIdentifier(rec Record, keys []string, token string) bool {
	for _, k := range keys {
		if v, ok := rec.Get(k); ok && strings.EqualFold(strings.TrimSpace(v), token) {
			return true
		}
	}
	return false
}

// ReferenceIdentifier returns the record's own reference identifier, used as
// the item-record linkage value during aggregation.
func ReferenceIdentifier(rec Record) (string, bool) {
	return rec.First(referenceIdentifierKeys)
}
