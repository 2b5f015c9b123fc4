package engine

// Item rows link back to their shipment through a system-generated reference
// value, so that one comparison is exact-case; account linkage likewise.
var (
	itemLinkageKeys   = []string{"SHIPMENT_REF", "REFERANCE"}
	accountCodeKeys   = []string{"CLIENT_CODE", "ACCOUNT_CODE", "CUSTOMER_CODE"}
	accountLookupKeys = []string{"CODE", "CLIENT_CODE", "ACCOUNT_CODE"}
)

// Overlay merges the given layers into one composite record. Later layers
// win: a key present in more than one layer takes the value from the last
// layer carrying it. Inputs are never mutated; the composite is a fresh
// record owned by the caller.
func Overlay(layers ...Record) Record {
	composite := Record{values: make(map[string]string)}
	for _, layer := range layers {
		for _, k := range layer.keys {
			if _, seen := composite.values[k]; !seen {
				composite.keys = append(composite.keys, k)
			}
			composite.values[k] = layer.values[k]
		}
	}
	return composite
}

// Aggregate builds the composite record for one located shipment by pulling
// in the linked item and client rows. Precedence is the explicit layer list
// primary → item → client; absence of an item or client match is normal and
// aggregation proceeds with whatever was found.
func Aggregate(primary Record, items []Record, clients []Record) Record {
	layers := []Record{primary}

	if ref, ok := ReferenceIdentifier(primary); ok {
		if item, found := findByExactValue(items, itemLinkageKeys, ref); found {
			layers = append(layers, item)
		}
	}

	if code, ok := primary.First(accountCodeKeys); ok {
		if client, found := findByExactValue(clients, accountLookupKeys, code); found {
			layers = append(layers, client)
		}
	}

	return Overlay(layers...)
}

// findByExactValue returns the first record whose linkage field equals want.
// The comparison is case-sensitive: linkage values are system-generated
// identifiers, not user input.
func findByExactValue(records []Record, keys []string, want string) (Record, bool) {
	for _, rec := range records {
		for _, k := range keys {
			if v, ok := rec.Get(k); ok && v != "" && v == want {
				return rec, true
			}
		}
	}
	return Record{}, false
}
