package schema

import (
	"strings"
	"testing"
)

func TestDefaultRegistryProfiles(t *testing.T) {
	reg := Default()
	profiles := reg.All()
	if len(profiles) < 10 {
		t.Fatalf("expected the shipped document set, got %d profiles", len(profiles))
	}

	for _, p := range profiles {
		if p.Type == "" || p.Name == "" {
			t.Errorf("profile missing type/name: %+v", p)
		}
		if p.ReferenceKey == "" {
			t.Errorf("%s: missing reference key", p.Type)
		}
		if _, ok := p.Field(p.ReferenceKey); !ok {
			t.Errorf("%s: reference key %q not among fields", p.Type, p.ReferenceKey)
		}
		for _, req := range p.Required {
			if _, ok := p.Field(req); !ok {
				t.Errorf("%s: required field %q not among fields", p.Type, req)
			}
			if req == p.ReferenceKey {
				t.Errorf("%s: reference input must not be a required document field", p.Type)
			}
		}
		seen := map[string]bool{}
		for _, f := range p.Fields {
			if seen[f.Key] {
				t.Errorf("%s: duplicate field %q", p.Type, f.Key)
			}
			seen[f.Key] = true
			if f.Key != strings.ToLower(f.Key) {
				t.Errorf("%s: field key %q not canonical lower-case", p.Type, f.Key)
			}
		}
	}
}

func TestRegistryGet(t *testing.T) {
	reg := Default()

	p, ok := reg.Get("commercial_invoice")
	if !ok {
		t.Fatal("commercial_invoice missing")
	}
	if !p.IsRequired("invoice_no") {
		t.Error("invoice_no should be required on a commercial invoice")
	}
	if p.IsRequired("order_no") {
		t.Error("order_no should be optional on a commercial invoice")
	}

	if _, ok := reg.Get("tax_return"); ok {
		t.Error("unknown document type should be a not-found result")
	}
}

func TestRegistryPreservesOrder(t *testing.T) {
	reg := NewRegistry([]Profile{
		{Type: "b", Name: "B"},
		{Type: "a", Name: "A"},
	})
	all := reg.All()
	if all[0].Type != "b" || all[1].Type != "a" {
		t.Fatalf("registration order not preserved: %v", all)
	}
}
