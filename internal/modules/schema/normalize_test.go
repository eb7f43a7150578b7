package schema

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeCategories_LegacyArrayShape(t *testing.T) {
	raw := []byte(`{"watt":["5W","10W"],"productType":{"label":"PRODUCT TYPE","values":["ALL","DOWNLIGHT"]}}`)

	got, changed, err := normalizeCategories(raw)
	if err != nil {
		t.Fatalf("normalizeCategories() error = %v", err)
	}
	if !changed {
		t.Fatal("normalizeCategories() changed = false, want true for legacy entry")
	}

	want := map[string]CategoryDefinition{
		"watt":             {Label: "WATT", Values: []string{"5W", "10W"}},
		PrimaryCategoryKey: {Label: "PRODUCT TYPE", Values: []string{"ALL", "DOWNLIGHT"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeCategories() = %#v, want %#v", got, want)
	}
}

func TestNormalizeCategories_Idempotent(t *testing.T) {
	raw := []byte(`{"watt":["5W","10W"],"cct":{"label":"CCT","values":["3000K"]}}`)

	once, changed, err := normalizeCategories(raw)
	if err != nil {
		t.Fatalf("first pass error = %v", err)
	}
	if !changed {
		t.Fatal("first pass changed = false, want true")
	}

	reEncoded, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}

	twice, changed, err := normalizeCategories(reEncoded)
	if err != nil {
		t.Fatalf("second pass error = %v", err)
	}
	if changed {
		t.Fatal("second pass changed = true, want no-op on normalized data")
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second pass = %#v, want %#v", twice, once)
	}
}

func TestNormalizeCategories_Empty(t *testing.T) {
	got, changed, err := normalizeCategories(nil)
	if err != nil {
		t.Fatalf("normalizeCategories(nil) error = %v", err)
	}
	if changed {
		t.Fatal("normalizeCategories(nil) changed = true, want false")
	}
	if len(got) != 0 {
		t.Fatalf("normalizeCategories(nil) = %v, want empty map", got)
	}
}

func TestDocumentClone_Isolated(t *testing.T) {
	doc := DefaultDocument()
	clone := doc.Clone()

	clone.Categories["watt"] = CategoryDefinition{Label: "X", Values: []string{"mutated"}}
	clone.Columns[0].Label = "mutated"

	if doc.Categories["watt"].Label != "WATT" {
		t.Fatal("Clone() shares category map with original")
	}
	if doc.Columns[0].Label != "ITEM" {
		t.Fatal("Clone() shares column slice with original")
	}
}

func TestColumnByID(t *testing.T) {
	doc := DefaultDocument()
	if col, ok := doc.ColumnByID("voltage"); !ok || col.Label != "VOLTAGE" {
		t.Fatalf("ColumnByID(voltage) = %v, %v", col, ok)
	}
	if _, ok := doc.ColumnByID("missing"); ok {
		t.Fatal("ColumnByID(missing) = true, want false")
	}
}
