package catalog

import (
	"testing"

	"github.com/ororso11/m-led/internal/modules/products"
)

func rec(id, name string, categories map[string]string) products.Record {
	if categories == nil {
		categories = map[string]string{}
	}
	return products.Record{ID: id, Name: name, Categories: categories}
}

func TestApply_PrimaryClassificationSentinel(t *testing.T) {
	list := []products.Record{
		rec("1", "A", map[string]string{"productType": "A"}),
		rec("2", "B", map[string]string{"productType": "B"}),
	}

	all := Apply(list, Filters{PrimaryType: "ALL"})
	if len(all) != 2 {
		t.Fatalf("Apply(ALL) = %d records, want 2", len(all))
	}

	onlyA := Apply(list, Filters{PrimaryType: "A"})
	if len(onlyA) != 1 || onlyA[0].ID != "1" {
		t.Fatalf("Apply(A) = %v, want exactly record 1", onlyA)
	}
}

func TestApply_SearchKeyword(t *testing.T) {
	list := []products.Record{
		rec("1", "LED Downlight 10W", nil),
		rec("2", "LED Panel 20W", nil),
	}

	got := Apply(list, Filters{Search: "downlight"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("Apply(search=downlight) = %v, want only the downlight", got)
	}
}

func TestApply_SearchCoversSpecsAndProductNumber(t *testing.T) {
	list := []products.Record{
		{ID: "1", Name: "Alpha", Specs: "IP65 waterproof", Categories: map[string]string{}},
		{ID: "2", Name: "Beta", ProductNumber: "ML-4421", Categories: map[string]string{}},
		{ID: "3", Name: "Gamma", Categories: map[string]string{}},
	}

	if got := Apply(list, Filters{Search: "ip65"}); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("search over specs = %v", got)
	}
	if got := Apply(list, Filters{Search: "ml-44"}); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("search over product number = %v", got)
	}
}

func TestApply_MultiSelectCategories(t *testing.T) {
	list := []products.Record{
		rec("1", "A", map[string]string{"productType": "A", "watt": "10W"}),
		rec("2", "B", map[string]string{"productType": "A", "watt": "20W"}),
		rec("3", "C", map[string]string{"productType": "A"}),
	}

	got := Apply(list, Filters{Categories: map[string][]string{"watt": {"10W", "20W"}}})
	if len(got) != 2 {
		t.Fatalf("Apply(watt in {10W,20W}) = %v, want 2", got)
	}

	// Empty selection list imposes no constraint.
	got = Apply(list, Filters{Categories: map[string][]string{"watt": {}}})
	if len(got) != 3 {
		t.Fatalf("Apply(watt empty) = %d, want all 3", len(got))
	}
}

func TestApply_OrphanedValueNeverMatchesNeverPanics(t *testing.T) {
	list := []products.Record{
		rec("1", "A", map[string]string{"productType": "A", "cct": "deleted-value"}),
	}

	got := Apply(list, Filters{Categories: map[string][]string{"cct": {"3000K"}}})
	if len(got) != 0 {
		t.Fatalf("Apply() matched an orphaned selection: %v", got)
	}
}

func TestApply_RelaxingAFilterNeverShrinksResults(t *testing.T) {
	list := []products.Record{
		rec("1", "LED Downlight 10W", map[string]string{"productType": "A", "watt": "10W"}),
		rec("2", "LED Panel 20W", map[string]string{"productType": "B", "watt": "20W"}),
		rec("3", "LED Strip", map[string]string{"productType": "A"}),
	}
	strict := Filters{
		Search:      "led",
		PrimaryType: "A",
		Categories:  map[string][]string{"watt": {"10W"}},
	}
	base := len(Apply(list, strict))

	relaxed := []Filters{
		{Search: "", PrimaryType: strict.PrimaryType, Categories: strict.Categories},
		{Search: strict.Search, PrimaryType: "ALL", Categories: strict.Categories},
		{Search: strict.Search, PrimaryType: strict.PrimaryType, Categories: nil},
	}
	for i, f := range relaxed {
		if got := len(Apply(list, f)); got < base {
			t.Fatalf("relaxing filter %d shrank results: %d < %d", i, got, base)
		}
	}
}
