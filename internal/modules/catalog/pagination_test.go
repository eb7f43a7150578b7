package catalog

import (
	"fmt"
	"testing"

	"github.com/ororso11/m-led/internal/modules/products"
)

func makeRecords(n int) []products.Record {
	out := make([]products.Record, n)
	for i := range out {
		out[i] = products.Record{ID: fmt.Sprintf("p%03d", i)}
	}
	return out
}

func TestSlice_PageSizeBound(t *testing.T) {
	list := makeRecords(75)
	for page := 1; page <= 3; page++ {
		got, _ := Slice(list, page, 30)
		if len(got) > 30 {
			t.Fatalf("page %d has %d items, want <= 30", page, len(got))
		}
	}
}

func TestSlice_ConcatenationReconstructsList(t *testing.T) {
	list := makeRecords(75)
	_, pg := Slice(list, 1, 30)

	var all []products.Record
	for page := 1; page <= pg.TotalPages; page++ {
		items, _ := Slice(list, page, 30)
		all = append(all, items...)
	}
	if len(all) != len(list) {
		t.Fatalf("concatenated %d items, want %d", len(all), len(list))
	}
	for i := range all {
		if all[i].ID != list[i].ID {
			t.Fatalf("item %d = %s, want %s (order/duplicates broken)", i, all[i].ID, list[i].ID)
		}
	}
}

func TestSlice_ClampsOutOfRangePages(t *testing.T) {
	list := makeRecords(10)

	got, pg := Slice(list, 99, 30)
	if pg.Page != 1 || len(got) != 10 {
		t.Fatalf("Slice(page=99) = page %d with %d items, want clamp to 1", pg.Page, len(got))
	}

	got, pg = Slice(list, 0, 30)
	if pg.Page != 1 || len(got) != 10 {
		t.Fatalf("Slice(page=0) = page %d with %d items, want clamp to 1", pg.Page, len(got))
	}
}

func TestSlice_EmptyList(t *testing.T) {
	got, pg := Slice(nil, 1, 30)
	if len(got) != 0 || pg.TotalPages != 0 || pg.HasNext || pg.HasPrev {
		t.Fatalf("Slice(nil) = %v, %+v", got, pg)
	}
}

func TestPageItems_WindowAndEllipsis(t *testing.T) {
	// 20 pages, current 10: expect 1, gap, 8..12, gap, 20.
	items := pageItems(10, 20)

	want := []PageItem{
		{Number: 1},
		{Ellipsis: true},
		{Number: 8}, {Number: 9}, {Number: 10, Active: true}, {Number: 11}, {Number: 12},
		{Ellipsis: true},
		{Number: 20},
	}
	if len(items) != len(want) {
		t.Fatalf("pageItems(10,20) = %+v, want %+v", items, want)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("pageItems(10,20)[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestPageItems_ClampedAtStart(t *testing.T) {
	// Current page 1 of 20: window 1..5, then gap and last page.
	items := pageItems(1, 20)
	if items[0].Number != 1 || !items[0].Active {
		t.Fatalf("pageItems(1,20)[0] = %+v, want active page 1", items[0])
	}
	if items[4].Number != 5 {
		t.Fatalf("pageItems(1,20)[4] = %+v, want page 5", items[4])
	}
	if !items[5].Ellipsis || items[6].Number != 20 {
		t.Fatalf("pageItems(1,20) tail = %+v, want ellipsis then 20", items[5:])
	}
}

func TestPageItems_NoEllipsisForAdjacentGap(t *testing.T) {
	// 7 pages, current 4: window 2..6 touches both ends with a gap of one,
	// so first/last appear without ellipsis markers.
	items := pageItems(4, 7)
	want := []PageItem{
		{Number: 1},
		{Number: 2}, {Number: 3}, {Number: 4, Active: true}, {Number: 5}, {Number: 6},
		{Number: 7},
	}
	if len(items) != len(want) {
		t.Fatalf("pageItems(4,7) = %+v, want %+v", items, want)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("pageItems(4,7)[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestPageItems_SinglePageHidden(t *testing.T) {
	if items := pageItems(1, 1); items != nil {
		t.Fatalf("pageItems(1,1) = %+v, want nil", items)
	}
}
