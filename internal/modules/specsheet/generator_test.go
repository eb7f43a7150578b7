package specsheet

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ororso11/m-led/internal/modules/products"
	"github.com/ororso11/m-led/internal/modules/schema"
)

func TestSanitizeCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"DL-1041", "DL-1041"},
		{`A/B\C:D`, "A_B_C_D"},
		{"  ", "PRODUCT"},
		{"", "PRODUCT"},
	}
	for _, tc := range cases {
		if got := SanitizeCode(tc.in); got != tc.want {
			t.Fatalf("SanitizeCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHasUnsafeChars(t *testing.T) {
	if HasUnsafeChars("DL-1041") {
		t.Fatal("HasUnsafeChars(DL-1041) = true, want false")
	}
	if !HasUnsafeChars("a*b") {
		t.Fatal(`HasUnsafeChars(a*b) = false, want true`)
	}
}

func TestCategorizeError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{errors.New("context deadline exceeded"), "timed out"},
		{errors.New("network unreachable"), "network error"},
		{errors.New("out of memory"), "memory"},
		{errors.New("something else"), "generation failed"},
	}
	for _, tc := range cases {
		got := CategorizeError(tc.err)
		if !strings.Contains(got, tc.want) {
			t.Fatalf("CategorizeError(%v) = %q, want substring %q", tc.err, got, tc.want)
		}
	}
	if got := CategorizeError(nil); got != "" {
		t.Fatalf("CategorizeError(nil) = %q, want empty", got)
	}
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestFetcher_SkipsUnavailableImages(t *testing.T) {
	pngBytes := tinyPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Write(pngBytes)
		case "/slow.png":
			time.Sleep(200 * time.Millisecond)
			w.Write(pngBytes)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewFetcher("", 50*time.Millisecond)

	img, err := f.Fetch(context.Background(), srv.URL+"/ok.png")
	if err != nil || img == nil || img.Type != "PNG" {
		t.Fatalf("Fetch(ok) = %v, %v, want PNG data", img, err)
	}

	img, err = f.Fetch(context.Background(), srv.URL+"/missing.png")
	if err != nil || img != nil {
		t.Fatalf("Fetch(404) = %v, %v, want skip with no error", img, err)
	}

	img, err = f.Fetch(context.Background(), srv.URL+"/slow.png")
	if err != nil || img != nil {
		t.Fatalf("Fetch(timeout) = %v, %v, want skip with no error", img, err)
	}
}

func TestGenerate_ProducesPDFNamedAfterCode(t *testing.T) {
	pngBytes := tinyPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngBytes)
	}))
	defer srv.Close()

	rec := products.Record{
		ID:           "p1",
		Name:         "LED Downlight 10W",
		Thumbnail:    srv.URL + "/thumb.png",
		DetailImages: []string{srv.URL + "/d1.png"},
		Specs:        "10W / 3000K / IP44",
		TableData:    map[string]string{"voltage": "AC 220V"},
		Categories:   map[string]string{schema.PrimaryCategoryKey: "DOWNLIGHT"},
		Marks:        []products.Mark{{Name: "CE", ImageURL: srv.URL + "/ce.png"}},
	}
	columns := []schema.TableColumn{
		{ID: "voltage", Label: "VOLTAGE"},
		{ID: "current", Label: "CURRENT"},
	}

	gen := NewGenerator(NewFetcher("", time.Second))
	data, name, err := gen.Generate(context.Background(), rec, columns, Input{Code: "DL/1041"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if name != "DL_1041.pdf" {
		t.Fatalf("Generate() filename = %q, want %q", name, "DL_1041.pdf")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("Generate() output does not look like a PDF (%d bytes)", len(data))
	}
}

func TestGenerate_MissingImagesStillExports(t *testing.T) {
	rec := products.Record{
		ID:         "p1",
		Name:       "LED Downlight 10W",
		Thumbnail:  "http://127.0.0.1:1/unreachable.png",
		TableData:  map[string]string{},
		Categories: map[string]string{},
	}

	gen := NewGenerator(NewFetcher("", 100*time.Millisecond))
	data, _, err := gen.Generate(context.Background(), rec, []schema.TableColumn{{ID: "voltage", Label: "VOLTAGE"}}, Input{Code: "X"})
	if err != nil {
		t.Fatalf("Generate() error = %v, want export without images", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("Generate() output does not look like a PDF")
	}
}
