package specsheet

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ororso11/m-led/internal/modules/products"
	"github.com/ororso11/m-led/internal/modules/schema"
)

// Input carries the user-entered header fields for one export.
type Input struct {
	Code     string
	Project  string
	Area     string
	Location string
}

var pathUnsafe = regexp.MustCompile(`[\\/:*?"<>|]`)

// HasUnsafeChars reports whether the code contains characters that cannot
// appear in a download filename.
func HasUnsafeChars(code string) bool {
	return pathUnsafe.MatchString(code)
}

// SanitizeCode turns the user-supplied product code into a safe filename
// stem, substituting underscores for path-unsafe characters.
func SanitizeCode(code string) string {
	code = strings.TrimSpace(code)
	code = pathUnsafe.ReplaceAllString(code, "_")
	if code == "" {
		return "PRODUCT"
	}
	return code
}

const (
	maxSubImages = 3
	maxMarks     = 6
)

// Generator draws the fixed one-page spec sheet template.
type Generator struct {
	fetcher *Fetcher
}

func NewGenerator(fetcher *Fetcher) *Generator {
	return &Generator{fetcher: fetcher}
}

// Generate fetches the product's images and lays out the sheet: header
// fields, a code/note/date sidebar, main image with a sub-image strip, the
// specification table in declared column order, and a marks footer.
// Returns the PDF bytes and the download filename.
func (g *Generator) Generate(ctx context.Context, rec products.Record, columns []schema.TableColumn, in Input) ([]byte, string, error) {
	mainImg, err := g.fetcher.Fetch(ctx, rec.Thumbnail)
	if err != nil {
		return nil, "", err
	}

	var subImgs []*FetchedImage
	for i, u := range rec.DetailImages {
		if i >= maxSubImages {
			break
		}
		img, err := g.fetcher.Fetch(ctx, u)
		if err != nil {
			return nil, "", err
		}
		if img != nil {
			subImgs = append(subImgs, img)
		}
	}

	type fetchedMark struct {
		mark products.Mark
		img  *FetchedImage
	}
	var marks []fetchedMark
	for i, m := range rec.Marks {
		if i >= maxMarks {
			break
		}
		img, err := g.fetcher.Fetch(ctx, m.ImageURL)
		if err != nil {
			return nil, "", err
		}
		if img != nil || strings.TrimSpace(m.Name) != "" {
			marks = append(marks, fetchedMark{mark: m, img: img})
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Header: title and project line.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(120, 10, "SPECIFICATION SHEET", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 10, time.Now().Format("2006.01.02"), "", 1, "R", false, 0, "")

	headerField(pdf, "PROJECT", in.Project, 156, true)
	headerField(pdf, "AREA", in.Area, 64, false)
	headerField(pdf, "LOCATION", in.Location, 62, true)
	pdf.Ln(3)

	pdf.SetLineWidth(0.6)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(4)

	// Left: main image plus sub-image strip. Right: code/type/note sidebar.
	imgTop := pdf.GetY()
	if mainImg != nil {
		drawImage(pdf, "main", mainImg, 15, imgTop, 95, 85)
	} else {
		placeholderBox(pdf, 15, imgTop, 95, 85)
	}
	for i, img := range subImgs {
		x := 15 + float64(i)*33
		drawImage(pdf, fmt.Sprintf("sub%d", i), img, x, imgTop+88, 30, 24)
	}

	sidebarX := 118.0
	pdf.SetXY(sidebarX, imgTop)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "TYPE  "+orDash(rec.Categories[schema.PrimaryCategoryKey]), "", 2, "L", false, 0, "")
	pdf.SetX(sidebarX)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, SanitizeCode(in.Code), "", 2, "L", false, 0, "")
	pdf.SetX(sidebarX)
	pdf.SetFont("Helvetica", "", 8)
	note := rec.Specs
	if len(note) > 200 {
		note = note[:200]
	}
	pdf.MultiCell(77, 4, note, "", "L", false)
	pdf.SetX(sidebarX)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "DATE  "+time.Now().Format("2006.01.02"), "", 2, "L", false, 0, "")

	// Specification table in declared column order; a dash marks values
	// never saved for this record.
	pdf.SetY(imgTop + 118)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "PRODUCT INFORMATION", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, col := range columns {
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(45, 6, col.Label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(135, 6, orDash(rec.TableData[col.ID]), "1", 1, "L", false, 0, "")
	}

	// Marks footer.
	if len(marks) > 0 {
		pdf.Ln(4)
		x := 15.0
		y := pdf.GetY()
		for i, fm := range marks {
			if fm.img != nil {
				drawImage(pdf, fmt.Sprintf("mark%d", i), fm.img, x, y, 12, 12)
			}
			if name := strings.TrimSpace(fm.mark.Name); name != "" {
				pdf.SetXY(x-2, y+12)
				pdf.SetFont("Helvetica", "", 6)
				pdf.CellFormat(16, 3, name, "", 0, "C", false, 0, "")
			}
			x += 18
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), SanitizeCode(in.Code) + ".pdf", nil
}

func headerField(pdf *fpdf.Fpdf, label, value string, width float64, endLine bool) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(24, 6, label, "B", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	ln := 0
	if endLine {
		ln = 1
	}
	pdf.CellFormat(width, 6, value, "B", ln, "L", false, 0, "")
}

func drawImage(pdf *fpdf.Fpdf, name string, img *FetchedImage, x, y, w, h float64) {
	opts := fpdf.ImageOptions{ImageType: img.Type, ReadDpi: true}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func placeholderBox(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(200, 200, 200)
	pdf.Rect(x, y, w, h, "D")
	pdf.SetXY(x, y+h/2-3)
	pdf.SetTextColor(150, 150, 150)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(w, 6, "No Image", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
