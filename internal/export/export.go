// Package export renders the task list as a paginated PDF table.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"cleanlist/internal/tasks"
)

const (
	Title = "To-Do List"

	StatusDone    = "Done"
	StatusPending = "Pending"
)

var header = []string{"#", "Task", "Status"}

// column widths in mm; the task column takes what is left of an A4 page
const (
	indexWidth  = 12.0
	statusWidth = 28.0
	lineHeight  = 7.0
	marginLeft  = 14.0
	marginTop   = 15.0
)

type Options struct {
	DateFormat string
}

// Rows returns the table body: 1-based index, task text, status.
func Rows(list []tasks.Task) [][]string {
	rows := make([][]string, 0, len(list))
	for i, t := range list {
		rows = append(rows, []string{strconv.Itoa(i + 1), t.Text, Status(t)})
	}
	return rows
}

func Status(t tasks.Task) string {
	if t.Completed {
		return StatusDone
	}
	return StatusPending
}

// WriteFile creates the parent directory if needed and writes the document
// to path, replacing any existing file.
func WriteFile(path string, list []tasks.Task, generated time.Time, opts Options) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, list, generated, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write renders the document. It does not check for an empty list.
func Write(w io.Writer, list []tasks.Task, generated time.Time, opts Options) error {
	layout := opts.DateFormat
	if layout == "" {
		layout = "1/2/2006"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title, true)
	pdf.SetCreationDate(generated)
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetAutoPageBreak(false, marginTop)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 18)
	pdf.Text(marginLeft, 15, Title)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginLeft, 22, "Generated: "+generated.Format(layout))
	pdf.SetY(25)

	pageW, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	taskWidth := pageW - 2*marginLeft - indexWidth - statusWidth
	widths := []float64{indexWidth, taskWidth, statusWidth}

	drawHeader(pdf, widths)
	pdf.SetFont("Helvetica", "", 10)
	headerH := lineHeight + 1
	perPage := int((pageH - bottom - marginTop - headerH) / lineHeight)
	newPage := func() {
		pdf.AddPage()
		drawHeader(pdf, widths)
		pdf.SetFont("Helvetica", "", 10)
	}
	for _, row := range Rows(list) {
		lines := pdf.SplitText(tr(row[1]), taskWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		// a row that fits on a fresh page is never split; taller rows are
		// continued across as many pages as they need
		if free := linesLeft(pdf, pageH-bottom); free < len(lines) && (free < 1 || len(lines) <= perPage) {
			newPage()
		}
		for len(lines) > 0 {
			n := min(linesLeft(pdf, pageH-bottom), len(lines))
			drawRowPiece(pdf, widths, row, lines[:n])
			lines = lines[n:]
			if len(lines) > 0 {
				newPage()
			}
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func linesLeft(pdf *fpdf.Fpdf, limit float64) int {
	return int((limit - pdf.GetY()) / lineHeight)
}

// drawRowPiece draws one table row, or the part of it that fits on the
// current page.
func drawRowPiece(pdf *fpdf.Fpdf, widths []float64, row []string, lines []string) {
	rowH := float64(len(lines)) * lineHeight
	x, y := pdf.GetX(), pdf.GetY()
	pdf.CellFormat(widths[0], rowH, row[0], "1", 0, "C", false, 0, "")
	pdf.Rect(x+widths[0], y, widths[1], rowH, "D")
	for i, line := range lines {
		pdf.SetXY(x+widths[0], y+float64(i)*lineHeight)
		pdf.CellFormat(widths[1], lineHeight, line, "", 0, "L", false, 0, "")
	}
	pdf.SetXY(x+widths[0]+widths[1], y)
	pdf.CellFormat(widths[2], rowH, row[2], "1", 1, "C", false, 0, "")
}

func drawHeader(pdf *fpdf.Fpdf, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(108, 92, 231)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(80, 80, 80)
	for i, h := range header {
		ln := 0
		if i == len(header)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], lineHeight+1, h, "1", ln, "C", true, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}
