package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"

	"flextrack/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

// utf8BOM keeps accented headers intact when the CSV lands in a spreadsheet.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportService renders a finished report Table into downloadable bytes.
// A failed render returns no bytes; callers never ship a partial file.
type ExportService struct {
	RequestID string
}

func (s ExportService) CSV(t Table) ([]byte, string, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(t.Headers); err != nil {
		return nil, "", err
	}
	for _, row := range t.Rows {
		if err := w.Write(cellTexts(row)); err != nil {
			return nil, "", err
		}
	}
	if err := w.Write([]string{}); err != nil {
		return nil, "", err
	}
	if err := w.Write(cellTexts(t.Totals)); err != nil {
		return nil, "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := t.BaseName + ".csv"
	utils.LogEvent(s.RequestID, "export", "csv", fmt.Sprintf("file=%s rows=%d", filename, len(t.Rows)))
	return buf.Bytes(), filename, nil
}

func cellTexts(cells []Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Text
	}
	return out
}

func (s ExportService) PDF(t Table) ([]byte, string, error) {
	const (
		left      = 10.0
		top       = 12.0
		bottom    = 15.0
		rowHeight = 5.5
	)

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(t.Title), false)
	// page breaks are driven by the row cursor so headers can be redrawn
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	_, pageH := pdf.GetPageSize()

	pdf.SetXY(left, top)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetX(left)
	pdf.CellFormat(0, 6, tr(t.Period), "", 1, "L", false, 0, "")
	for _, line := range t.Summary {
		pdf.SetX(left)
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	writeHeader := func() {
		pdf.SetX(left)
		pdf.SetFont("Helvetica", "B", 9)
		for i, h := range t.Headers {
			pdf.CellFormat(t.Widths[i], rowHeight, tr(h), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(rowHeight)
		pdf.SetFont("Helvetica", "", 9)
	}
	breakPage := func() {
		pdf.AddPage()
		pdf.SetXY(left, top)
		writeHeader()
	}

	writeHeader()
	for _, row := range t.Rows {
		if pdf.GetY()+rowHeight > pageH-bottom {
			breakPage()
		}
		pdf.SetX(left)
		for i, cell := range row {
			align := "L"
			if cell.IsNum {
				align = "R"
			}
			pdf.CellFormat(t.Widths[i], rowHeight, tr(cell.Text), "", 0, align, false, 0, "")
		}
		pdf.Ln(rowHeight)
	}

	if pdf.GetY()+2*rowHeight > pageH-bottom {
		breakPage()
	}
	pdf.Ln(2)
	pdf.SetX(left)
	pdf.SetFont("Helvetica", "B", 9)
	for i, cell := range t.Totals {
		align := "L"
		if cell.IsNum {
			align = "R"
		}
		pdf.CellFormat(t.Widths[i], rowHeight, tr(cell.Text), "T", 0, align, false, 0, "")
	}
	pdf.Ln(rowHeight)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := t.BaseName + ".pdf"
	utils.LogEvent(s.RequestID, "export", "pdf", fmt.Sprintf("file=%s rows=%d", filename, len(t.Rows)))
	return buf.Bytes(), filename, nil
}

const workbookSheet = "Relatório"

func (s ExportService) XLSX(t Table) ([]byte, string, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(workbookSheet)
	if err != nil {
		return nil, "", err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, h := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(workbookSheet, cell, h)
	}

	rowIndex := 2
	for _, row := range t.Rows {
		if err := writeWorkbookRow(f, rowIndex, row); err != nil {
			return nil, "", err
		}
		rowIndex++
	}
	rowIndex++ // blank separator before the totals line
	if err := writeWorkbookRow(f, rowIndex, t.Totals); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := t.BaseName + ".xlsx"
	utils.LogEvent(s.RequestID, "export", "xlsx", fmt.Sprintf("file=%s rows=%d", filename, len(t.Rows)))
	return buf.Bytes(), filename, nil
}

// writeWorkbookRow emits typed numeric cells so the workbook recalculates
// instead of holding preformatted strings.
func writeWorkbookRow(f *excelize.File, rowIndex int, cells []Cell) error {
	for i, c := range cells {
		name, err := excelize.CoordinatesToCellName(i+1, rowIndex)
		if err != nil {
			return err
		}
		if c.IsNum {
			if err := f.SetCellValue(workbookSheet, name, roundTo(c.Num, c.Prec)); err != nil {
				return err
			}
			continue
		}
		if c.Text == "" {
			continue
		}
		if err := f.SetCellValue(workbookSheet, name, c.Text); err != nil {
			return err
		}
	}
	return nil
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
