package services

import (
	"bytes"
	"strings"
	"testing"

	"flextrack/internal/utils"

	"github.com/xuri/excelize/v2"
)

func fixtureTable() Table {
	loc := utils.LocaleBR
	return Table{
		Title:    "Relatório de turnos",
		Period:   "Período: 01/06/2024 a 30/06/2024",
		Summary:  []string{"Ganhos: R$ 135,00 | Líquido: R$ 115,00"},
		Headers:  []string{"Data", "Horas", "Ganhos", "Notas"},
		Widths:   []float64{24, 16, 24, 60},
		BaseName: "relatorio_2024-06-01_2024-06-30",
		Rows: [][]Cell{
			{textCell("01/06/2024"), qtyCell(4, loc), moneyCell(135, loc), textCell("manhã cheia")},
			{textCell("02/06/2024"), qtyCell(3, loc), moneyCell(0, loc), textCell("")},
		},
		Totals: []Cell{textCell("Totais"), qtyCell(7, loc), moneyCell(135, loc), textCell("Dias: 2")},
	}
}

func TestExportCSV(t *testing.T) {
	svc := ExportService{}
	data, filename, err := svc.CSV(fixtureTable())
	if err != nil {
		t.Fatalf("CSV error: %v", err)
	}
	if filename != "relatorio_2024-06-01_2024-06-30.csv" {
		t.Fatalf("filename: got %q", filename)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("missing UTF-8 BOM")
	}

	body := string(data[3:])
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if lines[0] != "Data;Horas;Ganhos;Notas" {
		t.Fatalf("header line: got %q", lines[0])
	}
	if lines[1] != "01/06/2024;4,0;135,00;manhã cheia" {
		t.Fatalf("first row: got %q", lines[1])
	}
	if lines[len(lines)-1] != "Totais;7,0;135,00;Dias: 2" {
		t.Fatalf("totals line: got %q", lines[len(lines)-1])
	}
}

func TestExportCSVDeterministic(t *testing.T) {
	svc := ExportService{}
	first, _, err := svc.CSV(fixtureTable())
	if err != nil {
		t.Fatalf("CSV error: %v", err)
	}
	second, _, err := svc.CSV(fixtureTable())
	if err != nil {
		t.Fatalf("CSV error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("same table must export to identical bytes")
	}
}

func TestExportPDF(t *testing.T) {
	svc := ExportService{}
	data, filename, err := svc.PDF(fixtureTable())
	if err != nil {
		t.Fatalf("PDF error: %v", err)
	}
	if filename != "relatorio_2024-06-01_2024-06-30.pdf" {
		t.Fatalf("filename: got %q", filename)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
}

func TestExportPDFManyRowsPaginates(t *testing.T) {
	tab := fixtureTable()
	loc := utils.LocaleBR
	for i := 0; i < 200; i++ {
		tab.Rows = append(tab.Rows, []Cell{
			textCell("03/06/2024"), qtyCell(1, loc), moneyCell(10, loc), textCell(""),
		})
	}

	data, _, err := ExportService{}.PDF(tab)
	if err != nil {
		t.Fatalf("PDF error: %v", err)
	}
	// a landscape A4 page fits well under 202 rows, so there must be more than
	// one /Type /Page object besides the /Pages root
	if n := bytes.Count(data, []byte("/Type /Page")); n < 3 {
		t.Fatalf("expected a multi-page document, found %d page markers", n)
	}
}

func TestExportXLSX(t *testing.T) {
	svc := ExportService{}
	data, filename, err := svc.XLSX(fixtureTable())
	if err != nil {
		t.Fatalf("XLSX error: %v", err)
	}
	if filename != "relatorio_2024-06-01_2024-06-30.xlsx" {
		t.Fatalf("filename: got %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Relatório", "A1")
	if err != nil || header != "Data" {
		t.Fatalf("header cell: got %q err %v", header, err)
	}
	hours, err := f.GetCellValue("Relatório", "B2")
	if err != nil || hours != "4" {
		t.Fatalf("numeric cell should hold the typed value: got %q err %v", hours, err)
	}
	// row 3 is the last data row, row 4 stays blank, row 5 holds the totals
	label, err := f.GetCellValue("Relatório", "A5")
	if err != nil || label != "Totais" {
		t.Fatalf("totals label: got %q err %v", label, err)
	}
	total, err := f.GetCellValue("Relatório", "C5")
	if err != nil || total != "135" {
		t.Fatalf("totals value: got %q err %v", total, err)
	}
}
