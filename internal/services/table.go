package services

import (
	"strconv"

	"flextrack/internal/utils"
)

const (
	precMoney = 2
	precQty   = 1
)

// Cell carries both the display text and the raw numeric value, so the
// delimited and PDF exporters print the formatted string while the workbook
// exporter emits a typed number at the same precision.
type Cell struct {
	Text  string
	Num   float64
	IsNum bool
	Prec  int
}

func textCell(s string) Cell { return Cell{Text: s} }

func moneyCell(v float64, loc utils.Locale) Cell {
	return Cell{Text: utils.FormatMoney(v, loc), Num: v, IsNum: true, Prec: precMoney}
}

func qtyCell(v float64, loc utils.Locale) Cell {
	return Cell{Text: utils.FormatQty(v, loc), Num: v, IsNum: true, Prec: precQty}
}

func countCell(n int) Cell {
	return Cell{Text: strconv.Itoa(n), Num: float64(n), IsNum: true, Prec: 0}
}

// Table is the exporter-facing shape of a finished report: same columns, same
// ordering, same numbers for every output format.
type Table struct {
	Title    string
	Period   string
	Summary  []string
	Headers  []string
	Widths   []float64 // PDF column widths in mm
	Rows     [][]Cell
	Totals   []Cell
	BaseName string // filename without extension
}
