package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateInvoiceRegisterExcel creates an Excel workbook listing all
// invoices and returns the file contents as a byte slice.
func GenerateInvoiceRegisterExcel(rows []InvoiceRegisterRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Invoices"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through I).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 18, 14, 30, 14, 14, 16, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// Row 1: Title merged across all columns.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Invoice Register")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Row 3: Column headers.
	headers := []string{"#", "Invoice No", "Date", "Party", "Status", "Payment", "Subtotal", "GST", "Grand Total"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s3", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	// Data rows (starting row 4).
	row := 4
	var totalGrand float64
	for i, r := range rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, i+1)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.InvoiceNumber))
		f.SetCellValue(sheetName, "C"+rowStr, r.InvoiceDate)
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.PartyName))
		f.SetCellValue(sheetName, "E"+rowStr, r.Status)
		f.SetCellValue(sheetName, "F"+rowStr, sanitizeExcelCell(r.PaymentMode))
		f.SetCellValue(sheetName, "G"+rowStr, FormatINR(r.Subtotal))
		f.SetCellValue(sheetName, "H"+rowStr, FormatINR(r.GSTTotal))
		f.SetCellValue(sheetName, "I"+rowStr, FormatINR(r.GrandTotal))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, rowStyle)

		totalGrand += r.GrandTotal
		row++
	}

	// Summary row after a blank line.
	row++
	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "H"+summaryRow, "Total:")
	f.SetCellStyle(sheetName, "H"+summaryRow, "H"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "I"+summaryRow, FormatINR(totalGrand))
	f.SetCellStyle(sheetName, "I"+summaryRow, "I"+summaryRow, summaryValueStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
