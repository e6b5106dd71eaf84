// Package sheet reads uploaded identifier spreadsheets and writes
// result workbooks. Both the HTML results table and the exported file
// are built from the same Tabulate output.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"bizstat/internal/api"
)

// preferredColumns is the column order for the fields the NTS status
// API documents. Undocumented fields are appended alphabetically.
var preferredColumns = []string{
	"b_no",
	"b_stt",
	"b_stt_cd",
	"tax_type",
	"tax_type_cd",
	"rbf_tax_type",
	"rbf_tax_type_cd",
	"end_dt",
	"utcc_yn",
	"tax_type_change_dt",
	"invoice_apply_dt",
}

// identifierHeaders are first-column labels treated as a header row
// rather than data when reading an uploaded file.
var identifierHeaders = map[string]bool{
	"b_no":     true,
	"사업자등록번호": true,
	"사업자번호":   true,
}

// ReadIdentifiers extracts the first column of an uploaded .xlsx or
// .csv file as raw identifier tokens. A recognized header row is
// skipped; everything else passes through untouched for the caller to
// normalize.
func ReadIdentifiers(filename string, r io.Reader) ([]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r)
	case ".xlsx":
		return readXLSX(r)
	default:
		return nil, fmt.Errorf("지원하지 않는 파일 형식입니다: %s", filepath.Ext(filename))
	}
}

func readCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return firstColumn(rows), nil
}

func readXLSX(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	return firstColumn(rows), nil
}

func firstColumn(rows [][]string) []string {
	var tokens []string
	for i, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		if i == 0 && identifierHeaders[strings.TrimSpace(strings.ToLower(row[0]))] {
			continue
		}
		tokens = append(tokens, row[0])
	}
	return tokens
}

// Tabulate flattens status records into a header row plus one string
// row per record. Documented fields come first in their documented
// order; any extra fields follow alphabetically.
func Tabulate(records []api.StatusRecord) ([]string, [][]string) {
	if len(records) == 0 {
		return nil, nil
	}

	present := make(map[string]bool)
	for _, rec := range records {
		for key := range rec {
			present[key] = true
		}
	}

	var headers []string
	for _, key := range preferredColumns {
		if present[key] {
			headers = append(headers, key)
			delete(present, key)
		}
	}
	var extras []string
	for key := range present {
		extras = append(extras, key)
	}
	sort.Strings(extras)
	headers = append(headers, extras...)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(headers))
		for i, key := range headers {
			if v, ok := rec[key]; ok && v != nil {
				row[i] = fmt.Sprint(v)
			}
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// WriteRecords builds an .xlsx workbook with one row per status record.
func WriteRecords(records []api.StatusRecord) (*excelize.File, error) {
	headers, rows := Tabulate(records)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := setRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
