package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/savthe/prediction-confidence/internal"
)

// SampleReader reads one numeric column of observations from an Excel or CSV
// file, for distribution calibration. The first row is treated as a header.
type SampleReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	log      *internal.Logger
}

// NewSampleReader creates a reader for the given file, dispatching on extension.
func NewSampleReader(filePath string) *SampleReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &SampleReader{
		filePath: filePath,
		fileType: fileType,
		log:      internal.NewLogger("sample-reader"),
	}
}

// ReadSamples returns the numeric values of the named column. Blank and
// non-numeric cells are skipped.
func (r *SampleReader) ReadSamples(column string) ([]float64, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("sample file not found: %s", r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sample file %s has no data rows", r.filePath)
	}

	col := -1
	for i, name := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("column %q not found in %s", column, r.filePath)
	}

	samples := make([]float64, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		if col >= len(row) {
			skipped++
			continue
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			skipped++
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			skipped++
			continue
		}
		samples = append(samples, v)
	}

	r.log.Info("read %d samples from %s column %q (%d cells skipped)",
		len(samples), r.filePath, column, skipped)
	return samples, nil
}

func (r *SampleReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return rows, nil
}

func (r *SampleReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}
