package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/savthe/prediction-confidence/adapters/excel"
	"github.com/savthe/prediction-confidence/domain/confidence"
	"github.com/savthe/prediction-confidence/internal/calibration"
)

// Fits a normal distribution to a sample column from an .xlsx or .csv file
// and prints the resulting table configuration as JSON, along with the
// worst-case drift of the discretized table against the closed-form CDF.
func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: calibrate <samples.xlsx|samples.csv> <column>")
	}
	path, column := os.Args[1], os.Args[2]

	samples, err := excel.NewSampleReader(path).ReadSamples(column)
	if err != nil {
		log.Fatalf("Failed to read samples: %v", err)
	}

	params, err := calibration.FitParams(samples)
	if err != nil {
		log.Fatalf("Failed to fit distribution: %v", err)
	}

	cfg := confidence.NewConfig(params)
	table, err := confidence.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to build table: %v", err)
	}

	out := struct {
		Config confidence.Config `json:"config"`
		Sample int               `json:"sample_size"`
		Drift  float64           `json:"max_drift"`
	}{cfg, len(samples), calibration.TableDrift(table, 1000)}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}
