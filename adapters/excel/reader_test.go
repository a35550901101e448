package excel

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestReadSamples_CSV(t *testing.T) {
	path := writeTempCSV(t, "ts,value\n1,0.04\n2,0.05\n3,not-a-number\n4,\n5,0.03\n")

	samples, err := NewSampleReader(path).ReadSamples("value")
	if err != nil {
		t.Fatalf("read samples: %v", err)
	}

	want := []float64{0.04, 0.05, 0.03}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples, want %d: %v", len(samples), len(want), samples)
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("samples[%d] = %g, want %g", i, samples[i], want[i])
		}
	}
}

func TestReadSamples_ColumnLookupIsCaseInsensitive(t *testing.T) {
	path := writeTempCSV(t, "Value\n1.5\n2.5\n")

	samples, err := NewSampleReader(path).ReadSamples("value")
	if err != nil {
		t.Fatalf("read samples: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
}

func TestReadSamples_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, "a,b\n1,2\n")

	if _, err := NewSampleReader(path).ReadSamples("value"); err == nil {
		t.Fatal("missing column accepted")
	}
}

func TestReadSamples_MissingFile(t *testing.T) {
	if _, err := NewSampleReader("no-such-file.csv").ReadSamples("value"); err == nil {
		t.Fatal("missing file accepted")
	}
}
