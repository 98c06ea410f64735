package benchmark

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteJSON encodes run as indented JSON.
func WriteJSON(w io.Writer, run Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}
	return nil
}

// WriteCSV writes one line per row with a header.
func WriteCSV(w io.Writer, run Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"data_size", "iterative_ms", "recursive_ms", "sort_ms", "recursive_estimated"}); err != nil {
		return err
	}
	for _, r := range run.Rows {
		rec := []string{
			strconv.Itoa(r.DataSize),
			strconv.FormatFloat(r.Iterative, 'f', 4, 64),
			strconv.FormatFloat(r.Recursive, 'f', 4, 64),
			strconv.FormatFloat(r.Sort, 'f', 4, 64),
			strconv.FormatBool(r.RecursiveEstimated),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile writes run to path, replacing any existing file. The format
// follows the extension: .csv for CSV, anything else for JSON.
func ExportFile(path string, run Run) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		err = WriteCSV(f, run)
	} else {
		err = WriteJSON(f, run)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
