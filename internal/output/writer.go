package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Whitekid123/finance-tracker/internal/domain"
)

// Export is the serialized form of the tracker state: the stored
// transactions plus the computed summary over them.
type Export struct {
	GeneratedAt  string               `json:"generatedAt"`
	Count        int                  `json:"count"`
	Transactions []domain.Transaction `json:"transactions"`
	Summary      domain.SummaryStats  `json:"summary"`
}

// NewExport builds an Export stamped with the current time in RFC3339.
func NewExport(txns []domain.Transaction, summary domain.SummaryStats) *Export {
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return &Export{
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		Count:        len(txns),
		Transactions: txns,
		Summary:      summary,
	}
}

// WriteExport serializes an Export to JSON with 2-space indentation.
func WriteExport(export *Export, w io.Writer) error {
	if export == nil {
		return fmt.Errorf("export cannot be nil")
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("failed to encode export as JSON: %w", err)
	}

	return nil
}

// WriteExportToFile writes an Export to the given path, or to stdout when
// the path is empty.
func WriteExportToFile(export *Export, filePath string) (err error) {
	if export == nil {
		return fmt.Errorf("export cannot be nil")
	}

	if filePath == "" {
		return WriteExport(export, os.Stdout)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %s: %w", filePath, closeErr)
		}
	}()

	if err = WriteExport(export, f); err != nil {
		return fmt.Errorf("failed to write export to %s: %w", filePath, err)
	}

	return nil
}

// LoadExport reads a previously written export file.
func LoadExport(filePath string) (*Export, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	f, err := os.Open(filePath)
	if err != nil {
		// Return unwrapped error so caller can check os.IsNotExist.
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", filePath, closeErr)
		}
	}()

	var export Export
	if err := json.NewDecoder(f).Decode(&export); err != nil {
		return nil, fmt.Errorf("failed to decode export JSON: %w", err)
	}

	return &export, nil
}
