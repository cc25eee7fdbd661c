package groups

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrSourceNotFound indicates the input CSV does not exist. Callers report
// this distinctly from parse or write failures.
var ErrSourceNotFound = errors.New("source file not found")

// Row is a single user group entry from the export.
type Row struct {
	Name string
	ID   string
}

// ReadRows parses a header-driven CSV file into rows. The file may start
// with a UTF-8 BOM; it is stripped before the header is read. Rows missing
// a Name or Id column yield empty fields.
func ReadRows(path string) ([]Row, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("read input file: %w", err)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	nameIdx, idIdx := -1, -1
	for i, col := range records[0] {
		switch strings.TrimPrefix(col, "\ufeff") {
		case "Name":
			nameIdx = i
		case "Id":
			idIdx = i
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, Row{
			Name: field(record, nameIdx),
			ID:   field(record, idIdx),
		})
	}
	return rows, nil
}

// WriteRows writes the fixed Name,Id header followed by rows in order.
func WriteRows(path string, rows []Row) error {
	out, err := os.Create(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	writer := csv.NewWriter(out)
	if err := writer.Write([]string{"Name", "Id"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := writer.Write([]string{r.Name, r.ID}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
