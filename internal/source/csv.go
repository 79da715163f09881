package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

func readCSV(r io.Reader, comma rune) ([][]any, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	var rows [][]any
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
		}
		rows = append(rows, stringsToCells(record))
	}
}

func stringsToCells(fields []string) []any {
	cells := make([]any, len(fields))
	for i, f := range fields {
		cells[i] = f
	}
	return cells
}
