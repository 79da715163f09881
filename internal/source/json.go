package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

func readJSON(r io.Reader) ([][]any, error) {
	var rows [][]any
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: json: %s", ErrMalformedInput, err)
	}
	return rows, nil
}
