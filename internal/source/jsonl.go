package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

func readJSONL(r io.Reader) ([][]any, error) {
	var rows [][]any
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; sc.Scan(); n++ {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var row []any
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("%w: jsonl line %d: %s", ErrMalformedInput, n, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
