package source

import (
	"bufio"
	"io"
	"strings"
)

// readTSV splits every line on tabs. Fields are not quoted or escaped.
func readTSV(r io.Reader) ([][]any, error) {
	var rows [][]any
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		rows = append(rows, stringsToCells(strings.Split(line, "\t")))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
