package source

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func readYAML(r io.Reader) ([][]any, error) {
	var rows [][]any
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: yaml: %s", ErrMalformedInput, err)
	}
	return rows, nil
}
