package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raykavin/plotspec/pkg/core"
)

// Load reads a table from a .csv, .tsv or .json file
func Load(path string) (*core.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var table *core.Table
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		table, err = ReadCSV(file)
	case ".tsv":
		table, err = ReadCSV(file, WithComma('\t'))
	case ".json":
		table, err = ReadJSON(file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return table, nil
}
