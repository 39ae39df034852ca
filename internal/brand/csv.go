package brand

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"sjsage522/salewatcher/helpers"
	"sjsage522/salewatcher/pkg/errors"
)

// Columns every brands CSV must declare. image may be empty per row but
// the header itself is mandatory.
var requiredCSVColumns = []string{"name", "country", "url", "sale_type_hint", "keywords_extra", "image"}

// LoadCSV loads brand records from a CSV file. A missing file yields no
// records and no error so the loader can fall through to the YAML
// source; a present file with missing required headers fails the run.
// Rows without a name or url are silently skipped.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewConfiguration(fmt.Sprintf("failed to open %s", path), err)
	}
	defer f.Close()

	return parseCSV(f, path)
}

func parseCSV(r io.Reader, path string) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.NewConfiguration(fmt.Sprintf("%s is empty", path), nil)
		}
		return nil, errors.NewConfiguration(fmt.Sprintf("failed to read %s header", path), err)
	}

	// Tolerate a UTF-8 BOM on the first header cell
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredCSVColumns {
		if _, ok := columns[required]; !ok {
			return nil, errors.NewConfiguration(
				fmt.Sprintf("%s header is missing required column %q", path, required), nil)
		}
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewConfiguration(fmt.Sprintf("failed to read %s", path), err)
		}

		rec := Record{
			Name:          cell(row, columns, "name"),
			URL:           cell(row, columns, "url"),
			Country:       cell(row, columns, "country"),
			SaleTypeHint:  cell(row, columns, "sale_type_hint"),
			KeywordsExtra: helpers.SplitList(cell(row, columns, "keywords_extra"), "|"),
			Image:         cell(row, columns, "image"),
			ImagePage:     cell(row, columns, "image_page"),
		}
		if rec.Country == "" {
			rec.Country = DefaultCountry
		}
		if !rec.Valid() {
			continue
		}

		records = append(records, rec)
	}

	return records, nil
}

// cell returns the trimmed value at the named column, or "" when the
// column is absent or the row is short.
func cell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
