package brand

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"sjsage522/salewatcher/pkg/errors"
)

type yamlFile struct {
	Brands []yamlBrand `yaml:"brands"`
}

type yamlBrand struct {
	Name         string       `yaml:"name"`
	URL          string       `yaml:"url"`
	Country      string       `yaml:"country"`
	SaleTypeHint string       `yaml:"sale_type_hint"`
	Signals      []yamlSignal `yaml:"signals"`
}

type yamlSignal struct {
	Any []string `yaml:"any"`
}

// LoadYAML loads brand records from a YAML document. A missing file
// yields no records and no error. Entries without a name or url are
// silently skipped. The YAML source carries no image fields.
func LoadYAML(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewConfiguration(fmt.Sprintf("failed to read %s", path), err)
	}

	var cfg yamlFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfiguration(fmt.Sprintf("failed to parse %s", path), err)
	}

	var records []Record
	for _, b := range cfg.Brands {
		rec := Record{
			Name:         strings.TrimSpace(b.Name),
			URL:          strings.TrimSpace(b.URL),
			Country:      strings.TrimSpace(b.Country),
			SaleTypeHint: strings.TrimSpace(b.SaleTypeHint),
		}
		if rec.Country == "" {
			rec.Country = DefaultCountry
		}
		if len(b.Signals) > 0 {
			for _, kw := range b.Signals[0].Any {
				if t := strings.TrimSpace(kw); t != "" {
					rec.KeywordsExtra = append(rec.KeywordsExtra, t)
				}
			}
		}
		if !rec.Valid() {
			continue
		}

		records = append(records, rec)
	}

	return records, nil
}
