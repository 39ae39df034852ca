package brand

import (
	"sjsage522/salewatcher/logger"
	"sjsage522/salewatcher/pkg/errors"
)

// Load resolves the authoritative brand source for a run. The CSV source
// wins when it yields at least one record; otherwise the YAML source is
// consulted. No usable source is a fatal configuration error.
func Load(csvPath, yamlPath string) ([]Record, string, error) {
	log := logger.ForLoader()

	if csvPath != "" {
		records, err := LoadCSV(csvPath)
		if err != nil {
			return nil, "", err
		}
		if len(records) > 0 {
			log.Info().Int("brand_count", len(records)).Str("path", csvPath).Msg("Loaded brands from CSV")
			return records, "csv", nil
		}
	}

	if yamlPath != "" {
		records, err := LoadYAML(yamlPath)
		if err != nil {
			return nil, "", err
		}
		if len(records) > 0 {
			log.Info().Int("brand_count", len(records)).Str("path", yamlPath).Msg("Loaded brands from YAML")
			return records, "yaml", nil
		}
	}

	return nil, "", errors.NewConfiguration("no usable brand source found", nil)
}
