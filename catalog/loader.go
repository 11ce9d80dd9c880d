package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
	"github.com/BlueSkyGuardian/tabibapp/logging"
)

// loadMedicinesFile reads and decodes the medicines JSON file.
// Records without a commercial name are skipped rather than failing the
// whole load, since a single bad row must not take the catalog down.
func loadMedicinesFile(filePath string) ([]entities.Medicine, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read medicines file: %w", err)
	}

	var raw []entities.Medicine
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode medicines file: %w", err)
	}

	medicines := make([]entities.Medicine, 0, len(raw))
	skipped := 0
	for i := range raw {
		if raw[i].NomCommercial == "" {
			skipped++
			continue
		}
		medicines = append(medicines, raw[i])
	}

	if skipped > 0 {
		logging.Warn("Skipped medicines without a commercial name", "count", skipped)
	}

	return medicines, nil
}
