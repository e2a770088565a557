package aiquiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseDrafts strips markdown fences around a JSON array and decodes it.
func parseDrafts(raw string) ([]Draft, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	if start, end := strings.Index(clean, "["), strings.LastIndex(clean, "]"); start >= 0 && end > start {
		clean = clean[start : end+1]
	}

	var drafts []Draft
	if err := json.Unmarshal([]byte(clean), &drafts); err != nil {
		return nil, fmt.Errorf("failed to decode model JSON: %w", err)
	}
	return drafts, nil
}
