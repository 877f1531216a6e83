package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// QuestDraft is a quest as proposed by the generator, before validation.
// Every field may be missing or malformed.
type QuestDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Points      LooseInt `json:"points"`
	Difficulty  string   `json:"difficulty"`
	Category    string   `json:"category"`
}

// LooseInt accepts a JSON number or a numeric string. Anything else decodes to 0.
type LooseInt int

// UnmarshalJSON implements json.Unmarshaler
func (n *LooseInt) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = LooseInt(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = LooseInt(f)
			return nil
		}
	}

	*n = 0
	return nil
}
