package sniff

import (
	"encoding/json"

	"github.com/hamedhamzeh/annotex/internal/types"
)

// COCO detects aggregate JSON annotation documents: a JSON object carrying
// all of the "annotations", "images", and "categories" keys. Member values
// are not inspected.
type COCO struct{}

func (COCO) Name() string { return "coco" }

func (COCO) Format() types.Format { return types.FormatCOCO }

func (COCO) Match(content []byte) bool {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(content, &doc); err != nil {
		return false
	}
	for _, key := range []string{"annotations", "images", "categories"} {
		if _, ok := doc[key]; !ok {
			return false
		}
	}
	return true
}
