package pathgen

import (
	"encoding/json"
	"fmt"
)

// Export renders a curriculum as an indented JSON document. The output
// round-trips through Parse to an equal value.
func Export(c *Curriculum) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal curriculum: %w", err)
	}
	return data, nil
}

// Import parses an exported curriculum document. It applies the same
// validation as model responses, so an edited file cannot smuggle an
// invalid document back in.
func Import(data []byte) (*Curriculum, error) {
	return Parse(data)
}
