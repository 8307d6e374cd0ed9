package workshops

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"devfestsite/internal/domain"
)

// Load reads the hand-maintained workshops document. Because the file is
// authored by humans rather than generated, comments and trailing commas are
// tolerated.
func Load(path string) ([]domain.Workshop, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workshops file: %w", err)
	}
	var out []domain.Workshop
	if err := json.Unmarshal(jsonc.ToJSON(raw), &out); err != nil {
		return nil, fmt.Errorf("parse workshops file: %w", err)
	}
	return out, nil
}
