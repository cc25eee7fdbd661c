package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mkarring/prodscan/internal/inventory"
)

// Save writes the analysis as indented JSON. Non-ASCII characters are
// written verbatim.
func Save(path string, a inventory.Analysis) error {
	out, err := os.Create(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer func() { _ = out.Close() }()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
