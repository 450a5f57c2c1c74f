package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// OverridesFileName is the optional tuning file looked up in the photo folder
const OverridesFileName = "photo-saver.toml"

// Overrides holds file-based tuning that doesn't fit flat preferences:
// per-layout selection weights and per-category classification tolerances.
// Unknown layout or category names are ignored by the consumers; missing
// entries keep their built-in values.
type Overrides struct {
	Weights    map[string]float64 `toml:"weights"`
	Tolerances map[string]float64 `toml:"tolerances"`
}

// LoadOverrides reads the TOML overrides file. A missing file is not an
// error; it simply yields empty overrides.
func LoadOverrides(path string) (Overrides, error) {
	var o Overrides
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return o, nil
	}
	if _, err := toml.DecodeFile(path, &o); err != nil {
		return Overrides{}, fmt.Errorf("failed to parse overrides file %s: %w", path, err)
	}
	return o, nil
}
