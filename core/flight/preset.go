package flight

import (
	"expense-split/internal/errors"
)

// Preset names a commonly used company percentage.
type Preset string

const (
	// PresetEconomy is an economy ticket the company covers in full
	PresetEconomy Preset = "economy100"
	// PresetUpgrade is the standard upgraded-cabin share
	PresetUpgrade Preset = "upgrade75"
	// PresetCustom takes the percentage from the caller
	PresetCustom Preset = "custom"
)

// Presets lists the accepted preset names in display order.
var Presets = []Preset{PresetEconomy, PresetUpgrade, PresetCustom}

// PresetPercent resolves a preset to the company percentage. custom is only
// consulted for PresetCustom; its range is checked by the split functions.
func PresetPercent(p Preset, custom float64) (float64, error) {
	switch p {
	case PresetEconomy:
		return 100, nil
	case PresetUpgrade:
		return DefaultUpgradeCompanyPercent, nil
	case PresetCustom:
		return custom, nil
	}
	return 0, errors.Validation("preset", errors.MsgPreset).
		WithContext("value", string(p))
}
