package config

import (
	"git.sr.ht/~rjarry/dirtyview/lib/log"
)

// ReloadUi parses the [ui] section of filename again. The [general] section
// is only read at startup.
func ReloadUi(filename string) (*UIConfig, error) {
	log.Debugf("reload conf file: %s", filename)
	file, err := loadIni(filename)
	if err != nil {
		return nil, err
	}
	sec, err := file.GetSection("ui")
	if err != nil {
		ui := defaultUIConfig()
		return &ui, nil
	}
	return parseUiSection(sec)
}
