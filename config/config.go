package config

import (
	"os"
	"path"

	"github.com/go-ini/ini"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"git.sr.ht/~rjarry/dirtyview/lib/log"
)

type DirtyviewConfig struct {
	General GeneralConfig
	Ui      UIConfig
	// path of the file this was loaded from, empty if built from defaults
	Filename string
}

func defaultConfig() *DirtyviewConfig {
	return &DirtyviewConfig{
		General: defaultGeneralConfig(),
		Ui:      defaultUIConfig(),
	}
}

// DefaultPath returns ~/.config/dirtyview/dirtyview.conf, honoring
// $XDG_CONFIG_HOME.
func DefaultPath() string {
	root := os.Getenv("XDG_CONFIG_HOME")
	if root == "" {
		root = path.Join("~", ".config")
	}
	p, err := homedir.Expand(path.Join(root, "dirtyview", "dirtyview.conf"))
	if err != nil {
		log.Warnf("cannot expand config path: %v", err)
	}
	return p
}

// LoadConfigFromFile parses filename, or the default path when nil. A
// missing file yields the defaults.
func LoadConfigFromFile(filename *string) (*DirtyviewConfig, error) {
	if filename == nil {
		p := DefaultPath()
		filename = &p
	}
	fn, err := homedir.Expand(*filename)
	if err != nil {
		return nil, errors.Wrap(err, "homedir.Expand")
	}
	if _, err := os.Stat(fn); errors.Is(err, os.ErrNotExist) {
		log.Infof("%s not found, using defaults", fn)
		conf := defaultConfig()
		conf.Filename = fn
		return conf, nil
	}
	conf, err := LoadConfig(fn)
	if err != nil {
		return nil, errors.Wrap(err, fn)
	}
	conf.Filename = fn
	return conf, nil
}

// LoadConfig parses an ini source: a file name or raw []byte contents.
func LoadConfig(source interface{}) (*DirtyviewConfig, error) {
	file, err := loadIni(source)
	if err != nil {
		return nil, err
	}
	conf := defaultConfig()
	if err := conf.parseGeneral(file); err != nil {
		return nil, err
	}
	if err := conf.parseUi(file); err != nil {
		return nil, err
	}
	log.Debugf("dirtyview.conf: [ui] %#v", conf.Ui)
	return conf, nil
}

func loadIni(source interface{}) (*ini.File, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters: "=",
	}, source)
	if err != nil {
		return nil, errors.Wrap(err, "ini.LoadSources")
	}
	return file, nil
}
