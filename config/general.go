package config

import (
	"fmt"
	"os"

	"github.com/go-ini/ini"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"

	"git.sr.ht/~rjarry/dirtyview/lib/log"
)

type GeneralConfig struct {
	LogFile  string       `ini:"log-file"`
	LogLevel log.LogLevel `ini:"-"`
}

func defaultGeneralConfig() GeneralConfig {
	return GeneralConfig{
		LogLevel: log.INFO,
	}
}

func (config *DirtyviewConfig) parseGeneral(file *ini.File) error {
	gen, err := file.GetSection("general")
	if err != nil {
		return nil
	}
	if err := gen.MapTo(&config.General); err != nil {
		return err
	}
	if key, err := gen.GetKey("log-level"); err == nil {
		l, err := log.ParseLevel(key.String())
		if err != nil {
			return fmt.Errorf("log-level: %w", err)
		}
		config.General.LogLevel = l
	}
	return nil
}

// InitLogging directs logs to stdout when it is not a terminal, or to the
// configured log-file. An empty override keeps the configured level.
func (gen *GeneralConfig) InitLogging(override string) error {
	var logFile *os.File
	useStdout := false

	if override != "" {
		l, err := log.ParseLevel(override)
		if err != nil {
			return err
		}
		gen.LogLevel = l
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		logFile = os.Stdout
		useStdout = true
		// redirected to file, force DEBUG level
		if gen.LogLevel > log.DEBUG {
			gen.LogLevel = log.DEBUG
		}
	} else if gen.LogFile != "" {
		path, err := homedir.Expand(gen.LogFile)
		if err != nil {
			return fmt.Errorf("log-file: %w", err)
		}
		logFile, err = os.OpenFile(path,
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("log-file: %w", err)
		}
	}
	if err := log.Init(logFile, useStdout, gen.LogLevel); err != nil {
		return err
	}
	log.Debugf("dirtyview.conf: [general] %#v", gen)
	return nil
}
