package cli

import (
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"zonetext/infostring"
)

type (
	// Settings are the optional tweaks a zonetext.ini can carry; every
	// value has a working default.
	Settings struct {
		KeyColumn int
	}
)

func DefaultSettings() *Settings {
	return &Settings{
		KeyColumn: infostring.DefaultKeyColumn,
	}
}

// LoadSettings reads an ini settings file. An empty path yields the
// defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		err := errors.Wrapf(err, `LoadSettings error reading "%s"`, path)
		return nil, err
	}

	settings.KeyColumn = file.
		Section("dump").
		Key("key_column").
		MustInt(infostring.DefaultKeyColumn)
	if settings.KeyColumn < 0 {
		return nil, errors.New("LoadSettings error: key_column must not be negative")
	}

	return settings, nil
}
