package conf

import (
	"errors"
	"fmt"
	"os"

	hocon "github.com/go-akka/configuration"
)

var (
	file string
	conf *hocon.Config
)

// Initialize with config file. A missing file leaves the configuration empty.
//
// HOCON sample, the log section is read by the slog build (tag `slog`)
//
//	bitmask {
//	 width: u8
//	 inverted: false
//	 output: "flags_bitmask.go"
//	 manifest: ""
//	 tags: []
//	}
//	log {
//	 level: info
//	}
func Initialize(confFile string) (err error) {
	file = confFile
	c, err := Load(confFile)
	if err != nil {
		return
	}
	conf = c.(config).Config
	checkLogger()
	return
}

// Load reads a HOCON file without touching the global configuration.
func Load(confFile string) (c Config, err error) {
	if confFile == "" {
		return Empty(), nil
	}
	if _, err = os.Stat(confFile); errors.Is(err, os.ErrNotExist) {
		return Empty(), nil
	} else if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse %s: %v", confFile, r)
			c = nil
		}
	}()
	return config{hocon.LoadConfig(confFile)}, nil
}

// Parse reads HOCON text.
func Parse(text string) (c Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse config: %v", r)
			c = nil
		}
	}()
	return config{hocon.ParseString(text)}, nil
}

type (
	Config interface {
		GetObject(path string) Config

		GetBoolean(path string, defaultVal ...bool) bool
		GetString(path string, defaultVal ...string) string
		GetStringList(path string) []string
		HasPath(path string) bool

		RequiredString(path string) string

		ExistsString(path string, act func(string))
		ExistsBoolean(path string, act func(bool))
		ExistsStringList(path string, act func([]string))
	}
	config struct {
		*hocon.Config
	}
)

func (c config) RequiredString(path string) string {
	return Required(path, c, c.GetString)
}
func (c config) ExistsString(path string, act func(string)) {
	Exists(path, c, c.GetString, act)
}
func (c config) ExistsBoolean(path string, act func(bool)) {
	Exists(path, c, c.GetBoolean, act)
}
func (c config) ExistsStringList(path string, act func([]string)) {
	if c.GetNode(path) != nil {
		act(c.GetStringList(path))
	}
}
func (c config) GetObject(path string) Config {
	if c.HasPath(path) {
		return config{
			c.GetConfig(path),
		}
	} else {
		return nil
	}
}

func Exists[T any](path string, c Config, get func(path string, def ...T) T, consume func(T)) {
	if v, ok := c.(config); ok {
		if v.GetNode(path) != nil {
			consume(get(path))
		}
	} else {
		panic("invalid config instance")
	}
}

func Required[T any](path string, c Config, get func(path string, def ...T) T) T {
	if v, ok := c.(config); ok {
		if v.GetNode(path) != nil {
			return get(path)
		} else {
			panic("missing configurer value of " + path)
		}
	} else {
		panic("invalid config instance")
	}
}
func OrElse[T any](path string, def T, c Config, get func(path string, def ...T) T) T {
	if v, ok := c.(config); ok {
		if v.GetNode(path) != nil {
			return get(path)
		} else {
			return def
		}
	} else {
		panic("invalid config instance")
	}
}

// GetConfig returns the configuration loaded by Initialize, or an empty one.
func GetConfig() Config {
	if conf == nil {
		return Empty()
	}
	return config{conf}
}

// File is the path given to Initialize.
func File() string {
	return file
}

func Empty() Config {
	return config{Config: hocon.ParseString("{}")}
}
