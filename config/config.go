// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads the settings of the toy command from a YAML file,
// with environment variables as the final override.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/ezrec/toy/cpu"
)

const (
	EnvVarPrefix = "TOY"

	defFormatWidth = cpu.LINE_WIDTH
)

var replacer = strings.NewReplacer(".", "_")

// Config is the complete set of settings.
type Config struct {
	Verbose bool    `mapstructure:"verbose" yaml:"verbose"`
	Locale  string  `mapstructure:"locale" yaml:"locale"`
	Run     *Run    `mapstructure:"run" yaml:"run"`
	Format  *Format `mapstructure:"format" yaml:"format"`
}

// Run holds the defaults of the run command.
type Run struct {
	Input string `mapstructure:"input" yaml:"input"` // Console input queued before the run.
	Watch string `mapstructure:"watch" yaml:"watch"` // Starlark pause expression.
	Dump  bool   `mapstructure:"dump" yaml:"dump"`   // Print machine state at the end.
}

// Format holds the defaults of the format command.
type Format struct {
	Width int `mapstructure:"width" yaml:"width"`
}

// DefaultConfig returns the built in settings.
func DefaultConfig() *Config {
	return &Config{
		Run: &Run{},
		Format: &Format{
			Width: defFormatWidth,
		},
	}
}

// NewConfig loads the settings. A missing file is not an error; an empty
// path skips the file entirely.
func NewConfig(cfgFile string) (cfg *Config, err error) {
	v := viper.New()

	// Viper only overrides keys it already knows, so seed every default.
	b, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return
	}

	v.SetConfigType("yaml")
	err = v.MergeConfig(bytes.NewReader(b))
	if err != nil {
		return
	}

	if len(cfgFile) != 0 {
		var fi os.FileInfo
		fi, err = os.Stat(cfgFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			err = nil
		case err != nil:
			return
		case fi.IsDir():
			err = &ErrConfigFile{Path: cfgFile, Err: ErrIsDirectory}
			return
		default:
			v.SetConfigFile(cfgFile)
			err = v.MergeInConfig()
			if err != nil {
				err = &ErrConfigFile{Path: cfgFile, Err: err}
				return
			}
		}
	}

	v.SetEnvPrefix(EnvVarPrefix)
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	cfg = DefaultConfig()
	err = bindVars(v, reflect.TypeOf(*cfg), "")
	if err != nil {
		return
	}

	err = v.Unmarshal(cfg)
	if err != nil {
		cfg = nil
	}

	return
}

// bindVars registers every leaf key, so environment values are seen by
// Unmarshal.
func bindVars(v *viper.Viper, t reflect.Type, prefix string) (err error) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		tag = prefix + tag

		switch {
		case field.Type.Kind() == reflect.Struct:
			err = bindVars(v, field.Type, tag+".")
		case field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct:
			err = bindVars(v, field.Type.Elem(), tag+".")
		default:
			err = v.BindEnv(tag)
		}

		if err != nil {
			return
		}
	}

	return
}
