package config

import (
	"errors"

	"github.com/ezrec/toy/translate"
)

var f = translate.From

var (
	ErrIsDirectory = errors.New(f("is a directory"))
)

// ErrConfigFile indicates a configuration file that could not be used.
type ErrConfigFile struct {
	Path string
	Err  error
}

func (err *ErrConfigFile) Error() string {
	return f("config '%v': %v", err.Path, err.Err)
}

func (err *ErrConfigFile) Unwrap() error {
	return err.Err
}
