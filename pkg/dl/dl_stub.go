//go:build !linux

package dl

import (
	"errors"
	"unsafe"
)

var ErrUnsupported = errors.New("dl: dynamic loading is only supported on linux")

const (
	Lazy   = 0
	Now    = 0
	Global = 0
	Local  = 0
)

type Lib struct{}

func Open(string, int) (*Lib, error) { return nil, ErrUnsupported }
func (l *Lib) Name() string { return "" }
func (l *Lib) Lookup(string) (unsafe.Pointer, error) { return nil, ErrUnsupported }
func (l *Lib) Close() error { return ErrUnsupported }
