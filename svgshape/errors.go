package svgshape

import (
	"errors"
	"log"
)

// ErrorMode controls how the document reader behaves when it finds
// elements or attributes it does not handle.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unhandled content silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs unhandled content and continues.
	WarnErrorMode
	// StrictErrorMode aborts reading on unhandled content.
	StrictErrorMode
)

func (mode ErrorMode) handle(msg string) error {
	switch mode {
	case StrictErrorMode:
		return errors.New(msg)
	case WarnErrorMode:
		log.Println(msg)
	}
	return nil
}
