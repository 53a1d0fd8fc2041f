package xlsx2md

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// Components reported by ConversionError.
const (
	// ComponentCells marks a failure while resolving a sheet's cells.
	ComponentCells = "cells"
	// ComponentOutput marks a failure while writing a per-sheet file.
	ComponentOutput = "output"
)

// ConversionError represents an error while converting one sheet.
type ConversionError struct {
	SheetName string
	Component string // ComponentCells or ComponentOutput
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(sheetName, component string, err error) *ConversionError {
	return &ConversionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
