package main

import (
	"errors"
	"fmt"
	"os"

	"biodesign/internal/design"
)

// loadDesignOrDefault loads the design document named by the -f flag.
// When the flag was left at its default and the file does not exist, the
// built-in defaults are used; an explicitly named file must exist.
func loadDesignOrDefault(explicit bool) (*design.Design, error) {
	d, err := design.Load(designPath)
	if err == nil {
		return d, nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return design.Default(), nil
	}
	return nil, err
}

// openOutput returns the writer for a command's -o flag, stdout when empty.
// The returned func closes the file if one was opened.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
