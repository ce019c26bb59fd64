//go:build !unix

package main

import "os"

// Swapping the os.File values does not capture runtime panic output.
func redirectStdIO(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	os.Stdout = f
	os.Stderr = f
	return f, nil
}
