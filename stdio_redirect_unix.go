//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO points fd 1 and 2 at the log file so runtime panics land
// there too. The returned file must stay open until exit.
func redirectStdIO(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(std.Fd())); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
