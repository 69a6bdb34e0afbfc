//go:build !windows

package fileops

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

func isHiddenOS(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

func isReadOnlyOS(path string) bool {
	return unix.Access(path, unix.W_OK) != nil
}

func accessReadable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

func accessWritable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
