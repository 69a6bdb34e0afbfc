//go:build windows

package fileops

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

func fileAttributes(path string) (uint32, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	return windows.GetFileAttributes(p)
}

func isHiddenOS(path string) bool {
	attrs, err := fileAttributes(path)
	if err != nil {
		// Attribute query failed, fall back to the dot convention
		return strings.HasPrefix(filepath.Base(path), ".")
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}

func isReadOnlyOS(path string) bool {
	attrs, err := fileAttributes(path)
	if err != nil {
		return !accessWritable(path)
	}
	return attrs&windows.FILE_ATTRIBUTE_READONLY != 0
}

// Windows has no access(2); probe by opening.

func accessReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func accessWritable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	if info.IsDir() {
		// Probe with a throwaway file, then clean it up
		probe := filepath.Join(path, ".fskit-probe")
		f, err := os.OpenFile(probe, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
		if err != nil {
			return false
		}
		f.Close()
		os.Remove(probe)
		return true
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
