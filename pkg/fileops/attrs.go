package fileops

import "os"

// IsHidden reports whether path refers to a hidden file or directory. On
// Unix-like systems an entry is hidden when its name starts with a dot; on
// Windows the hidden file attribute is checked, falling back to the dot
// convention when the attribute query fails. The path must exist.
func IsHidden(path string) (bool, error) {
	resolved, err := statExisting(path)
	if err != nil {
		return false, err
	}
	return isHiddenOS(resolved), nil
}

// IsReadOnly reports whether path is read-only for the current user. On
// Unix-like systems this is the absence of write access; on Windows the
// read-only file attribute is checked, falling back to a write-access probe
// when the attribute query fails. The path must exist.
func IsReadOnly(path string) (bool, error) {
	resolved, err := statExisting(path)
	if err != nil {
		return false, err
	}
	return isReadOnlyOS(resolved), nil
}

func statExisting(path string) (string, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(resolved); err != nil {
		if os.IsNotExist(err) {
			return "", newPathError(KindNotFound, resolved, "path does not exist")
		}
		return "", wrapPathError(KindPermissionDenied, resolved, "cannot access path", err)
	}
	return resolved, nil
}
