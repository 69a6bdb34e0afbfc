// Package fileops provides validated create/read/delete operations on files,
// together with the helpers they are built from: path validation, directory
// creation, content sanitization, hidden/read-only detection, and temporary
// file creation.
//
// # Validation pipeline
//
// Every operation works on a resolved path: the raw input is expanded ("~/"
// becomes the user's home directory), made absolute, cleaned, and, where the
// path exists, symlink-resolved. Validation then applies only the checks the
// caller requested, in a fixed order, and the first failing check wins:
//
//	resolved, err := fileops.ValidatePath("~/notes/todo.txt", fileops.Constraints{
//	    MustExist: true,
//	    Entry:     fileops.EntryFile,
//	    Readable:  true,
//	})
//
// # Content sanitization
//
// CreateFile never writes caller input verbatim. SanitizeContent converts the
// value to text (JSON for structured values), strips characters outside
// printable ASCII plus tab and newline, normalizes line endings to LF, and
// optionally collapses redundant whitespace:
//
//	path, err := fileops.CreateFile("report.json", map[string]any{"ok": true},
//	    fileops.CreateOptions{Compact: true})
//
// # Errors
//
// All failures are reported as *PathError carrying a Kind from a closed
// taxonomy, the offending path, and a human-readable reason. Underlying OS
// errors are preserved via Unwrap rather than discarded:
//
//	if _, err := fileops.ReadFile(path, ""); fileops.IsKind(err, fileops.KindNotFound) {
//	    // handle the missing file
//	}
//
// The package performs no locking and no atomic rename; every operation reads
// or writes whole-file contents synchronously. Callers that need atomicity
// must coordinate externally.
package fileops
