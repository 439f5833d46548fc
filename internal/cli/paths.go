package cli

import (
	"os"
	"strings"
	"unicode"

	"github.com/cmdgraph/cmdgraph/pkg/errors"
)

// validatePath rejects paths that cannot name a regular file: empty strings,
// control characters, and embedded null bytes.
func validatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrCodeInvalidPath, "path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return errors.New(errors.ErrCodeInvalidPath, "path contains invalid characters: %q", path)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return errors.New(errors.ErrCodeInvalidPath, "path contains invalid characters: %q", path)
		}
	}
	return nil
}

// validateInput checks the input path before anything is read or parsed:
// it must exist and be a regular file.
func validateInput(path string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeFileNotFound, "input file does not exist: %s", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "stat %s", path)
	}
	if info.IsDir() {
		return errors.New(errors.ErrCodeInvalidPath, "input path is a directory: %s", path)
	}
	return nil
}

// validateOutput checks the output path before the conversion runs: it must
// not be an existing directory, and unless overwrite is set it must not exist
// at all.
func validateOutput(path string, overwrite bool) error {
	if err := validatePath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "stat %s", path)
	}
	if info.IsDir() {
		return errors.New(errors.ErrCodeInvalidPath, "output path is an existing directory: %s", path)
	}
	if !overwrite {
		return errors.New(errors.ErrCodeFileExists, "output file already exists: %s (use --force to overwrite)", path)
	}
	return nil
}
