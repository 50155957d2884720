package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxIdentifierLength bounds user and repository identifiers read from the
// commit-count table.
const maxIdentifierLength = 512

// ValidateIdentifier validates a user or repository identifier taken from the
// input table. kind names the identifier in the error ("user", "repo").
//
// The validation rules are intentionally conservative:
//   - No empty names (after trimming surrounding whitespace)
//   - No control characters or null bytes
//   - Maximum length of 512 characters
func ValidateIdentifier(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeParse, "%s identifier cannot be empty", kind)
	}

	if len(id) > maxIdentifierLength {
		return New(ErrCodeParse, "%s identifier too long (max %d characters)", kind, maxIdentifierLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeParse, "%s identifier %q contains control characters", kind, id)
		}
	}

	return nil
}

// ValidateOutputPaths checks that the input and every output path are set and
// pairwise distinct, so a run can never overwrite its own input or write two
// results to the same file.
func ValidateOutputPaths(input string, outputs ...string) error {
	if input == "" {
		return New(ErrCodeInvalidConfig, "input path is required")
	}

	seen := map[string]string{clean(input): "input"}
	for _, out := range outputs {
		if out == "" {
			return New(ErrCodeInvalidConfig, "output path cannot be empty")
		}
		if strings.HasSuffix(out, string(filepath.Separator)) {
			return New(ErrCodeInvalidConfig, "output path %q is a directory", out)
		}
		key := clean(out)
		if prev, ok := seen[key]; ok {
			return New(ErrCodeInvalidConfig, "output path %q collides with %s", out, prev)
		}
		seen[key] = out
	}

	return nil
}

func clean(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
