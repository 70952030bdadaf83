// Package filenames validates and sanitizes user-supplied file names before
// they touch a filesystem API. It treats the input as a bare name, never a
// path: separators and traversal sequences are validation failures, not
// something to normalize away.
package filenames

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxLength is the longest accepted file name in bytes. It matches
// the common filesystem component limit.
const DefaultMaxLength = 255

// Error definitions
var (
	// ErrEmptyName is returned for an empty or all-dropped file name.
	ErrEmptyName = errors.New("file name must not be empty")

	// ErrNameTooLong is returned when the name exceeds the length limit.
	ErrNameTooLong = errors.New("file name exceeds length limit")

	// ErrPathSeparator is returned when the name contains '/' or '\'.
	ErrPathSeparator = errors.New("file name must not contain path separators")

	// ErrTraversal is returned for "." and ".." and names containing "..".
	ErrTraversal = errors.New("file name must not contain traversal sequences")

	// ErrUnsafeCharacter is returned when the name contains a character
	// outside the safe set.
	ErrUnsafeCharacter = errors.New("file name contains unsafe characters")
)

// ExtensionError reports a file extension outside the allowed list.
type ExtensionError struct {
	Name      string
	Extension string
}

func (e *ExtensionError) Error() string {
	return fmt.Sprintf("file %q: extension %q is not allowed", e.Name, e.Extension)
}

// Filter validates file names against a character policy and an optional
// allowed-extension list. A Filter is immutable and safe for concurrent use.
type Filter struct {
	allowedExts map[string]struct{}
	maxLength   int
}

// Option adjusts a Filter during construction.
type Option func(*Filter)

// WithMaxLength overrides the default name length limit.
func WithMaxLength(n int) Option {
	return func(f *Filter) { f.maxLength = n }
}

// New creates a Filter. Extensions are matched case-insensitively and
// include the dot, e.g. ".txt". An empty list allows any extension.
func New(allowedExtensions []string, opts ...Option) *Filter {
	f := &Filter{maxLength: DefaultMaxLength}
	if len(allowedExtensions) > 0 {
		f.allowedExts = make(map[string]struct{}, len(allowedExtensions))
		for _, ext := range allowedExtensions {
			f.allowedExts[strings.ToLower(ext)] = struct{}{}
		}
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Validate checks name without modifying it. It returns nil only when the
// name is non-empty, within the length limit, free of separators and
// traversal sequences, built from safe characters, and carries an allowed
// extension.
func (f *Filter) Validate(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > f.maxLength {
		return fmt.Errorf("%w: %d > %d", ErrNameTooLong, len(name), f.maxLength)
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrPathSeparator
	}
	if name == "." || name == ".." || strings.Contains(name, "..") {
		return ErrTraversal
	}
	for i := 0; i < len(name); i++ {
		if !isSafeByte(name[i]) {
			return fmt.Errorf("%w: %q", ErrUnsafeCharacter, name[i])
		}
	}
	return f.checkExtension(name)
}

// Sanitize drops every unsafe character from name, collapses traversal
// sequences and returns the cleaned name. An error is returned when nothing
// safe remains or the extension is not allowed; the cleaned name is
// returned alongside it where one exists.
func (f *Filter) Sanitize(name string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if isSafeByte(name[i]) {
			sb.WriteByte(name[i])
		}
	}
	cleaned := sb.String()
	for strings.Contains(cleaned, "..") {
		cleaned = strings.ReplaceAll(cleaned, "..", ".")
	}
	cleaned = strings.Trim(cleaned, ". ")
	if cleaned == "" {
		return "", ErrEmptyName
	}
	if len(cleaned) > f.maxLength {
		cleaned = cleaned[:f.maxLength]
	}
	if err := f.checkExtension(cleaned); err != nil {
		return cleaned, err
	}
	return cleaned, nil
}

func (f *Filter) checkExtension(name string) error {
	if f.allowedExts == nil {
		return nil
	}
	idx := strings.LastIndexByte(name, '.')
	ext := ""
	if idx >= 0 {
		ext = strings.ToLower(name[idx:])
	}
	if _, ok := f.allowedExts[ext]; !ok {
		return &ExtensionError{Name: name, Extension: ext}
	}
	return nil
}

// isSafeByte reports whether b may appear in a sanitized file name:
// ASCII alphanumerics plus '-', '_', '.' and space.
func isSafeByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_' || b == '.' || b == ' ':
		return true
	}
	return false
}
