package urlconf

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage backends
const (
	FileSystemStorageBackend = "django.core.files.storage.FileSystemStorage"
	S3StorageBackend         = "django_s3_storage.storage.S3Storage"
)

// Storage is a decoded storage URL. Exactly one of File and S3 is set.
type Storage struct {
	Backend string
	File    *FileOptions
	S3      *S3Options
}

// FileOptions configures filesystem storage
type FileOptions struct {
	// Location is an absolute directory
	Location string
	// BaseURL is nil unless base_url was given
	BaseURL *string
	// Extra holds every other query parameter verbatim
	Extra map[string]string
}

type storageOptions struct {
	baseDir string
}

// StorageOption configures ParseStorage
type StorageOption func(*storageOptions)

// WithBaseDir resolves relative file: paths against dir instead of the
// working directory
func WithBaseDir(dir string) StorageOption {
	return func(o *storageOptions) {
		o.baseDir = dir
	}
}

// ParseStorage decodes a file: or s3:// URL
func ParseStorage(s string, opts ...StorageOption) (*Storage, error) {
	var o storageOptions
	for _, opt := range opts {
		opt(&o)
	}

	u := splitURL(s)
	switch u.scheme {
	case "file":
		file, err := parseFileStorage(u, o.baseDir)
		if err != nil {
			return nil, err
		}
		return &Storage{Backend: FileSystemStorageBackend, File: file}, nil
	case "s3":
		s3, err := parseS3Storage(u)
		if err != nil {
			return nil, err
		}
		return &Storage{Backend: S3StorageBackend, S3: s3}, nil
	default:
		return nil, &UnknownSchemeError{Category: CategoryStorage, Scheme: u.scheme}
	}
}

func parseFileStorage(u *parsedURL, baseDir string) (*FileOptions, error) {
	location := unquote(u.path)
	if !filepath.IsAbs(location) {
		if baseDir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
			baseDir = cwd
		}
		base, err := filepath.Abs(baseDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve base directory %s: %w", baseDir, err)
		}
		location = filepath.Join(base, location)
	}

	file := &FileOptions{
		Location: filepath.Clean(location),
		Extra:    make(map[string]string),
	}
	for key, values := range u.query {
		if key == "base_url" {
			baseURL := values[0]
			file.BaseURL = &baseURL
			continue
		}
		file.Extra[key] = values[0]
	}
	return file, nil
}

// Fields implements Record
func (s *Storage) Fields() map[string]any {
	options := map[string]any{}
	switch {
	case s.File != nil:
		for key, value := range s.File.Extra {
			options[key] = value
		}
		options["location"] = s.File.Location
		options["base_url"] = nil
		if s.File.BaseURL != nil {
			options["base_url"] = *s.File.BaseURL
		}
	case s.S3 != nil:
		options = s.S3.fields()
	}
	return map[string]any{
		"BACKEND": s.Backend,
		"OPTIONS": options,
	}
}
