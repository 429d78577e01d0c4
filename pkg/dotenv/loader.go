package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/platinummonkey/envurl/pkg/env"
	"github.com/sirupsen/logrus"
)

// DefaultFilename is read when Load is given an empty filename
const DefaultFilename = ".env"

// LoadResult describes what a single Load did to the mapping
type LoadResult struct {
	// Path is the resolved file path
	Path string
	// Read is false when the file was missing or not a regular file
	Read bool
	// Applied lists keys that were inserted, in file order
	Applied []string
	// Skipped lists keys that were already present and left untouched
	Skipped []string
}

// Loader applies .env files to a mapping without overwriting existing keys
type Loader struct {
	Mapping     env.Mapping
	Logger      *logrus.Logger
	StripQuotes bool
}

// NewLoader creates a loader writing into m. A nil mapping means the process
// environment, a nil logger means logrus.New().
func NewLoader(m env.Mapping, log *logrus.Logger) *Loader {
	if m == nil {
		m = env.OS()
	}
	if log == nil {
		log = logrus.New()
	}
	return &Loader{Mapping: m, Logger: log}
}

// Resolve returns the path Load reads for filename
func Resolve(filename string) (string, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	if filepath.IsAbs(filename) {
		return filepath.Clean(filename), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(cwd, filename), nil
}

// Load reads filename and inserts every key that the mapping does not hold
// yet. A missing file is not an error: a warning is logged and the mapping is
// left unchanged.
func (l *Loader) Load(filename string) (LoadResult, error) {
	return l.load(filename, ParseOptions{StripQuotes: l.StripQuotes})
}

func (l *Loader) load(filename string, opts ParseOptions) (LoadResult, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	path, err := Resolve(filename)
	if err != nil {
		return LoadResult{}, err
	}
	result := LoadResult{Path: path}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		l.logger().Warnf("%s not a file, not reading anything", filename)
		return result, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger().Warnf("%s not a file, not reading anything", filename)
			return result, nil
		}
		return result, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	directives, err := Parse(f, opts)
	if err != nil {
		return result, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	result.Read = true

	m := l.Mapping
	if m == nil {
		m = env.OS()
	}
	for _, d := range directives {
		stored, err := env.SetDefault(m, d.Key, d.Value)
		if err != nil {
			return result, fmt.Errorf("%s:%d: %w", path, d.Line, err)
		}
		if stored {
			result.Applied = append(result.Applied, d.Key)
		} else {
			result.Skipped = append(result.Skipped, d.Key)
		}
	}

	l.logger().Debugf("Loaded %d keys from %s (%d already set)", len(result.Applied), path, len(result.Skipped))
	return result, nil
}

func (l *Loader) logger() *logrus.Logger {
	if l.Logger == nil {
		return logrus.StandardLogger()
	}
	return l.Logger
}

// Load applies filename to m using the standard logger
func Load(filename string, m env.Mapping) error {
	l := NewLoader(m, logrus.StandardLogger())
	_, err := l.Load(filename)
	return err
}
