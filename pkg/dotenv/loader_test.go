package dotenv

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/platinummonkey/envurl/pkg/env"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEnvFile = `DATABASE_URL=postgres://localhost:5432/example_com
CACHE_URL = 'hiredis://localhost:6379/1/?key_prefix=example_com'
SECRET_KEY = "s3cr3t"
# IGNORED=1
COMMENTED=no # TEST
ALLOWED_HOSTS=['*']
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.DebugLevel)
	return log, &buf
}

func TestLoader_Load(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", testEnvFile)
	m := env.NewMap()
	log, _ := newTestLogger()

	result, err := NewLoader(m, log).Load(path)
	require.NoError(t, err)

	assert.True(t, result.Read)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, []string{"DATABASE_URL", "CACHE_URL", "SECRET_KEY", "COMMENTED", "ALLOWED_HOSTS"}, result.Applied)
	assert.Empty(t, result.Skipped)

	assert.Equal(t, env.Map{
		"DATABASE_URL":  "postgres://localhost:5432/example_com",
		"CACHE_URL":     "'hiredis://localhost:6379/1/?key_prefix=example_com'",
		"SECRET_KEY":    `"s3cr3t"`,
		"COMMENTED":     "no # TEST",
		"ALLOWED_HOSTS": "['*']",
	}, m)

	got, err := env.Get("CACHE_URL", env.WithMapping(m))
	require.NoError(t, err)
	assert.Equal(t, "hiredis://localhost:6379/1/?key_prefix=example_com", got)

	got, err = env.Get("ALLOWED_HOSTS", env.WithMapping(m))
	require.NoError(t, err)
	assert.Equal(t, []any{"*"}, got)
}

func TestLoader_ExistingKeysWin(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "SECRET_KEY=from-file\nDEBUG=True\n")
	m := env.Map{"SECRET_KEY": "from-env"}

	result, err := NewLoader(m, nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"DEBUG"}, result.Applied)
	assert.Equal(t, []string{"SECRET_KEY"}, result.Skipped)
	assert.Equal(t, "from-env", m["SECRET_KEY"])
	assert.Equal(t, "True", m["DEBUG"])
}

func TestLoader_FirstWriterWins(t *testing.T) {
	dir := t.TempDir()
	local := writeFile(t, dir, ".env.local", "DEBUG=True\nDEBUG=False\n")
	shared := writeFile(t, dir, ".env", "DEBUG=False\nPORT=8000\n")
	m := env.NewMap()
	loader := NewLoader(m, nil)

	_, err := loader.Load(local)
	require.NoError(t, err)
	_, err = loader.Load(shared)
	require.NoError(t, err)

	assert.Equal(t, "True", m["DEBUG"])
	assert.Equal(t, "8000", m["PORT"])
}

func TestLoader_StripQuotes(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", testEnvFile)
	m := env.NewMap()
	loader := NewLoader(m, nil)
	loader.StripQuotes = true

	_, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cr3t", m["SECRET_KEY"])
	assert.Equal(t, "hiredis://localhost:6379/1/?key_prefix=example_com", m["CACHE_URL"])
}

func TestLoader_MissingFile(t *testing.T) {
	tests := []struct {
		name     string
		filename func(dir string) string
	}{
		{
			name:     "does not exist",
			filename: func(dir string) string { return filepath.Join(dir, "nothing.env") },
		},
		{
			name:     "is a directory",
			filename: func(dir string) string { return dir },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := newTestLogger()
			m := env.NewMap()
			filename := tt.filename(t.TempDir())

			result, err := NewLoader(m, log).Load(filename)
			require.NoError(t, err)

			assert.False(t, result.Read)
			assert.Empty(t, m)
			assert.Contains(t, buf.String(), "level=warning")
			assert.Contains(t, buf.String(), filename+" not a file, not reading anything")
		})
	}
}

func TestLoader_RelativeToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "FROM_CWD=1\n")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	m := env.NewMap()
	result, err := NewLoader(m, nil).Load("")
	require.NoError(t, err)

	assert.True(t, result.Read)
	assert.Equal(t, "1", m["FROM_CWD"])
}

func TestLoad_Convenience(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "PORT=8000\n")
	m := env.NewMap()

	require.NoError(t, Load(path, m))
	assert.Equal(t, "8000", m["PORT"])
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "ENVURL_TEST_DOTENV=from-file\n")
	t.Setenv("ENVURL_TEST_DOTENV", "from-env")

	require.NoError(t, Load(path, nil))
	assert.Equal(t, "from-env", os.Getenv("ENVURL_TEST_DOTENV"))
}

func TestLoader_LongLine(t *testing.T) {
	big := strings.Repeat("x", 2*1024*1024)
	path := writeFile(t, t.TempDir(), ".env", "A=1\nBIG="+big+"\nB=2\n")
	m := env.NewMap()
	log, _ := newTestLogger()

	result, err := NewLoader(m, log).Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "BIG", "B"}, result.Applied)
	assert.Equal(t, "1", m["A"])
	assert.Equal(t, big, m["BIG"])
	assert.Equal(t, "2", m["B"])
}
