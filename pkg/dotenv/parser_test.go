package dotenv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		opts      ParseOptions
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{name: "plain", line: "DATABASE_URL=postgres://localhost/db", wantKey: "DATABASE_URL", wantValue: "postgres://localhost/db", wantOK: true},
		{name: "spaces around equals", line: "CACHE_URL = 'locmem://'", wantKey: "CACHE_URL", wantValue: "'locmem://'", wantOK: true},
		{name: "tabs and indentation", line: "\t  KEY\t=\tvalue  ", wantKey: "KEY", wantValue: "value", wantOK: true},
		{name: "split on first equals", line: "QS=a=b&c=d", wantKey: "QS", wantValue: "a=b&c=d", wantOK: true},
		{name: "empty value", line: "EMPTY=", wantKey: "EMPTY", wantValue: "", wantOK: true},
		{name: "inline hash kept", line: "COMMENTED=no # TEST", wantKey: "COMMENTED", wantValue: "no # TEST", wantOK: true},
		{name: "comment", line: "# IGNORED=1", wantOK: false},
		{name: "indented comment", line: "   # IGNORED=1", wantOK: false},
		{name: "blank", line: "   ", wantOK: false},
		{name: "no equals", line: "JUST_A_WORD", wantOK: false},
		{name: "empty key", line: "=value", wantOK: false},
		{name: "quotes kept by default", line: `SECRET="s3cr3t"`, wantKey: "SECRET", wantValue: `"s3cr3t"`, wantOK: true},
		{name: "strip double quotes", line: `SECRET="s3cr3t"`, opts: ParseOptions{StripQuotes: true}, wantKey: "SECRET", wantValue: "s3cr3t", wantOK: true},
		{name: "strip single quotes", line: `SECRET='s3cr3t'`, opts: ParseOptions{StripQuotes: true}, wantKey: "SECRET", wantValue: "s3cr3t", wantOK: true},
		{name: "mismatched quotes kept", line: `SECRET='s3cr3t"`, opts: ParseOptions{StripQuotes: true}, wantKey: "SECRET", wantValue: `'s3cr3t"`, wantOK: true},
		{name: "two quoted strings kept", line: `LIST='a', 'b'`, opts: ParseOptions{StripQuotes: true}, wantKey: "LIST", wantValue: `'a', 'b'`, wantOK: true},
		{name: "adjacent quoted strings kept", line: `PAIR="a" "b"`, opts: ParseOptions{StripQuotes: true}, wantKey: "PAIR", wantValue: `"a" "b"`, wantOK: true},
		{name: "escaped quote inside", line: `MSG="say \"hi\""`, opts: ParseOptions{StripQuotes: true}, wantKey: "MSG", wantValue: `say \"hi\"`, wantOK: true},
		{name: "other quote inside", line: `MSG="it's"`, opts: ParseOptions{StripQuotes: true}, wantKey: "MSG", wantValue: `it's`, wantOK: true},
		{name: "single quote char kept", line: `Q='`, opts: ParseOptions{StripQuotes: true}, wantKey: "Q", wantValue: "'", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := ParseLine(tt.line, tt.opts)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestParse(t *testing.T) {
	input := `DATABASE_URL=postgres://localhost:5432/example_com
CACHE_URL = 'hiredis://localhost:6379/1/?key_prefix=example_com'

# Ignored
not a directive
DEBUG=True
DEBUG=False
`
	directives, err := Parse(strings.NewReader(input), ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, []Directive{
		{Key: "DATABASE_URL", Value: "postgres://localhost:5432/example_com", Line: 1},
		{Key: "CACHE_URL", Value: "'hiredis://localhost:6379/1/?key_prefix=example_com'", Line: 2},
		{Key: "DEBUG", Value: "True", Line: 6},
		{Key: "DEBUG", Value: "False", Line: 7},
	}, directives)
}

func TestParse_Empty(t *testing.T) {
	directives, err := Parse(strings.NewReader(""), ParseOptions{})
	require.NoError(t, err)
	assert.Empty(t, directives)
}

func TestParse_LongLine(t *testing.T) {
	big := strings.Repeat("x", 2*1024*1024)
	input := "A=1\nBIG=" + big + "\nB=2\n"

	directives, err := Parse(strings.NewReader(input), ParseOptions{})
	require.NoError(t, err)
	require.Len(t, directives, 3)
	assert.Equal(t, Directive{Key: "A", Value: "1", Line: 1}, directives[0])
	assert.Equal(t, "BIG", directives[1].Key)
	assert.Len(t, directives[1].Value, len(big))
	assert.Equal(t, Directive{Key: "B", Value: "2", Line: 3}, directives[2])
}

func TestParse_Unterminated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  ParseOptions
		want  []Directive
	}{
		{
			name:  "last line read by default",
			input: "A=1\nB=2",
			want:  []Directive{{Key: "A", Value: "1", Line: 1}, {Key: "B", Value: "2", Line: 2}},
		},
		{
			name:  "last line skipped",
			input: "A=1\nB=2",
			opts:  ParseOptions{SkipUnterminated: true},
			want:  []Directive{{Key: "A", Value: "1", Line: 1}},
		},
		{
			name:  "terminated last line kept",
			input: "A=1\nB=2\n",
			opts:  ParseOptions{SkipUnterminated: true},
			want:  []Directive{{Key: "A", Value: "1", Line: 1}, {Key: "B", Value: "2", Line: 2}},
		},
		{
			name:  "crlf line endings",
			input: "A=1\r\nB=2\r\n",
			want:  []Directive{{Key: "A", Value: "1", Line: 1}, {Key: "B", Value: "2", Line: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directives, err := Parse(strings.NewReader(tt.input), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, directives)
		})
	}
}
