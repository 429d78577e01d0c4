package urlconf

import (
	"fmt"
	"strconv"
	"strings"
)

// parsedURL is a lenient split of a configuration URL. Unlike net/url it
// accepts comma separated host lists, opaque paths such as file:./media/
// and malformed percent escapes in credentials.
type parsedURL struct {
	raw      string
	scheme   string
	netloc   string
	path     string
	fragment string
	query    map[string][]string

	// user and password are still percent-encoded
	user        string
	hasUser     bool
	password    string
	hasPassword bool

	hostname string
	rawPort  string
}

func splitURL(raw string) *parsedURL {
	s := strings.TrimLeftFunc(raw, func(r rune) bool { return r <= ' ' })
	s = strings.NewReplacer("\t", "", "\r", "", "\n", "").Replace(s)

	u := &parsedURL{raw: raw}

	if i := strings.IndexByte(s, ':'); i > 0 && isSchemeStart(s[0]) {
		valid := true
		for j := 1; j < i; j++ {
			if !isSchemeChar(s[j]) {
				valid = false
				break
			}
		}
		if valid {
			u.scheme = strings.ToLower(s[:i])
			s = s[i+1:]
		}
	}

	if strings.HasPrefix(s, "//") {
		rest := s[2:]
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			end = len(rest)
		}
		u.netloc = rest[:end]
		s = rest[end:]
	}

	s, u.fragment, _ = strings.Cut(s, "#")
	s, rawQuery, _ := strings.Cut(s, "?")
	u.path = s
	u.query = parseQuery(rawQuery)

	userinfo, hostinfo := splitUserinfo(u.netloc)
	if strings.Contains(u.netloc, "@") {
		u.hasUser = true
		u.user, u.password, u.hasPassword = strings.Cut(userinfo, ":")
	}

	var host string
	if _, bracketed, ok := strings.Cut(hostinfo, "["); ok {
		var after string
		host, after, _ = strings.Cut(bracketed, "]")
		_, u.rawPort, _ = strings.Cut(after, ":")
	} else {
		host, u.rawPort, _ = strings.Cut(hostinfo, ":")
	}
	u.hostname = strings.ToLower(host)

	return u
}

// splitUserinfo splits a netloc at its last '@'
func splitUserinfo(netloc string) (userinfo, hostinfo string) {
	i := strings.LastIndexByte(netloc, '@')
	if i < 0 {
		return "", netloc
	}
	return netloc[:i], netloc[i+1:]
}

func isSchemeStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSchemeChar(c byte) bool {
	return isSchemeStart(c) || ('0' <= c && c <= '9') || c == '+' || c == '-' || c == '.'
}

// port returns the numeric port. ok is false when the URL has none.
func (u *parsedURL) port() (port int, ok bool, err error) {
	if u.rawPort == "" {
		return 0, false, nil
	}
	for i := 0; i < len(u.rawPort); i++ {
		if u.rawPort[i] < '0' || u.rawPort[i] > '9' {
			return 0, false, fmt.Errorf("port %q is not a number", u.rawPort)
		}
	}
	n, err := strconv.Atoi(u.rawPort)
	if err != nil || n > 65535 {
		return 0, false, fmt.Errorf("port %q out of range 0-65535", u.rawPort)
	}
	return n, true, nil
}

// first returns the first value given for key
func (u *parsedURL) first(key string) (string, bool) {
	values := u.query[key]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// parseQuery splits on '&'. Pairs without '=' or with an empty value are
// dropped, so "?ssl" and "?ssl=" both leave ssl unset.
func parseQuery(raw string) map[string][]string {
	query := make(map[string][]string)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok || value == "" {
			continue
		}
		key = unquote(strings.ReplaceAll(key, "+", " "))
		query[key] = append(query[key], unquote(strings.ReplaceAll(value, "+", " ")))
	}
	return query
}

// unquote decodes %XX escapes and leaves malformed ones untouched
func unquote(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		b = append(b, s[i])
	}
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
