package urlconf

import (
	"strconv"
	"strings"
)

var emailBackends = map[string]string{
	"smtp":       "django.core.mail.backends.smtp.EmailBackend",
	"submission": "django.core.mail.backends.smtp.EmailBackend",
	"locmem":     "django.core.mail.backends.locmem.EmailBackend",
	"console":    "django.core.mail.backends.console.EmailBackend",
	"dummy":      "django.core.mail.backends.dummy.EmailBackend",
}

const (
	defaultSMTPHost       = "localhost"
	defaultSMTPPort       = 25
	defaultSubmissionPort = 587
)

// Email is a decoded email URL
type Email struct {
	Backend  string
	User     string
	Password string
	// Host is empty and Port zero when neither the URL nor the scheme
	// defaults provide one
	Host    string
	Port    int
	Timeout *int
	UseSSL  bool
	UseTLS  bool

	DefaultFromEmail *string
	ServerEmail      *string
}

// ParseEmail decodes an smtp://, submission://, locmem://, console:// or
// dummy:// URL.
//
// smtp defaults to localhost:25. submission turns on TLS and defaults to port
// 587. The ssl and tls query flags are exclusive; tls wins when both are set.
func ParseEmail(s string) (*Email, error) {
	u := splitURL(s)
	backend, ok := emailBackends[u.scheme]
	if !ok {
		return nil, &UnknownSchemeError{Category: CategoryEmail, Scheme: u.scheme}
	}

	port, _, err := u.port()
	if err != nil {
		return nil, newInvalidURLError(s, "bad port", err)
	}

	e := &Email{
		Backend:  backend,
		User:     unquote(u.user),
		Password: unquote(u.password),
		Host:     u.hostname,
		Port:     port,
	}

	switch u.scheme {
	case "smtp":
		if e.Host == "" {
			e.Host = defaultSMTPHost
		}
		if e.Port == 0 {
			e.Port = defaultSMTPPort
		}
	case "submission":
		e.UseTLS = true
		if e.Port == 0 {
			e.Port = defaultSubmissionPort
		}
	}

	if _, ok := u.first("ssl"); ok {
		e.UseSSL = true
		e.UseTLS = false
	}
	if _, ok := u.first("tls"); ok {
		e.UseSSL = false
		e.UseTLS = true
	}

	if raw, ok := u.first("timeout"); ok {
		timeout, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, newInvalidURLError(s, "timeout must be an integer", err)
		}
		e.Timeout = &timeout
	}

	if from, ok := u.first("_default_from_email"); ok {
		e.DefaultFromEmail = &from
	}
	if server, ok := u.first("_server_email"); ok {
		e.ServerEmail = &server
	}

	return e, nil
}

// Fields implements Record. A missing host or port is reported as nil.
func (e *Email) Fields() map[string]any {
	fields := map[string]any{
		"EMAIL_BACKEND":       e.Backend,
		"EMAIL_HOST_USER":     e.User,
		"EMAIL_HOST_PASSWORD": e.Password,
		"EMAIL_HOST":          nil,
		"EMAIL_PORT":          nil,
		"EMAIL_TIMEOUT":       nil,
		"EMAIL_USE_SSL":       e.UseSSL,
		"EMAIL_USE_TLS":       e.UseTLS,
	}
	if e.Host != "" {
		fields["EMAIL_HOST"] = e.Host
	}
	if e.Port != 0 {
		fields["EMAIL_PORT"] = e.Port
	}
	if e.Timeout != nil {
		fields["EMAIL_TIMEOUT"] = *e.Timeout
	}
	if e.DefaultFromEmail != nil {
		fields["DEFAULT_FROM_EMAIL"] = *e.DefaultFromEmail
	}
	if e.ServerEmail != nil {
		fields["SERVER_EMAIL"] = *e.ServerEmail
	}
	return fields
}
