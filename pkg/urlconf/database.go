package urlconf

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

var databaseEngines = map[string]string{
	"postgres": "django.db.backends.postgresql",
	"postgis":  "django.contrib.gis.db.backends.postgis",
	"sqlite":   "django.db.backends.sqlite3",
	"mysql":    "django.db.backends.mysql",
}

var databaseDrivers = map[string]string{
	"postgres": "postgres",
	"postgis":  "postgres",
	"sqlite":   "sqlite3",
	"mysql":    "mysql",
}

// Database is a decoded database URL
type Database struct {
	Scheme   string
	Engine   string
	Name     string
	User     string
	Password string
	Host     string
	// Port is empty when the URL has no port
	Port string
	// ConnMaxAge is nil unless conn_max_age was given
	ConnMaxAge *int
}

// ParseDatabase decodes a postgres://, postgis://, sqlite:// or mysql:// URL
func ParseDatabase(s string) (*Database, error) {
	u := splitURL(s)
	engine, ok := databaseEngines[u.scheme]
	if !ok {
		return nil, &UnknownSchemeError{Category: CategoryDatabase, Scheme: u.scheme}
	}

	db := &Database{
		Scheme:   u.scheme,
		Engine:   engine,
		Name:     unquote(strings.Trim(u.path, "/")),
		User:     unquote(u.user),
		Password: unquote(u.password),
		Host:     unquote(u.hostname),
	}

	port, hasPort, err := u.port()
	if err != nil {
		return nil, newInvalidURLError(s, "bad port", err)
	}
	if hasPort && port != 0 {
		db.Port = strconv.Itoa(port)
	}

	if raw, ok := u.first("conn_max_age"); ok {
		age, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, newInvalidURLError(s, "conn_max_age must be an integer", err)
		}
		db.ConnMaxAge = &age
	}

	return db, nil
}

// Fields implements Record
func (d *Database) Fields() map[string]any {
	fields := map[string]any{
		"ENGINE":   d.Engine,
		"NAME":     d.Name,
		"USER":     d.User,
		"PASSWORD": d.Password,
		"HOST":     d.Host,
		"PORT":     d.Port,
	}
	if d.ConnMaxAge != nil {
		fields["CONN_MAX_AGE"] = *d.ConnMaxAge
	}
	return fields
}

// DriverName returns the database/sql driver name for the scheme
func (d *Database) DriverName() string {
	return databaseDrivers[d.Scheme]
}

// ConnString renders the record as a data source name for DriverName. For
// postgres and postgis this is a libpq key/value string, for sqlite the file
// name and for mysql a user:password@tcp(host:port)/name DSN.
func (d *Database) ConnString() (string, error) {
	switch d.Scheme {
	case "postgres", "postgis":
		return d.postgresConnString()
	case "sqlite":
		return d.Name, nil
	case "mysql":
		var b strings.Builder
		if d.User != "" || d.Password != "" {
			b.WriteString(d.User)
			if d.Password != "" {
				b.WriteString(":" + d.Password)
			}
			b.WriteString("@")
		}
		if d.Host != "" {
			host := d.Host
			if d.Port != "" {
				host = net.JoinHostPort(d.Host, d.Port)
			}
			if strings.HasPrefix(d.Host, "/") {
				fmt.Fprintf(&b, "unix(%s)", d.Host)
			} else {
				fmt.Fprintf(&b, "tcp(%s)", host)
			}
		}
		b.WriteString("/" + d.Name)
		return b.String(), nil
	default:
		return "", &UnknownSchemeError{Category: CategoryDatabase, Scheme: d.Scheme}
	}
}

func (d *Database) postgresConnString() (string, error) {
	u := &url.URL{Scheme: "postgres"}
	if d.User != "" {
		if d.Password != "" {
			u.User = url.UserPassword(d.User, d.Password)
		} else {
			u.User = url.User(d.User)
		}
	}

	query := url.Values{}
	switch {
	case strings.HasPrefix(d.Host, "/"):
		// unix socket directory
		query.Set("host", d.Host)
		if d.Port != "" {
			query.Set("port", d.Port)
		}
	case d.Host != "" && d.Port != "":
		u.Host = net.JoinHostPort(d.Host, d.Port)
	default:
		u.Host = d.Host
	}
	if d.Name != "" {
		u.Path = "/" + d.Name
	}
	u.RawQuery = query.Encode()

	dsn, err := pq.ParseURL(u.String())
	if err != nil {
		return "", fmt.Errorf("failed to build postgres connection string: %w", err)
	}
	return dsn, nil
}
