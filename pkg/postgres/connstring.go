package postgres

import (
	"fmt"
	"strings"

	"github.com/pgvillage-tools/connstr/pkg/conn"
)

const scheme = "postgres://"

// userSpec is the userspec part of the connection string (username@ or username:password@)
type userSpec interface {
	fmt.Stringer
}

type userOnly string

func (u userOnly) String() string {
	return fmt.Sprintf("%s@", string(u))
}

type userPassword conn.UserPassword

func (up userPassword) String() string {
	return fmt.Sprintf("%s:%s@", up.Username, up.Password)
}

// hostSpec is the hostspec part of the connection string (host or host:port)
type hostSpec interface {
	fmt.Stringer
}

type hostOnly string

func (h hostOnly) String() string {
	return string(h)
}

type hostPort conn.HostPort

func (hp hostPort) String() string {
	return fmt.Sprintf("%s:%d", hp.Host, hp.Port)
}

type dbName string

func (db dbName) String() string {
	return fmt.Sprintf("/%s", string(db))
}

// ConnString assembles a PostgreSQL URI connection string.
// All values passed to its setters are percent encoded before being stored, so
// the rendered string can be handed to the driver as-is.
type ConnString struct {
	userspec   userSpec
	hostspec   hostSpec
	database   fmt.Stringer
	parameters map[string]string
}

// New returns a new and empty ConnString, which renders to just `postgres://`
// until setters have been chained onto it.
func New() *ConnString {
	return &ConnString{
		parameters: map[string]string{},
	}
}

// SetUsername sets/replaces the username and omits the password from the connection string
func (cs *ConnString) SetUsername(username string) *ConnString {
	cs.userspec = userOnly(percentEncode(username))
	return cs
}

// SetUsernamePassword sets/replaces the username and the password
func (cs *ConnString) SetUsernamePassword(up conn.UserPassword) *ConnString {
	cs.userspec = userPassword(conn.UserPassword{
		Username: percentEncode(up.Username),
		Password: percentEncode(up.Password),
	})
	return cs
}

// SetHost sets/replaces the host and omits the port from the connection string,
// which usually results in the usage of the default port
func (cs *ConnString) SetHost(host string) *ConnString {
	cs.hostspec = hostOnly(percentEncode(host))
	return cs
}

// SetHostPort sets/replaces the host and the port
func (cs *ConnString) SetHostPort(hp conn.HostPort) *ConnString {
	cs.hostspec = hostPort(conn.HostPort{
		Host: percentEncode(hp.Host),
		Port: hp.Port,
	})
	return cs
}

// SetDatabase sets/replaces the database name
func (cs *ConnString) SetDatabase(name string) *ConnString {
	cs.database = dbName(percentEncode(name))
	return cs
}

// SetConnectTimeout sets/replaces the connect_timeout parameter (in seconds)
func (cs *ConnString) SetConnectTimeout(seconds uint) *ConnString {
	return cs.SetParameter("connect_timeout", fmt.Sprintf("%d", seconds))
}

// SetParameter sets/replaces ANY parameter, even one that is not in the list of
// parameters that PostgreSQL supports. Both key and value are percent encoded.
func (cs *ConnString) SetParameter(key string, value string) *ConnString {
	cs.parameters[percentEncode(key)] = percentEncode(value)
	return cs
}

// Clone returns a copy of this ConnString
func (cs ConnString) Clone() *ConnString {
	clone := New()
	clone.userspec = cs.userspec
	clone.hostspec = cs.hostspec
	clone.database = cs.database
	for key, value := range cs.parameters {
		clone.parameters[key] = value
	}
	return clone
}

// String renders the connection string.
// Parameters are rendered in no particular order, which is irrelevant to the driver.
func (cs ConnString) String() string {
	var connString strings.Builder
	connString.WriteString(scheme)
	if cs.userspec != nil {
		connString.WriteString(cs.userspec.String())
	}
	if cs.hostspec != nil {
		connString.WriteString(cs.hostspec.String())
	}
	if cs.database != nil {
		connString.WriteString(cs.database.String())
	}
	if len(cs.parameters) > 0 {
		var pairs []string
		for key, value := range cs.parameters {
			pairs = append(pairs, fmt.Sprintf("%s=%s", key, value))
		}
		connString.WriteString("?" + strings.Join(pairs, "&"))
	}
	return connString.String()
}
