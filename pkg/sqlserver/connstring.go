package sqlserver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pgvillage-tools/connstr/pkg/conn"
)

// Parameter keys managed by the setters
const (
	keyUser                   = "user"
	keyPassword               = "password"
	keyServer                 = "server"
	keyEncrypt                = "encrypt"
	keyTrustServerCertificate = "trustServerCertificate"
	keyDatabase               = "database"
	keyConnectTimeout         = "timeout"
	keyCommandTimeout         = "command timeout"
	keyConnectRetryCount      = "connectRetryCount"
	keyConnectRetryInterval   = "connectRetryInterval"
)

// Connect retry intervals are clipped into this range
const (
	minRetryInterval = 1
	maxRetryInterval = 60
)

// ConnString assembles a Microsoft SQL Server connection string.
// All parameter values are automatically quoted to match the format the driver
// expects, so the rendered string can be handed to the driver as-is.
type ConnString struct {
	parameters map[string]string
}

// New returns a new and empty ConnString, which renders to an empty string
// until setters have been chained onto it.
func New() *ConnString {
	return &ConnString{
		parameters: map[string]string{},
	}
}

// SetParameter sets/replaces ANY parameter, even one that is not in the list of
// parameters that SQL Server supports. The value is quoted as needed, the key
// is stored verbatim.
func (cs *ConnString) SetParameter(key string, value string) *ConnString {
	cs.parameters[key] = quoteValue(value)
	return cs
}

// SetUsername sets/replaces the username and removes the password parameter
// (if it has been previously set)
func (cs *ConnString) SetUsername(username string) *ConnString {
	cs.SetParameter(keyUser, username)
	delete(cs.parameters, keyPassword)
	return cs
}

// SetUsernamePassword sets/replaces the username and the password
func (cs *ConnString) SetUsernamePassword(up conn.UserPassword) *ConnString {
	return cs.SetParameter(keyUser, up.Username).SetParameter(keyPassword, up.Password)
}

// SetHost sets/replaces the host and omits the port, which usually results in
// the usage of the default port
func (cs *ConnString) SetHost(host string) *ConnString {
	return cs.SetParameter(keyServer, host)
}

// SetHostPort sets/replaces the host and the port.
// SQL Server expects both comma joined in a single server parameter.
func (cs *ConnString) SetHostPort(hp conn.HostPort) *ConnString {
	return cs.SetParameter(keyServer, fmt.Sprintf("%s,%d", hp.Host, hp.Port))
}

// EnableEncryption enables encryption
func (cs *ConnString) EnableEncryption() *ConnString {
	return cs.SetParameter(keyEncrypt, "true")
}

// EnableEncryptionTrustServerCertificate enables encryption and trusts the
// server certificate even if it would normally not be trusted (e.g. self
// signed, or signed by an untrusted root CA)
func (cs *ConnString) EnableEncryptionTrustServerCertificate() *ConnString {
	return cs.EnableEncryption().SetParameter(keyTrustServerCertificate, "true")
}

// SetDatabase sets/replaces the database name
func (cs *ConnString) SetDatabase(name string) *ConnString {
	return cs.SetParameter(keyDatabase, name)
}

// SetConnectTimeout sets/replaces the connect timeout (in seconds).
// Negative values are ignored.
func (cs *ConnString) SetConnectTimeout(seconds int) *ConnString {
	if seconds < 0 {
		return cs
	}
	return cs.SetParameter(keyConnectTimeout, strconv.Itoa(seconds))
}

// SetCommandTimeout sets/replaces the command timeout (in seconds).
// Negative values are ignored.
func (cs *ConnString) SetCommandTimeout(seconds int) *ConnString {
	if seconds < 0 {
		return cs
	}
	return cs.SetParameter(keyCommandTimeout, strconv.Itoa(seconds))
}

// SetConnectRetryCount sets/replaces the connection retry count
func (cs *ConnString) SetConnectRetryCount(count uint8) *ConnString {
	return cs.SetParameter(keyConnectRetryCount, strconv.Itoa(int(count)))
}

// SetConnectRetryInterval sets/replaces the connection retry interval (in
// seconds). Values outside the range [1, 60] are clipped into it.
func (cs *ConnString) SetConnectRetryInterval(seconds uint8) *ConnString {
	seconds = min(max(seconds, minRetryInterval), maxRetryInterval)
	return cs.SetParameter(keyConnectRetryInterval, strconv.Itoa(int(seconds)))
}

// Clone returns a copy of this ConnString
func (cs ConnString) Clone() *ConnString {
	clone := New()
	for key, value := range cs.parameters {
		clone.parameters[key] = value
	}
	return clone
}

// String renders the connection string by joining all key=value pairs with
// semicolons, in no particular order.
func (cs ConnString) String() string {
	var pairs []string
	for key, value := range cs.parameters {
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, value))
	}
	return strings.Join(pairs, ";")
}
