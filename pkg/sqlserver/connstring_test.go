package sqlserver_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgvillage-tools/connstr/pkg/conn"
	"github.com/pgvillage-tools/connstr/pkg/sqlserver"
)

// pairs splits a rendered connection string so tests can ignore map ordering.
// Only safe for values that contain no quoted semicolons.
func pairs(connString string) []string {
	if connString == "" {
		return nil
	}
	return strings.Split(connString, ";")
}

func TestEmpty(t *testing.T) {
	assert.Empty(t, sqlserver.New().String())
}

func TestSetParameter(t *testing.T) {
	myConnString := sqlserver.New().SetParameter("Key", "Value")
	assert.Equal(t, "Key=Value", myConnString.String())

	myConnString.SetParameter("Key", " Value")
	assert.Equal(t, `Key=" Value"`, myConnString.String())
}

func TestSetUsername(t *testing.T) {
	myConnString := sqlserver.New().SetUsername("User")
	assert.Equal(t, "user=User", myConnString.String())

	myConnString.SetUsernamePassword(conn.UserPassword{Username: "User1", Password: "Pwd"})
	assert.ElementsMatch(t, []string{"user=User1", "password=Pwd"}, pairs(myConnString.String()))

	// Replacing the username must also drop the stored password
	myConnString.SetUsername("User2")
	assert.Equal(t, "user=User2", myConnString.String())
}

func TestSetHost(t *testing.T) {
	myConnString := sqlserver.New().SetHost("Host")
	assert.Equal(t, "server=Host", myConnString.String())

	myConnString.SetHostPort(conn.HostPort{Host: "Host1", Port: 80})
	assert.Equal(t, "server=Host1,80", myConnString.String())

	myConnString.SetHost("Host2")
	assert.Equal(t, "server=Host2", myConnString.String())
}

func TestEnableEncryption(t *testing.T) {
	assert.Equal(t, "encrypt=true", sqlserver.New().EnableEncryption().String())

	myConnString := sqlserver.New().EnableEncryptionTrustServerCertificate()
	assert.ElementsMatch(t,
		[]string{"encrypt=true", "trustServerCertificate=true"},
		pairs(myConnString.String()))
}

func TestSetDatabase(t *testing.T) {
	assert.Equal(t, "database=DbName", sqlserver.New().SetDatabase("DbName").String())
}

func TestSetConnectTimeout(t *testing.T) {
	// Negative value => ignored
	myConnString := sqlserver.New().SetConnectTimeout(-2)
	assert.Empty(t, myConnString.String())

	myConnString.SetConnectTimeout(30)
	assert.Equal(t, "timeout=30", myConnString.String())

	// Negative value => previous value sticks
	myConnString.SetConnectTimeout(-2)
	assert.Equal(t, "timeout=30", myConnString.String())
}

func TestSetCommandTimeout(t *testing.T) {
	// Negative value => ignored
	myConnString := sqlserver.New().SetCommandTimeout(-2)
	assert.Empty(t, myConnString.String())

	myConnString.SetCommandTimeout(30)
	assert.Equal(t, "command timeout=30", myConnString.String())

	// Negative value => previous value sticks
	myConnString.SetCommandTimeout(-2)
	assert.Equal(t, "command timeout=30", myConnString.String())
}

func TestSetConnectRetryCount(t *testing.T) {
	myConnString := sqlserver.New().SetConnectRetryCount(0)
	assert.Equal(t, "connectRetryCount=0", myConnString.String())

	myConnString.SetConnectRetryCount(255)
	assert.Equal(t, "connectRetryCount=255", myConnString.String())
}

func TestSetConnectRetryInterval(t *testing.T) {
	for _, test := range []struct {
		interval uint8
		expected string
	}{
		{interval: 0, expected: "connectRetryInterval=1"},
		{interval: 1, expected: "connectRetryInterval=1"},
		{interval: 30, expected: "connectRetryInterval=30"},
		{interval: 60, expected: "connectRetryInterval=60"},
		{interval: 61, expected: "connectRetryInterval=60"},
	} {
		assert.Equal(t, test.expected,
			sqlserver.New().SetConnectRetryInterval(test.interval).String())
	}
}

func TestClone(t *testing.T) {
	myConnString := sqlserver.New().SetDatabase("DbName")
	myClone := myConnString.Clone()
	myClone.SetDatabase("Other")
	assert.Equal(t, "database=DbName", myConnString.String())
	assert.Equal(t, "database=Other", myClone.String())
}

func TestQuotedValuesInRender(t *testing.T) {
	myConnString := sqlserver.New().SetDatabase("Db;Name")
	assert.Equal(t, `database="Db;Name"`, myConnString.String())
}
