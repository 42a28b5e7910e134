package sqlserver

import (
	"database/sql"

	// Registers the sqlserver database/sql driver
	_ "github.com/microsoft/go-mssqldb"
)

// Conn is a SQL Server connection bound to a ConnString
type Conn struct {
	connStr *ConnString
	db      *sql.DB
}

// NewConn returns a connection with its connection string set
func NewConn(connStr *ConnString) (c *Conn) {
	return &Conn{
		connStr: connStr,
	}
}

// ConnString returns a copy of the underlying ConnString
func (c *Conn) ConnString() *ConnString {
	return c.connStr.Clone()
}

// Connect opens a database handle for the rendered connection string and
// verifies it with a ping. If there already is an open handle, this just returns.
func (c *Conn) Connect() (err error) {
	if c.db != nil {
		return nil
	}
	log.Debug("connecting to SQL Server")
	db, err := sql.Open("sqlserver", c.connStr.String())
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return err
	}
	c.db = db
	return nil
}

// Close closes the underlying handle if one is open
func (c *Conn) Close() (err error) {
	if c.db == nil {
		return nil
	}
	err = c.db.Close()
	c.db = nil
	return err
}
