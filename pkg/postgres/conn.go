package postgres

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// Conn is a PostgreSQL connection bound to a ConnString
type Conn struct {
	connStr *ConnString
	conn    *pgx.Conn
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

// Connect can be used to connect to Postgres.
// If there already is an open connection, this just returns.
// If not, it will instantiate a new pgx.Conn, connect to Postgres, and store it
// internally before returning.
func (c *Conn) Connect() (err error) {
	if c.conn != nil {
		if !c.conn.IsClosed() {
			return nil
		}
		c.conn = nil
	}
	log.Debug("connecting to PostgreSQL")
	c.conn, err = pgx.Connect(context.Background(), c.connStr.String())
	if err != nil {
		c.conn = nil
		return err
	}
	return nil
}

// Close closes the underlying connection if one is open
func (c *Conn) Close() (err error) {
	if c.conn == nil {
		return nil
	}
	err = c.conn.Close(context.Background())
	c.conn = nil
	return err
}
