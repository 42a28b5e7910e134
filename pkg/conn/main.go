// Package conn holds the small value structs shared by both connection string dialects
package conn

// UserPassword bundles a username and password as a single value
type UserPassword struct {
	Username string
	Password string
}

// HostPort bundles a host and port as a single value
type HostPort struct {
	Host string
	Port uint
}
