// Package config is used to define a yaml representation of the connstr config
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pgvillage-tools/connstr/internal/version"
	"github.com/pgvillage-tools/connstr/pkg/creds"
	"go.uber.org/zap/zapcore"

	"gopkg.in/yaml.v2"
)

/*
 * This module reads the config file and returns a config object with all entries
 * from the config yaml file.
 */

const (
	envConfName     = "CONNSTRCONFIG"
	defaultConfFile = "/etc/connstr/config.yaml"
)

// GeneralConfig holds config that applies to a whole connstr run
type GeneralConfig struct {
	LogLevel zapcore.Level `yaml:"loglevel"`
	Debug    bool          `yaml:"debug"`
}

// PostgresConfig describes the PostgreSQL connection string to build.
// Numeric options are pointers so that an absent option stays unset instead of
// being rendered as 0.
type PostgresConfig struct {
	User           string            `yaml:"user"`
	Password       creds.Credential  `yaml:"password"`
	Host           string            `yaml:"host"`
	Port           *uint             `yaml:"port"`
	Database       string            `yaml:"database"`
	ConnectTimeout *uint             `yaml:"connect_timeout"`
	Parameters     map[string]string `yaml:"parameters"`
	Check          bool              `yaml:"check"`
}

// SQLServerConfig describes the SQL Server connection string to build
type SQLServerConfig struct {
	User                   string            `yaml:"user"`
	Password               creds.Credential  `yaml:"password"`
	Host                   string            `yaml:"host"`
	Port                   *uint             `yaml:"port"`
	Database               string            `yaml:"database"`
	Encrypt                bool              `yaml:"encrypt"`
	TrustServerCertificate bool              `yaml:"trust_server_certificate"`
	ConnectTimeout         *int              `yaml:"connect_timeout"`
	CommandTimeout         *int              `yaml:"command_timeout"`
	ConnectRetryCount      *uint8            `yaml:"connect_retry_count"`
	ConnectRetryInterval   *uint8            `yaml:"connect_retry_interval"`
	Parameters             map[string]string `yaml:"parameters"`
	Check                  bool              `yaml:"check"`
}

// Config holds all config for a connstr run
type Config struct {
	General   GeneralConfig    `yaml:"general"`
	Postgres  *PostgresConfig  `yaml:"postgres"`
	SQLServer *SQLServerConfig `yaml:"sqlserver"`
}

// NewConfig will instantiate a new Config and return it
func NewConfig() (config Config, err error) {
	var configFile string
	var debug bool
	var displayVersion bool
	flag.BoolVar(&debug, "d", false, "Add debugging output")
	flag.BoolVar(&displayVersion, "v", false, "Show version information")
	flag.StringVar(&configFile, "c", os.Getenv(envConfName), "Path to configfile")

	flag.Parse()
	if displayVersion {
		fmt.Println(version.GetAppVersion())
		os.Exit(0)
	}
	if configFile == "" {
		configFile = defaultConfFile
	}
	configFile, err = filepath.EvalSymlinks(configFile)
	if err != nil {
		return config, err
	}

	// This is only parsed as yaml, nothing else
	// #nosec
	yamlConfig, err := os.ReadFile(configFile)
	if err != nil {
		return config, err
	}
	err = yaml.Unmarshal(yamlConfig, &config)
	config.General.Debug = config.General.Debug || debug
	return config, err
}
