// Package handler wires config, logging and the connection string builders together
package handler

import (
	"fmt"
	"os"

	"github.com/pgvillage-tools/connstr/internal/config"
	"github.com/pgvillage-tools/connstr/pkg/conn"
	"github.com/pgvillage-tools/connstr/pkg/postgres"
	"github.com/pgvillage-tools/connstr/pkg/sqlserver"
	"github.com/pgvillage-tools/connstr/pkg/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.SugaredLogger
	atom zap.AtomicLevel
)

// Initialize can be used to initialize this module with the logger
func Initialize() {
	atom = zap.NewAtomicLevel()
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	log = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		atom,
	)).Sugar()

	postgres.Initialize(log)
	sqlserver.Initialize(log)
}

// Handler is a struct to hold the data that Handle uses.
// There is only one externally available Method (Handle) which will build all
// configured connection strings.
type Handler struct {
	config config.Config
}

// NewHandler can be used to initialize a new Handler struct before calling Handle on it
func NewHandler() (h *Handler, err error) {
	cnf, err := config.NewConfig()
	if err != nil {
		return h, err
	}

	atom.SetLevel(cnf.General.LogLevel)

	h = &Handler{
		config: cnf,
	}

	return h, nil
}

// Handle builds (and optionally checks) every configured connection string
func (h Handler) Handle() {
	if h.config.General.Debug {
		if err := utils.PrettyPrint(h.config); err != nil {
			log.Errorf("could not dump config: %v", err)
		}
	}

	for _, subHandler := range []func() error{
		h.handlePostgres,
		h.handleSQLServer,
	} {
		err := subHandler()
		if err != nil {
			log.Fatal(err)
		}
	}
}

func (h Handler) handlePostgres() error {
	cnf := h.config.Postgres
	if cnf == nil {
		return nil
	}
	log.Debug("building PostgreSQL connection string")
	connString := postgres.New()
	// Arbitrary parameters first, so that the explicitly configured options win
	for key, value := range cnf.Parameters {
		connString.SetParameter(key, value)
	}
	if cnf.User != "" {
		if cnf.Password.IsSet() {
			password, err := cnf.Password.GetCred()
			if err != nil {
				return err
			}
			connString.SetUsernamePassword(conn.UserPassword{Username: cnf.User, Password: password})
		} else {
			connString.SetUsername(cnf.User)
		}
	}
	if cnf.Host != "" {
		if cnf.Port != nil {
			connString.SetHostPort(conn.HostPort{Host: cnf.Host, Port: *cnf.Port})
		} else {
			connString.SetHost(cnf.Host)
		}
	}
	if cnf.Database != "" {
		connString.SetDatabase(cnf.Database)
	}
	if cnf.ConnectTimeout != nil {
		connString.SetConnectTimeout(*cnf.ConnectTimeout)
	}
	fmt.Println(connString.String())
	if cnf.Check {
		pgConn := postgres.NewConn(connString)
		if err := pgConn.Connect(); err != nil {
			return err
		}
		defer pgConn.Close()
		log.Info("PostgreSQL connection check succeeded")
	}
	return nil
}

func (h Handler) handleSQLServer() error {
	cnf := h.config.SQLServer
	if cnf == nil {
		return nil
	}
	log.Debug("building SQL Server connection string")
	connString := sqlserver.New()
	// Arbitrary parameters first, so that the explicitly configured options win
	for key, value := range cnf.Parameters {
		connString.SetParameter(key, value)
	}
	if cnf.User != "" {
		if cnf.Password.IsSet() {
			password, err := cnf.Password.GetCred()
			if err != nil {
				return err
			}
			connString.SetUsernamePassword(conn.UserPassword{Username: cnf.User, Password: password})
		} else {
			connString.SetUsername(cnf.User)
		}
	}
	if cnf.Host != "" {
		if cnf.Port != nil {
			connString.SetHostPort(conn.HostPort{Host: cnf.Host, Port: *cnf.Port})
		} else {
			connString.SetHost(cnf.Host)
		}
	}
	if cnf.Database != "" {
		connString.SetDatabase(cnf.Database)
	}
	if cnf.TrustServerCertificate {
		connString.EnableEncryptionTrustServerCertificate()
	} else if cnf.Encrypt {
		connString.EnableEncryption()
	}
	if cnf.ConnectTimeout != nil {
		connString.SetConnectTimeout(*cnf.ConnectTimeout)
	}
	if cnf.CommandTimeout != nil {
		connString.SetCommandTimeout(*cnf.CommandTimeout)
	}
	if cnf.ConnectRetryCount != nil {
		connString.SetConnectRetryCount(*cnf.ConnectRetryCount)
	}
	if cnf.ConnectRetryInterval != nil {
		connString.SetConnectRetryInterval(*cnf.ConnectRetryInterval)
	}
	fmt.Println(connString.String())
	if cnf.Check {
		msConn := sqlserver.NewConn(connString)
		if err := msConn.Connect(); err != nil {
			return err
		}
		defer msConn.Close()
		log.Info("SQL Server connection check succeeded")
	}
	return nil
}
