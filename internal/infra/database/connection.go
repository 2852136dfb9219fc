package database

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib" // Driver do Postgres
	"github.com/lib/pq"
)

const (
	DriverPgx = "pgx"
	DriverPq  = "postgres"
)

var ErrEmptyConnString = errors.New("empty database connection string")

var sslDisabled = regexp.MustCompile(`(^|\s)sslmode\s*=\s*'?disable'?(\s|$)`)

// ConnectionOpener abre uma conexão de vida curta; quem chama fecha.
type ConnectionOpener interface {
	Open(ctx context.Context) (*sql.DB, error)
}

// Connector não guarda pool: cada Open cria um *sql.DB com uma única
// conexão, usado por uma requisição e fechado logo depois da consulta.
type Connector struct {
	Driver     string
	ConnString string
}

func NewConnector(driver, connString string) *Connector {
	return &Connector{Driver: driver, ConnString: connString}
}

func (c *Connector) Open(ctx context.Context) (*sql.DB, error) {
	return NewDBConnection(ctx, c.Driver, c.ConnString)
}

// NewDBConnection abre a conexão e testa o Ping. O TLS é aceito sem
// validar a cadeia do certificado do servidor (Neon atrás de proxy).
func NewDBConnection(ctx context.Context, driver, connString string) (*sql.DB, error) {
	if connString == "" {
		return nil, ErrEmptyConnString
	}

	var (
		db  *sql.DB
		err error
	)
	switch driver {
	case DriverPq:
		db, err = openPq(connString)
	case DriverPgx, "":
		db, err = openPgx(connString)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao conectar no banco: %w", err)
	}

	return db, nil
}

func openPgx(connString string) (*sql.DB, error) {
	cfg, err := pgxConfig(connString)
	if err != nil {
		return nil, err
	}

	return stdlib.OpenDB(*cfg), nil
}

// pgxConfig desliga a verificação no TLS principal e em todos os fallbacks
// (outros hosts da URL e o modo prefer).
func pgxConfig(connString string) (*pgx.ConnConfig, error) {
	cfg, err := pgx.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("connection string inválida: %w", err)
	}

	skipVerify(cfg.TLSConfig)
	for _, fb := range cfg.Fallbacks {
		skipVerify(fb.TLSConfig)
	}

	return cfg, nil
}

// sslmode=disable é respeitado (ambiente local); qualquer outro modo
// vira TLS sem verificação.
func skipVerify(tlsCfg *tls.Config) {
	if tlsCfg == nil {
		return
	}
	tlsCfg.InsecureSkipVerify = true
	tlsCfg.VerifyPeerCertificate = nil
	tlsCfg.VerifyConnection = nil
}

func openPq(connString string) (*sql.DB, error) {
	dsn, err := pqConnString(connString)
	if err != nil {
		return nil, err
	}

	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("connection string inválida: %w", err)
	}

	return sql.OpenDB(connector), nil
}

// pqConnString converte URL para key=value e força sslmode=require, que no
// lib/pq é TLS sem verificação da cadeia.
func pqConnString(connString string) (string, error) {
	dsn := connString
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		parsed, err := pq.ParseURL(dsn)
		if err != nil {
			return "", fmt.Errorf("connection string inválida: %w", err)
		}
		dsn = parsed
	}

	// pq.ParseURL devolve os valores entre aspas (sslmode='disable').
	if sslDisabled.MatchString(dsn) {
		return dsn, nil
	}

	return dsn + " sslmode=require", nil
}
