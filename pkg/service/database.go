package service

import (
	"context"
	"fmt"
	"net/url"

	_ "github.com/denisenkom/go-mssqldb"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

type DatabaseService struct {
	Driver string
	DSN    string
	DB     *sqlx.DB
}

func NewDatabaseService(driver, dsn string) *DatabaseService {
	if driver == "mysql" {
		var err error
		dsn, err = ReformatMysqlDSN(dsn)
		if err != nil {
			// incorrect mysql dsn is logical exception
			panic(err)
		}
	}

	return &DatabaseService{
		Driver: driver,
		DSN:    dsn,
	}
}

func (s *DatabaseService) Connect(ctx context.Context) error {
	var err error
	s.DB, err = sqlx.ConnectContext(ctx, s.Driver, s.DSN)
	if err != nil {
		return fmt.Errorf("connect %s database: %w", s.Driver, err)
	}

	if s.Driver == "sqlite3" {
		_, _ = s.DB.Exec("PRAGMA journal_mode = WAL")
	}

	log.Debugf("connected to %s database", s.Driver)
	return nil
}

func (s *DatabaseService) Close() error {
	if s.DB == nil {
		return nil
	}

	return s.DB.Close()
}

func ReformatMysqlDSN(dsn string) (string, error) {
	config, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}

	config.ParseTime = true
	dsn = config.FormatDSN()
	return dsn, nil
}

// SQLServerOptions are the connection settings of a SQL Server database.
type SQLServerOptions struct {
	Host     string `json:"host" yaml:"host"`
	Database string `json:"database" yaml:"database"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`

	// WindowsAuthentication drops the user and password from the dsn.
	WindowsAuthentication bool `json:"windowsAuthentication" yaml:"windowsAuthentication"`

	TrustServerCertificate bool `json:"trustServerCertificate" yaml:"trustServerCertificate"`
	Encrypt                bool `json:"encrypt" yaml:"encrypt"`
}

// DSN formats the options as a sqlserver:// url for the mssql driver.
func (o SQLServerOptions) DSN() string {
	u := &url.URL{
		Scheme: "sqlserver",
		Host:   o.Host,
	}

	if !o.WindowsAuthentication && len(o.User) > 0 {
		u.User = url.UserPassword(o.User, o.Password)
	}

	query := url.Values{}
	if len(o.Database) > 0 {
		query.Set("database", o.Database)
	}

	if o.Encrypt {
		query.Set("encrypt", "true")
	} else {
		query.Set("encrypt", "disable")
	}

	if o.TrustServerCertificate {
		query.Set("TrustServerCertificate", "true")
	}

	u.RawQuery = query.Encode()
	return u.String()
}
