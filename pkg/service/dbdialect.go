package service

import (
	sq "github.com/Masterminds/squirrel"
)

// DatabaseDialect provides database-specific SQL syntax
type DatabaseDialect interface {
	// Name escaping
	EscapeColumnName(name string) string
	EscapeTableName(name string) string

	// Query builder configuration
	ConfigurePlaceholder(builder sq.SelectBuilder) sq.SelectBuilder
}

// GetDialect returns the appropriate dialect for the given driver name
func GetDialect(driverName string) DatabaseDialect {
	switch driverName {
	case "mysql":
		return &MySQLDialect{}
	case "postgres":
		return &PostgreSQLDialect{}
	case "sqlserver", "mssql":
		return &SQLServerDialect{}
	case "sqlite3":
		return &SQLiteDialect{}
	default:
		return &SQLiteDialect{} // default fallback
	}
}

// MySQLDialect implements MySQL-specific SQL syntax
type MySQLDialect struct{}

func (d *MySQLDialect) EscapeColumnName(name string) string {
	return "`" + name + "`"
}

func (d *MySQLDialect) EscapeTableName(name string) string {
	return "`" + name + "`"
}

func (d *MySQLDialect) ConfigurePlaceholder(builder sq.SelectBuilder) sq.SelectBuilder {
	// MySQL uses default placeholder format (?)
	return builder
}

// PostgreSQLDialect implements PostgreSQL-specific SQL syntax
type PostgreSQLDialect struct{}

func (d *PostgreSQLDialect) EscapeColumnName(name string) string {
	return `"` + name + `"`
}

func (d *PostgreSQLDialect) EscapeTableName(name string) string {
	return `"` + name + `"`
}

func (d *PostgreSQLDialect) ConfigurePlaceholder(builder sq.SelectBuilder) sq.SelectBuilder {
	// PostgreSQL uses dollar placeholder format ($1, $2, etc.)
	return builder.PlaceholderFormat(sq.Dollar)
}

// SQLServerDialect implements SQL Server-specific SQL syntax
type SQLServerDialect struct{}

func (d *SQLServerDialect) EscapeColumnName(name string) string {
	return "[" + name + "]"
}

// EscapeTableName escapes every part of a qualified name, e.g. TradingDB.dbo.NQ_Weekly_Data
func (d *SQLServerDialect) EscapeTableName(name string) string {
	out := ""
	start := 0
	for i := 0; i <= len(name); i++ {
		if i == len(name) || name[i] == '.' {
			if len(out) > 0 {
				out += "."
			}
			out += "[" + name[start:i] + "]"
			start = i + 1
		}
	}
	return out
}

func (d *SQLServerDialect) ConfigurePlaceholder(builder sq.SelectBuilder) sq.SelectBuilder {
	// SQL Server uses @p1, @p2 placeholders
	return builder.PlaceholderFormat(sq.AtP)
}

// SQLiteDialect implements SQLite-specific SQL syntax
type SQLiteDialect struct{}

func (d *SQLiteDialect) EscapeColumnName(name string) string {
	return "`" + name + "`"
}

func (d *SQLiteDialect) EscapeTableName(name string) string {
	return "`" + name + "`"
}

func (d *SQLiteDialect) ConfigurePlaceholder(builder sq.SelectBuilder) sq.SelectBuilder {
	// SQLite uses default placeholder format (?)
	return builder
}
