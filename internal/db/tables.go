package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tablesort/internal/model"
)

// ListTables returns the user tables of the database, by name.
func ListTables(db *sql.DB) ([]string, error) {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table names: %w", err)
	}

	return names, nil
}

// LoadTable reads every row of a table as text. Column names become the header.
func LoadTable(db *sql.DB, name string) (*model.Table, error) {
	rows, err := db.Query("SELECT * FROM " + quoteIdent(name) + " ORDER BY rowid")
	if err != nil {
		// WITHOUT ROWID tables and views have no rowid.
		rows, err = db.Query("SELECT * FROM " + quoteIdent(name))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query table %q: %w", name, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %q: %w", name, err)
	}

	var records [][]string
	values := make([]any, len(header))
	ptrs := make([]any, len(header))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %q: %w", name, err)
		}
		rec := make([]string, len(values))
		for i, v := range values {
			rec[i] = formatValue(v)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows of %q: %w", name, err)
	}

	return model.NewTable(name, header, records), nil
}

// LoadTables loads every user table.
func LoadTables(db *sql.DB) ([]*model.Table, error) {
	names, err := ListTables(db)
	if err != nil {
		return nil, err
	}

	tables := make([]*model.Table, 0, len(names))
	for _, name := range names {
		t, err := LoadTable(db, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
