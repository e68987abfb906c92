// Package source loads tables from HTML files, web pages and SQLite databases.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tablesort/internal/db"
	"tablesort/internal/htmltable"
	"tablesort/internal/model"
)

var ErrNoTables = errors.New("no tables found")

// Kind is the type of a source location.
type Kind int

const (
	KindHTML Kind = iota
	KindURL
	KindSQLite
)

// Detect classifies a location by scheme or file extension.
func Detect(location string) Kind {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return KindURL
	}
	switch filepath.Ext(lower) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	}
	return KindHTML
}

// Loader loads a catalog of tables.
type Loader struct {
	client *HTTPClient
}

// NewLoader creates a loader using client for URLs. A nil client gets a
// ten second timeout.
func NewLoader(client *HTTPClient) *Loader {
	if client == nil {
		client = NewHTTPClient(10 * time.Second)
	}
	return &Loader{client: client}
}

// Load reads every identifiable table at location.
func (l *Loader) Load(ctx context.Context, location string) (*model.Catalog, error) {
	var tables []*model.Table
	if Detect(location) == KindSQLite {
		var err error
		tables, err = sqliteTables(location)
		if err != nil {
			return nil, err
		}
	} else {
		doc, err := l.ReadDocument(ctx, location)
		if err != nil {
			return nil, err
		}
		tables = doc.Models()
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTables, location)
	}

	slog.Debug("loaded source",
		slog.String("location", location),
		slog.Int("tables", len(tables)),
	)
	return model.NewCatalog(tables...)
}

// ReadDocument reads an HTML document from a file or URL for in-place sorting.
func (l *Loader) ReadDocument(ctx context.Context, location string) (*htmltable.Document, error) {
	var body []byte
	var err error
	switch Detect(location) {
	case KindURL:
		body, err = l.client.Fetch(ctx, location)
	case KindSQLite:
		return nil, fmt.Errorf("%s is not an html document", location)
	default:
		body, err = os.ReadFile(location)
		if err != nil {
			err = fmt.Errorf("failed to read %s: %w", location, err)
		}
	}
	if err != nil {
		return nil, err
	}
	return htmltable.Parse(bytes.NewReader(body))
}

func sqliteTables(path string) ([]*model.Table, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	return db.LoadTables(database)
}
