package source_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablesort/internal/source"
)

const page = `<html><body>
<table id="langs"><tr><th>Name</th></tr><tr><td>Go</td></tr><tr><td>C</td></tr></table>
<table id="years"><tr><td>Year</td></tr><tr><td>2009</td></tr></table>
</body></html>`

func TestDetect(t *testing.T) {
	t.Parallel()

	tcs := map[string]source.Kind{
		"report.html":              source.KindHTML,
		"notes":                    source.KindHTML,
		"https://example.com/a":    source.KindURL,
		"HTTP://EXAMPLE.COM":       source.KindURL,
		"scholar.db":               source.KindSQLite,
		"/tmp/data.SQLite3":        source.KindSQLite,
		"archive.sqlite":           source.KindSQLite,
		"https://example.com/x.db": source.KindURL,
	}

	for in, want := range tcs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, source.Detect(in))
		})
	}
}

func TestLoadHTMLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o600))

	catalog, err := source.NewLoader(nil).Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	langs, ok := catalog.Get("langs")
	require.True(t, ok)
	assert.Equal(t, []string{"Name"}, langs.Header)
	assert.Equal(t, []string{"Go", "C"}, langs.Column(0))

	years, ok := catalog.Get("years")
	require.True(t, ok)
	assert.Equal(t, []string{"Year"}, years.Header)
}

func TestLoadURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/page" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "tablesort", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)

	loader := source.NewLoader(source.NewHTTPClient(5 * time.Second))

	catalog, err := loader.Load(context.Background(), srv.URL+"/page")
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	_, err = loader.Load(context.Background(), srv.URL+"/missing")
	require.ErrorContains(t, err, "status 404")
}

func TestLoadSQLite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "langs.db")
	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = conn.Exec(`CREATE TABLE langs (name TEXT, year INTEGER);
		INSERT INTO langs VALUES ('Go', 2009), ('C', 1972);`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	loader := source.NewLoader(nil)

	catalog, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	langs, ok := catalog.Get("langs")
	require.True(t, ok)
	assert.Equal(t, []string{"name", "year"}, langs.Header)
	assert.Equal(t, []string{"2009", "1972"}, langs.Column(1))

	_, err = loader.ReadDocument(context.Background(), path)
	require.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	loader := source.NewLoader(nil)

	empty := filepath.Join(dir, "empty.html")
	require.NoError(t, os.WriteFile(empty, []byte(`<p>no tables</p>`), 0o600))
	_, err := loader.Load(context.Background(), empty)
	require.ErrorIs(t, err, source.ErrNoTables)

	_, err = loader.Load(context.Background(), filepath.Join(dir, "missing.html"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.Load(context.Background(), filepath.Join(dir, "missing.db"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
