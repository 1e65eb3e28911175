package state

import (
	"database/sql"
	"strings"

	dbutil "github.com/llehouerou/rentflow/internal/db"
)

// MaxSearchHistory is the number of queries kept per view.
const MaxSearchHistory = 10

// RecentSearches returns the queries used on view, most recent first.
func (m *Manager) RecentSearches(view string) ([]string, error) {
	rows, err := m.db.Query(`
		SELECT query FROM search_history
		WHERE view = ?
		ORDER BY seq DESC
	`, view)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// AddSearch records query as the latest search on view and prunes entries
// beyond MaxSearchHistory. Blank queries are ignored.
func (m *Manager) AddSearch(view, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO search_history (view, query, seq)
			VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM search_history))
			ON CONFLICT(view, query) DO UPDATE SET seq = excluded.seq
		`, view, query); err != nil {
			return err
		}
		_, err := tx.Exec(`
			DELETE FROM search_history
			WHERE view = ? AND id NOT IN (
				SELECT id FROM search_history WHERE view = ?
				ORDER BY seq DESC LIMIT ?
			)
		`, view, view, MaxSearchHistory)
		return err
	})
}
