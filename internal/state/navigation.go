package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/rentflow/internal/db"
)

type NavigationState struct {
	View         string // "dashboard", "leads", "properties", "conversations" or "reviews"
	ReviewStatus string // selected review tab
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`SELECT view, review_status FROM navigation_state WHERE id = 1`)

	var state NavigationState
	var reviewStatus sql.NullString

	err := row.Scan(&state.View, &reviewStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.ReviewStatus = dbutil.NullStringValue(reviewStatus)

	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, view, review_status)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			view = excluded.view,
			review_status = excluded.review_status
	`, state.View, dbutil.NullString(state.ReviewStatus))

	return err
}
