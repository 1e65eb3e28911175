package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE notes (id INTEGER PRIMARY KEY, lead_id TEXT NOT NULL, body TEXT)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx_Success(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO notes (lead_id, body) VALUES (?, ?)`, "l1", "called back")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if count := countRows(t, db); count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	testErr := errors.New("test error")

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO notes (lead_id) VALUES (?)`, "l1"); err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO notes (lead_id) VALUES (?)`, "l2"); err != nil {
			return err
		}
		return testErr // Return error to trigger rollback
	})

	if !errors.Is(err, testErr) {
		t.Fatalf("WithTx should return the error: got %v, want %v", err, testErr)
	}

	// All operations should be rolled back
	if count := countRows(t, db); count != 0 {
		t.Errorf("count = %d, want 0 (all rolled back)", count)
	}
}

func TestWithTx_StatementError(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO notes (lead_id) VALUES (?)`, "l1"); err != nil {
			return err
		}
		// lead_id is NOT NULL
		_, err := tx.Exec(`INSERT INTO notes (lead_id) VALUES (NULL)`)
		return err
	})
	if err == nil {
		t.Fatal("WithTx should return the constraint error")
	}

	if count := countRows(t, db); count != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", count)
	}
}

func TestNullString(t *testing.T) {
	if n := NullString(""); n.Valid {
		t.Errorf("NullString(\"\") = %+v, want invalid", n)
	}
	if n := NullString("pending"); !n.Valid || n.String != "pending" {
		t.Errorf("NullString(\"pending\") = %+v, want valid", n)
	}
}

func TestNullStringValue(t *testing.T) {
	tests := []struct {
		name string
		in   sql.NullString
		want string
	}{
		{"valid", sql.NullString{String: "hot", Valid: true}, "hot"},
		{"invalid", sql.NullString{String: "hot", Valid: false}, ""},
		{"valid empty", sql.NullString{String: "", Valid: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NullStringValue(tt.in); got != tt.want {
				t.Errorf("NullStringValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNullString_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.Exec(`INSERT INTO notes (lead_id, body) VALUES (?, ?)`, "l1", NullString("")); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	var body sql.NullString
	if err := db.QueryRow(`SELECT body FROM notes WHERE lead_id = 'l1'`).Scan(&body); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if body.Valid {
		t.Errorf("body should be NULL, got %q", body.String)
	}
}
