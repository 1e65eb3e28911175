package state

import (
	"database/sql"
	"errors"
	"time"
)

// Token returns the stored bearer token, or "" when signed out.
func (m *Manager) Token() (string, error) {
	var token string
	err := m.db.QueryRow(`SELECT token FROM auth_state WHERE id = 1`).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// SaveToken stores the bearer token, replacing any previous one.
func (m *Manager) SaveToken(token string) error {
	if token == "" {
		return m.ClearToken()
	}
	_, err := m.db.Exec(`
		INSERT INTO auth_state (id, token, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			updated_at = excluded.updated_at
	`, token, time.Now().Unix())
	return err
}

// ClearToken forgets the bearer token.
func (m *Manager) ClearToken() error {
	_, err := m.db.Exec(`DELETE FROM auth_state WHERE id = 1`)
	if err == nil {
		m.logger.Info().Msg("token cleared")
	}
	return err
}
