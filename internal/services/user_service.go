package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/mindgarden/mindgarden-backend/internal/database"
	"github.com/mindgarden/mindgarden-backend/internal/models"
)

// GetProfileByID retrieves the merged profile view by user ID. Returns nil
// when the user does not exist or is inactive.
func GetProfileByID(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := database.PostgresDB.QueryRow(`
		SELECT id, username, email, name, created_at FROM users
		WHERE id = $1 AND is_active = TRUE
	`, userID).Scan(&profile.ID, &profile.Username, &profile.Email, &profile.Name, &profile.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

// GetUsernameByID retrieves username by user ID (for display).
func GetUsernameByID(userID string) (string, error) {
	parsedID, err := uuid.Parse(userID)
	if err != nil {
		return "", err
	}

	var username string
	err = database.PostgresDB.QueryRow(`
		SELECT username FROM users WHERE id = $1 AND is_active = TRUE
	`, parsedID).Scan(&username)

	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}

	return username, nil
}
