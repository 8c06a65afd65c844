package db

import (
	"context"

	"github.com/urbansathi/backend/internal/models"
)

// GetUserByPhone resolves the bearer-token subject to a user row. User
// records are owned by the identity service; the store only reads them.
func (s *Store) GetUserByPhone(ctx context.Context, phoneNumber string) (models.User, error) {
	var u models.User
	err := s.Pool.QueryRow(ctx,
		`SELECT id, phone_number, name, area, is_active FROM users WHERE phone_number = $1`,
		phoneNumber).Scan(&u.ID, &u.PhoneNumber, &u.Name, &u.Area, &u.IsActive)
	return u, err
}
