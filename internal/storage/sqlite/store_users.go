package sqlite

import (
	"context"

	"github.com/strideloop/strideloop/internal/storage"
)

// InsertUsers bulk-inserts user records.
func (s *Store) InsertUsers(ctx context.Context, users []storage.User) error {
	return s.bulkExec(ctx,
		`INSERT INTO user (public_id, email, hashed_password, nickname, gender, dob)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		len(users),
		func(i int) []any {
			u := users[i]
			return []any{
				u.PublicID,
				u.Email,
				u.HashedPassword,
				u.Nickname,
				string(u.Gender),
				toMillis(u.DOB),
			}
		},
	)
}

// ListUserIDs returns all user ids in insertion order.
func (s *Store) ListUserIDs(ctx context.Context) ([]int64, error) {
	return s.listIDs(ctx, "SELECT user_id FROM user ORDER BY user_id")
}
