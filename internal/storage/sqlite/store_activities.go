package sqlite

import (
	"context"

	"github.com/strideloop/strideloop/internal/storage"
)

// InsertActivities bulk-inserts activity records.
func (s *Store) InsertActivities(ctx context.Context, activities []storage.Activity) error {
	return s.bulkExec(ctx,
		`INSERT INTO activity (room_id, user_id, timestamp, performance, effort)
		 VALUES (?, ?, ?, ?, ?)`,
		len(activities),
		func(i int) []any {
			a := activities[i]
			return []any{
				a.RoomID,
				a.UserID,
				toMillis(a.Timestamp),
				a.Performance,
				a.Effort,
			}
		},
	)
}

// InsertBuddies bulk-inserts invitation edges.
func (s *Store) InsertBuddies(ctx context.Context, buddies []storage.Buddy) error {
	return s.bulkExec(ctx,
		"INSERT INTO buddy (room_id, inviter_id, invitee_id) VALUES (?, ?, ?)",
		len(buddies),
		func(i int) []any {
			b := buddies[i]
			return []any{b.RoomID, b.InviterID, b.InviteeID}
		},
	)
}
