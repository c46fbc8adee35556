package sqlite

import (
	"context"
	"fmt"

	"github.com/strideloop/strideloop/internal/storage"
)

// InsertRooms bulk-inserts room records.
func (s *Store) InsertRooms(ctx context.Context, rooms []storage.Room) error {
	return s.bulkExec(ctx,
		`INSERT INTO room (owner_id, name, description, units, access, created)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		len(rooms),
		func(i int) []any {
			r := rooms[i]
			return []any{
				r.OwnerID,
				r.Name,
				r.Description,
				r.Units,
				r.Access,
				toMillis(r.Created),
			}
		},
	)
}

// ListRoomIDs returns all room ids in insertion order.
func (s *Store) ListRoomIDs(ctx context.Context) ([]int64, error) {
	return s.listIDs(ctx, "SELECT room_id FROM room ORDER BY room_id")
}

// InsertRoomMembers bulk-inserts membership records. Join timestamps
// default in the schema and departures stay NULL.
func (s *Store) InsertRoomMembers(ctx context.Context, members []storage.RoomMember) error {
	return s.bulkExec(ctx,
		"INSERT INTO room_member (room_id, user_id) VALUES (?, ?)",
		len(members),
		func(i int) []any {
			m := members[i]
			return []any{m.RoomID, m.UserID}
		},
	)
}

// ActiveMemberships returns every non-departed membership joined with the
// room creation timestamp and the member's profile fields.
func (s *Store) ActiveMemberships(ctx context.Context) ([]storage.Membership, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT room.room_id, room.created, user.user_id, user.gender, user.dob
		 FROM room_member
		 JOIN room ON room.room_id = room_member.room_id
		 JOIN user ON user.user_id = room_member.user_id
		 WHERE room_member.departed IS NULL
		 ORDER BY room_member.member_id`)
	if err != nil {
		return nil, fmt.Errorf("query memberships: %w", err)
	}
	defer rows.Close()

	var memberships []storage.Membership
	for rows.Next() {
		var m storage.Membership
		var created, dob int64
		var gender string
		if err := rows.Scan(&m.RoomID, &created, &m.UserID, &gender, &dob); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		m.RoomCreated = fromMillis(created)
		m.DOB = fromMillis(dob)
		m.Gender = storage.Gender(gender)
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memberships: %w", err)
	}
	return memberships, nil
}

// RoomRosters returns the active member ids of each room grouped with the
// room's owner, ordered by room id.
func (s *Store) RoomRosters(ctx context.Context) ([]storage.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT room.room_id, room.owner_id, room_member.user_id
		 FROM room_member
		 JOIN room ON room.room_id = room_member.room_id
		 WHERE room_member.departed IS NULL
		 ORDER BY room.room_id, room_member.member_id`)
	if err != nil {
		return nil, fmt.Errorf("query rosters: %w", err)
	}
	defer rows.Close()

	var rosters []storage.Roster
	for rows.Next() {
		var roomID, ownerID, userID int64
		if err := rows.Scan(&roomID, &ownerID, &userID); err != nil {
			return nil, fmt.Errorf("scan roster row: %w", err)
		}
		if len(rosters) == 0 || rosters[len(rosters)-1].RoomID != roomID {
			rosters = append(rosters, storage.Roster{RoomID: roomID, OwnerID: ownerID})
		}
		last := &rosters[len(rosters)-1]
		last.MemberIDs = append(last.MemberIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rosters: %w", err)
	}
	return rosters, nil
}
