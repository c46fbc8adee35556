package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// exportQueries defines the dump layout per table. Column order here is the
// CSV column order.
var exportQueries = map[string]string{
	"user": `SELECT user_id, public_id, email, verified, hashed_password, nickname,
	         bio, gender, dob, active, joined, administrator
	         FROM user ORDER BY user_id`,
	"room": `SELECT room_id, owner_id, name, description, units, access, absolute, created
	         FROM room ORDER BY room_id`,
	"room_member": `SELECT member_id, room_id, user_id, joined, departed
	                FROM room_member ORDER BY member_id`,
	"activity": `SELECT activity_id, room_id, user_id, timestamp, performance, effort
	             FROM activity ORDER BY activity_id`,
	"buddy": `SELECT buddy_id, room_id, inviter_id, invitee_id, sent, accepted
	          FROM buddy ORDER BY buddy_id`,
}

// ExportTables lists the dumpable tables in a stable order.
func ExportTables() []string {
	return []string{"user", "room", "room_member", "activity", "buddy"}
}

// DumpTable returns the header and all rows of one exportable table, with
// every value rendered as text (timestamps as epoch milliseconds) and NULLs
// as empty strings.
func (s *Store) DumpTable(ctx context.Context, table string) ([]string, [][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, nil, fmt.Errorf("storage is not configured")
	}
	query, ok := exportQueries[table]
	if !ok {
		return nil, nil, fmt.Errorf("unknown table %q", table)
	}

	rows, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("columns of %s: %w", table, err)
	}

	var records [][]string
	values := make([]sql.NullString, len(header))
	scan := make([]any, len(header))
	for i := range values {
		scan[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		record := make([]string, len(values))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return header, records, nil
}
