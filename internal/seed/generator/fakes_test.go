package generator

import (
	"context"
	"fmt"

	"github.com/strideloop/strideloop/internal/storage"
)

// fakeStore implements the generator's persistence interfaces in memory,
// assigning sequential ids the way SQLite would.
type fakeStore struct {
	users       []storage.User
	rooms       []storage.Room
	members     []storage.RoomMember
	activities  []storage.Activity
	buddies     []storage.Buddy
	insertOrder []string

	failOn string
}

func (f *fakeStore) fail(op string) error {
	if f.failOn == op {
		return fmt.Errorf("%s: forced failure", op)
	}
	return nil
}

func (f *fakeStore) InsertUsers(ctx context.Context, users []storage.User) error {
	if err := f.fail("InsertUsers"); err != nil {
		return err
	}
	f.users = append(f.users, users...)
	f.insertOrder = append(f.insertOrder, "users")
	return nil
}

func (f *fakeStore) ListUserIDs(ctx context.Context) ([]int64, error) {
	if err := f.fail("ListUserIDs"); err != nil {
		return nil, err
	}
	ids := make([]int64, len(f.users))
	for i := range f.users {
		ids[i] = int64(i + 1)
	}
	return ids, nil
}

func (f *fakeStore) InsertRooms(ctx context.Context, rooms []storage.Room) error {
	if err := f.fail("InsertRooms"); err != nil {
		return err
	}
	f.rooms = append(f.rooms, rooms...)
	f.insertOrder = append(f.insertOrder, "rooms")
	return nil
}

func (f *fakeStore) ListRoomIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, len(f.rooms))
	for i := range f.rooms {
		ids[i] = int64(i + 1)
	}
	return ids, nil
}

func (f *fakeStore) InsertRoomMembers(ctx context.Context, members []storage.RoomMember) error {
	f.members = append(f.members, members...)
	f.insertOrder = append(f.insertOrder, "members")
	return nil
}

func (f *fakeStore) ActiveMemberships(ctx context.Context) ([]storage.Membership, error) {
	var memberships []storage.Membership
	for _, m := range f.members {
		room := f.rooms[m.RoomID-1]
		user := f.users[m.UserID-1]
		memberships = append(memberships, storage.Membership{
			RoomID:      m.RoomID,
			RoomCreated: room.Created,
			UserID:      m.UserID,
			Gender:      user.Gender,
			DOB:         user.DOB,
		})
	}
	return memberships, nil
}

func (f *fakeStore) RoomRosters(ctx context.Context) ([]storage.Roster, error) {
	byRoom := map[int64]*storage.Roster{}
	var order []int64
	for _, m := range f.members {
		roster, ok := byRoom[m.RoomID]
		if !ok {
			roster = &storage.Roster{RoomID: m.RoomID, OwnerID: f.rooms[m.RoomID-1].OwnerID}
			byRoom[m.RoomID] = roster
			order = append(order, m.RoomID)
		}
		roster.MemberIDs = append(roster.MemberIDs, m.UserID)
	}
	rosters := make([]storage.Roster, 0, len(order))
	for _, id := range order {
		rosters = append(rosters, *byRoom[id])
	}
	return rosters, nil
}

func (f *fakeStore) InsertActivities(ctx context.Context, activities []storage.Activity) error {
	if err := f.fail("InsertActivities"); err != nil {
		return err
	}
	f.activities = append(f.activities, activities...)
	f.insertOrder = append(f.insertOrder, "activities")
	return nil
}

func (f *fakeStore) InsertBuddies(ctx context.Context, buddies []storage.Buddy) error {
	f.buddies = append(f.buddies, buddies...)
	f.insertOrder = append(f.insertOrder, "buddies")
	return nil
}

func fakeDeps(f *fakeStore) generatorDeps {
	return generatorDeps{users: f, rooms: f, activities: f, buddies: f}
}
