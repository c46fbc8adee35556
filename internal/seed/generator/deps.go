package generator

// deps.go defines narrow interfaces over the persistence layer so the
// Generator can be tested with lightweight fakes instead of a real store.

import (
	"context"

	"github.com/strideloop/strideloop/internal/storage"
)

// userStore is the subset of storage.Store used for user records.
type userStore interface {
	InsertUsers(ctx context.Context, users []storage.User) error
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// roomStore is the subset of storage.Store used for rooms and memberships.
type roomStore interface {
	InsertRooms(ctx context.Context, rooms []storage.Room) error
	ListRoomIDs(ctx context.Context) ([]int64, error)
	InsertRoomMembers(ctx context.Context, members []storage.RoomMember) error
	ActiveMemberships(ctx context.Context) ([]storage.Membership, error)
	RoomRosters(ctx context.Context) ([]storage.Roster, error)
}

// activitySink receives the generated activity records.
type activitySink interface {
	InsertActivities(ctx context.Context, activities []storage.Activity) error
}

// buddySink receives the generated invitation edges.
type buddySink interface {
	InsertBuddies(ctx context.Context, buddies []storage.Buddy) error
}

// generatorDeps bundles the persistence dependencies for newGenerator.
type generatorDeps struct {
	users      userStore
	rooms      roomStore
	activities activitySink
	buddies    buddySink
}
