// Package storage defines the dataset record types and the persistence
// contract shared by the seed generator and the export tooling.
package storage

import (
	"context"
	"time"
)

// Gender is the self-reported gender recorded on a user profile.
type Gender string

// Genders recognised by the platform.
const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// User is a platform account. The database assigns the numeric user id;
// PublicID is the stable external identifier.
type User struct {
	PublicID       string
	Email          string
	Nickname       string
	HashedPassword string
	Gender         Gender
	DOB            time.Time
}

// Room is a group of users tracking a shared metric. Created bounds the
// window over which activity is simulated.
type Room struct {
	OwnerID     int64
	Name        string
	Description string
	Units       string
	Access      string
	Created     time.Time
}

// RoomMember associates a user with a room. Join and departure timestamps
// are managed by the database; seeded members never depart.
type RoomMember struct {
	RoomID int64
	UserID int64
}

// Activity is one daily measurement mirrored into a room.
type Activity struct {
	RoomID      int64
	UserID      int64
	Timestamp   time.Time
	Performance int64
	Effort      int
}

// Buddy is a directed invitation edge within a room.
type Buddy struct {
	RoomID    int64
	InviterID int64
	InviteeID int64
}

// Membership is one active (room, user) pair joined with the fields the
// activity timeline needs.
type Membership struct {
	RoomID      int64
	RoomCreated time.Time
	UserID      int64
	Gender      Gender
	DOB         time.Time
}

// Roster is the ordered member list of a room together with its owner.
type Roster struct {
	RoomID    int64
	OwnerID   int64
	MemberIDs []int64
}

// Store is the persistence surface consumed by the seed generator.
type Store interface {
	InsertUsers(ctx context.Context, users []User) error
	ListUserIDs(ctx context.Context) ([]int64, error)
	InsertRooms(ctx context.Context, rooms []Room) error
	ListRoomIDs(ctx context.Context) ([]int64, error)
	InsertRoomMembers(ctx context.Context, members []RoomMember) error
	ActiveMemberships(ctx context.Context) ([]Membership, error)
	RoomRosters(ctx context.Context) ([]Roster, error)
	InsertActivities(ctx context.Context, activities []Activity) error
	InsertBuddies(ctx context.Context, buddies []Buddy) error
}
