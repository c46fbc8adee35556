package generator

import (
	"fmt"

	"github.com/strideloop/strideloop/internal/storage"
)

// Localities and squad nouns used to compose generated room names.
var roomLocalities = []string{
	"Fleet", "Hart", "Harbour", "Orchard", "Bramble",
	"Kiln", "Marsh", "Summit", "Weald", "Ferry",
	"Mill", "Copse", "Heath", "Quay", "Beacon",
}

var roomNouns = []string{
	"Steppers", "Striders", "Pacers", "Ramblers", "Milers",
	"Wanderers", "Trekkers", "Dashers",
}

// generateRooms creates rooms owned by randomly selected users. The demo
// preset recreates the three reference rooms; other presets compose rooms
// from the locality and noun lists.
func (g *Generator) generateRooms(userIDs []int64) []storage.Room {
	owners := g.rng.Perm(len(userIDs))
	ownerAt := func(i int) int64 {
		return userIDs[owners[i%len(owners)]]
	}

	if g.config.Preset == PresetDemo || g.config.Preset == "" {
		return []storage.Room{
			{
				OwnerID:     ownerAt(0),
				Name:        "Fleet Steppers",
				Description: "Fleet town daily step counters.",
				Units:       "steps/day",
				Access:      "public",
				Created:     randomTimestampWithin(g.rng, g.now.AddDate(0, 0, -90)),
			},
			{
				OwnerID:     ownerAt(1),
				Name:        "Hart Steppers",
				Description: "Hart district daily step counters.",
				Units:       "steps/day",
				Access:      "public",
				Created:     randomTimestampWithin(g.rng, g.now.AddDate(0, 0, -100)),
			},
			{
				OwnerID:     ownerAt(2),
				Name:        "Holly's Steppers",
				Description: "Daily steps for Holly and friends.",
				Units:       "steps/day",
				Access:      "private",
				Created:     randomTimestampWithin(g.rng, g.now.AddDate(0, 0, -85)),
			},
		}
	}

	rooms := make([]storage.Room, 0, g.preset.Rooms)
	for i := 0; i < g.preset.Rooms; i++ {
		locality := roomLocalities[g.rng.Intn(len(roomLocalities))]
		noun := roomNouns[g.rng.Intn(len(roomNouns))]

		access := "public"
		if g.rng.Intn(4) == 0 {
			access = "private"
		}

		ageDays := randomRange(g.rng, g.preset.RoomAgeMinDays, g.preset.RoomAgeMaxDays)
		rooms = append(rooms, storage.Room{
			OwnerID:     ownerAt(i),
			Name:        fmt.Sprintf("%s %s", locality, noun),
			Description: fmt.Sprintf("%s daily step counters.", locality),
			Units:       "steps/day",
			Access:      access,
			Created:     randomTimestampWithin(g.rng, g.now.AddDate(0, 0, -ageDays)),
		})
	}
	return rooms
}

// generateRoomMembers samples a distinct subset of users into each room.
func (g *Generator) generateRoomMembers(roomIDs, userIDs []int64) []storage.RoomMember {
	divisor := g.preset.MemberDivisor
	if divisor < 1 {
		divisor = 1
	}
	perRoom := len(userIDs) / divisor

	var members []storage.RoomMember
	for _, roomID := range roomIDs {
		for _, idx := range g.rng.Perm(len(userIDs))[:perRoom] {
			members = append(members, storage.RoomMember{
				RoomID: roomID,
				UserID: userIDs[idx],
			})
		}
	}
	return members
}
