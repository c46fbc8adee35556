package generator

import (
	"math/rand"

	"github.com/strideloop/strideloop/internal/storage"
)

// buddyEdges builds a directed invitation tree over a room's members,
// rooted at the owner. The member pool is shuffled, then expanded
// breadth-first: each dequeued inviter recruits a batch of invitees drawn
// from the pool, and every non-empty batch is enqueued to recruit in turn.
// When the pool runs dry mid-batch the inviter simply receives fewer
// invitees, so no member is ever invited twice.
//
// An empty or owner-only roster yields no edges.
func buddyEdges(rng *rand.Rand, dist Distributions, roster storage.Roster) []storage.Buddy {
	pool := make([]int64, 0, len(roster.MemberIDs))
	for _, id := range roster.MemberIDs {
		if id != roster.OwnerID {
			pool = append(pool, id)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	var edges []storage.Buddy
	queue := [][]int64{{roster.OwnerID}}

	for len(queue) > 0 && len(pool) > 0 {
		group := queue[0]
		queue = queue[1:]

		for _, inviter := range group {
			n := randomRange(rng, dist.InviteBatchMin, dist.InviteBatchMax)
			if n > len(pool) {
				n = len(pool)
			}
			invitees := append([]int64(nil), pool[len(pool)-n:]...)
			pool = pool[:len(pool)-n]

			for _, invitee := range invitees {
				edges = append(edges, storage.Buddy{
					RoomID:    roster.RoomID,
					InviterID: inviter,
					InviteeID: invitee,
				})
			}
			if len(invitees) > 0 {
				queue = append(queue, invitees)
			}
			if len(pool) == 0 {
				break
			}
		}
	}

	return edges
}
