// Package generator produces a statistically coherent synthetic dataset for
// the platform: users, the rooms they belong to, daily activity time series
// with weekly trend drift, and a connected invitation graph per room.
package generator

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/strideloop/strideloop/internal/storage"
)

// Config holds configuration for a generation run.
type Config struct {
	Preset         Preset
	Seed           int64 // 0 = derive from current time
	HashIterations int
	Verbose        bool
}

// DefaultConfig returns a Config with sensible defaults. Seeded accounts
// hold throwaway passwords, so the hash iteration count stays low.
func DefaultConfig() Config {
	return Config{
		Preset:         PresetDemo,
		Seed:           0,
		HashIterations: 10,
		Verbose:        false,
	}
}

// Generator orchestrates dataset generation for one run. All randomness
// flows through a single explicit source, and "now" is fixed at
// construction so every component simulates the same time window.
type Generator struct {
	config Config
	preset PresetConfig
	dist   Distributions
	rng    *rand.Rand
	now    time.Time
	errOut io.Writer

	users      userStore
	rooms      roomStore
	activities activitySink
	buddies    buddySink
}

// newGenerator constructs a Generator from pre-built dependencies. Used by
// tests to inject fakes and a deterministic clock.
func newGenerator(cfg Config, dist Distributions, rng *rand.Rand, now time.Time, errOut io.Writer, deps generatorDeps) *Generator {
	if errOut == nil {
		errOut = io.Discard
	}
	return &Generator{
		config:     cfg,
		preset:     GetPresetConfig(cfg.Preset),
		dist:       dist,
		rng:        rng,
		now:        now,
		errOut:     errOut,
		users:      deps.users,
		rooms:      deps.rooms,
		activities: deps.activities,
		buddies:    deps.buddies,
	}
}

// New creates a Generator that persists through store.
func New(cfg Config, dist Distributions, store storage.Store, errOut io.Writer) *Generator {
	return newGenerator(cfg, dist, NewSeededRNG(cfg.Seed, cfg.Verbose, errOut), time.Now(), errOut, generatorDeps{
		users:      store,
		rooms:      store,
		activities: store,
		buddies:    store,
	})
}

// Run generates and persists the full dataset: users, rooms, memberships,
// daily activities and buddy edges, bulk-inserted in dependency order.
func (g *Generator) Run(ctx context.Context) error {
	users, err := g.generateUsers()
	if err != nil {
		return fmt.Errorf("generate users: %w", err)
	}
	if err := g.users.InsertUsers(ctx, users); err != nil {
		return fmt.Errorf("insert users: %w", err)
	}
	g.progress("Created %d user(s)\n", len(users))

	userIDs, err := g.users.ListUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("list user ids: %w", err)
	}

	rooms := g.generateRooms(userIDs)
	if err := g.rooms.InsertRooms(ctx, rooms); err != nil {
		return fmt.Errorf("insert rooms: %w", err)
	}
	g.progress("Created %d room(s)\n", len(rooms))

	roomIDs, err := g.rooms.ListRoomIDs(ctx)
	if err != nil {
		return fmt.Errorf("list room ids: %w", err)
	}

	members := g.generateRoomMembers(roomIDs, userIDs)
	if err := g.rooms.InsertRoomMembers(ctx, members); err != nil {
		return fmt.Errorf("insert room members: %w", err)
	}
	g.progress("Created %d membership(s)\n", len(members))

	if err := ctx.Err(); err != nil {
		return err
	}

	memberships, err := g.rooms.ActiveMemberships(ctx)
	if err != nil {
		return fmt.Errorf("load active memberships: %w", err)
	}
	timeline := newActivityTimeline(g.rng, g.dist, g.now)
	activities := timeline.generate(memberships)
	if err := g.activities.InsertActivities(ctx, activities); err != nil {
		return fmt.Errorf("insert activities: %w", err)
	}
	g.progress("Created %d activity record(s)\n", len(activities))

	rosters, err := g.rooms.RoomRosters(ctx)
	if err != nil {
		return fmt.Errorf("load room rosters: %w", err)
	}
	var edges []storage.Buddy
	for _, roster := range rosters {
		edges = append(edges, buddyEdges(g.rng, g.dist, roster)...)
	}
	if err := g.buddies.InsertBuddies(ctx, edges); err != nil {
		return fmt.Errorf("insert buddies: %w", err)
	}
	g.progress("Created %d buddy edge(s)\n", len(edges))

	return nil
}

func (g *Generator) progress(format string, args ...any) {
	if g.config.Verbose {
		fmt.Fprintf(g.errOut, format, args...)
	}
}
