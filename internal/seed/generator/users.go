package generator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/strideloop/strideloop/internal/auth/password"
	"github.com/strideloop/strideloop/internal/storage"
)

const emailDomain = "example.com"

// Colours used to compose nicknames.
var colours = []string{
	"Aquamarine", "Chocolate", "Crimson", "Coral", "Magenta",
	"Olive", "Orchid", "Salmon", "Fire", "Ghost",
	"Golden", "Honey", "Lavender", "Lime", "Spring",
	"Rose", "Violet", "Peach", "Turquoise",
}

// Animals used to compose nicknames.
var animals = []string{
	"Aardvark", "Albatross", "Goat", "Alsatian", "Leopard",
	"Angelfish", "Antelope", "Fox", "Armadillo", "Alpaca",
	"Baboon", "Bandicoot", "Badger", "Barracuda", "Bison",
	"Camel", "Chinchilla", "Cockatoo", "Dingo", "Shrew",
	"Eskipoo", "Ermine",
}

// Relative weights for gender assignment.
const (
	genderWeightMale    = 100
	genderWeightFemale  = 100
	genderWeightNeutral = 2
)

// Age distribution parameters: gauss(35, 20) resampled into [3, 110].
const (
	ageMean   = 35
	ageStdDev = 20
	ageMin    = 3
	ageMax    = 110
)

// generateUsers produces users with unique colour+animal nicknames and
// matching example.com addresses. The nickname pool caps the dataset at
// len(colours)*len(animals) users; presets may ask for fewer.
//
// Passwords are set to the nickname so seeded accounts are trivially
// log-in-able during development. Never do this with real accounts.
func (g *Generator) generateUsers() ([]storage.User, error) {
	pairs := make([][2]string, 0, len(colours)*len(animals))
	for _, colour := range colours {
		for _, animal := range animals {
			pairs = append(pairs, [2]string{colour, animal})
		}
	}
	g.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	count := len(pairs)
	if max := g.preset.Users; max > 0 && max < count {
		count = max
	}

	users := make([]storage.User, 0, count)
	for _, pair := range pairs[:count] {
		nickname := pair[0] + pair[1]

		hashed, err := password.Hash(nickname, g.config.HashIterations)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", nickname, err)
		}

		age := g.randomAge()
		users = append(users, storage.User{
			PublicID:       uuid.NewString(),
			Email:          nickname + "@" + emailDomain,
			Nickname:       nickname,
			HashedPassword: hashed,
			Gender:         g.randomGender(),
			DOB:            g.now.AddDate(0, 0, -age*365),
		})
	}

	return users, nil
}

// randomGender draws a gender with the configured relative weights.
func (g *Generator) randomGender() storage.Gender {
	n := g.rng.Intn(genderWeightMale + genderWeightFemale + genderWeightNeutral)
	switch {
	case n < genderWeightMale:
		return storage.GenderMale
	case n < genderWeightMale+genderWeightFemale:
		return storage.GenderFemale
	default:
		return storage.GenderNeutral
	}
}

// randomAge draws from gauss(ageMean, ageStdDev), resampling until the
// value lands in [ageMin, ageMax].
func (g *Generator) randomAge() int {
	for {
		age := int(g.rng.NormFloat64()*ageStdDev + ageMean)
		if age >= ageMin && age <= ageMax {
			return age
		}
	}
}
