package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"litreview/internal/shared/utils"
)

// Fixture is the YAML document accepted by the seed command. Users are
// referenced by username and tickets by their key.
type Fixture struct {
	Users   []UserFixture   `yaml:"users" validate:"dive"`
	Follows []FollowFixture `yaml:"follows" validate:"dive"`
	Tickets []TicketFixture `yaml:"tickets" validate:"dive"`
	Reviews []ReviewFixture `yaml:"reviews" validate:"dive"`
}

type UserFixture struct {
	Username string `yaml:"username" validate:"required"`
	Password string `yaml:"password" validate:"required"`
}

type FollowFixture struct {
	Follower string `yaml:"follower" validate:"required"`
	Followee string `yaml:"followee" validate:"required"`
}

type TicketFixture struct {
	Key         string `yaml:"key"`
	Owner       string `yaml:"owner" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

type ReviewFixture struct {
	Ticket   string `yaml:"ticket" validate:"required"`
	Author   string `yaml:"author" validate:"required"`
	Rating   int    `yaml:"rating"`
	Headline string `yaml:"headline"`
	Body     string `yaml:"body"`
}

// LoadFixture reads and decodes a fixture file. Unknown keys and entries
// missing the names they are referenced by are rejected.
func LoadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}
	if err := utils.ValidateStruct(fx); err != nil {
		return nil, fmt.Errorf("invalid fixture %s: %w", path, err)
	}
	return &fx, nil
}
