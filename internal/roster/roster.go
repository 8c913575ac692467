// Package roster holds the ordered list of LeetCode usernames the bot reports on.
// The roster is built once at startup and never changes afterwards.
package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrEmpty = errors.New("roster is empty")

type Roster struct {
	users []string
}

// New normalizes usernames, keeping the first occurrence of each.
func New(usernames []string) Roster {
	seen := make(map[string]struct{}, len(usernames))
	out := make([]string, 0, len(usernames))
	for _, raw := range usernames {
		username := Normalize(raw)
		if username == "" {
			continue
		}
		key := strings.ToLower(username)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, username)
	}
	return Roster{users: out}
}

func (r Roster) Users() []string {
	out := make([]string, len(r.users))
	copy(out, r.users)
	return out
}

func (r Roster) Len() int {
	return len(r.users)
}

func (r Roster) String() string {
	return strings.Join(r.users, ",")
}

func Normalize(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "@")
}

// Source yields usernames from one configuration backend. An empty result
// means the source has nothing configured.
type Source interface {
	Name() string
	Usernames(ctx context.Context) ([]string, error)
}

// Load returns the roster from the first source that yields any usernames.
func Load(ctx context.Context, sources ...Source) (Roster, string, error) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		names, err := src.Usernames(ctx)
		if err != nil {
			return Roster{}, "", fmt.Errorf("load roster from %s: %w", src.Name(), err)
		}
		r := New(names)
		if r.Len() > 0 {
			return r, src.Name(), nil
		}
	}
	return Roster{}, "", ErrEmpty
}

type StaticSource struct {
	Label string
	Names []string
}

func (s StaticSource) Name() string {
	if s.Label == "" {
		return "static"
	}
	return s.Label
}

func (s StaticSource) Usernames(context.Context) ([]string, error) {
	return s.Names, nil
}
