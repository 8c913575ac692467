package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	rostersCollectionName = "rosters"
	membersSubcollName    = "members"
	maxRosterMembers      = 200
)

var ErrRosterNotFound = errors.New("roster not found")

// Store reads roster documents laid out as
// rosters/{rosterID} with a members subcollection ordered by position.
type Store struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

type RosterDoc struct {
	Name      string    `firestore:"name"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

type RosterMember struct {
	Username string `firestore:"username"`
	Position int    `firestore:"position"`
	Disabled bool   `firestore:"disabled"`
}

func (s *Store) GetRoster(ctx context.Context, rosterID string) (RosterDoc, error) {
	snap, err := s.rosterDoc(rosterID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return RosterDoc{}, ErrRosterNotFound
		}
		return RosterDoc{}, fmt.Errorf("get roster: %w", err)
	}

	var doc RosterDoc
	if err := snap.DataTo(&doc); err != nil {
		return RosterDoc{}, fmt.Errorf("decode roster: %w", err)
	}
	if doc.Name == "" {
		doc.Name = rosterID
	}
	return doc, nil
}

// ListMembers returns enabled members in position order.
func (s *Store) ListMembers(ctx context.Context, rosterID string) ([]RosterMember, error) {
	if _, err := s.GetRoster(ctx, rosterID); err != nil {
		return nil, err
	}

	iter := s.rosterDoc(rosterID).Collection(membersSubcollName).
		OrderBy("position", firestore.Asc).
		Limit(maxRosterMembers).
		Documents(ctx)
	defer iter.Stop()

	out := make([]RosterMember, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list roster members: %w", err)
		}

		var item RosterMember
		if err := doc.DataTo(&item); err != nil {
			return nil, fmt.Errorf("decode roster member: %w", err)
		}
		if item.Disabled {
			continue
		}
		if strings.TrimSpace(item.Username) == "" {
			item.Username = doc.Ref.ID
		}
		out = append(out, item)
	}

	return out, nil
}

func (s *Store) rosterDoc(rosterID string) *firestore.DocumentRef {
	return s.client.Collection(rostersCollectionName).Doc(rosterID)
}
