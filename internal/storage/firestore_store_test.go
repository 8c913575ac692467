package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests talk to the Firestore emulator and are skipped without it.
func newEmulatorStore(t *testing.T) (*Store, *firestore.Client) {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "leetcode-bot-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), client
}

func TestListMembersOrdersAndSkipsDisabled(t *testing.T) {
	store, client := newEmulatorStore(t)
	ctx := context.Background()
	rosterID := fmt.Sprintf("roster-%d", time.Now().UnixNano())

	rosterRef := client.Collection(rostersCollectionName).Doc(rosterID)
	_, err := rosterRef.Set(ctx, RosterDoc{Name: "study group", UpdatedAt: time.Now()})
	require.NoError(t, err)

	members := []RosterMember{
		{Username: "carol", Position: 3},
		{Username: "alice", Position: 1},
		{Username: "mallory", Position: 2, Disabled: true},
		{Username: "bob", Position: 2},
	}
	for _, m := range members {
		_, err := rosterRef.Collection(membersSubcollName).Doc(m.Username).Set(ctx, m)
		require.NoError(t, err)
	}

	got, err := store.ListMembers(ctx, rosterID)
	require.NoError(t, err)

	names := make([]string, 0, len(got))
	for _, m := range got {
		names = append(names, m.Username)
	}
	assert.Equal(t, []string{"alice", "bob", "carol"}, names)
}

func TestGetRosterNotFound(t *testing.T) {
	store, _ := newEmulatorStore(t)

	_, err := store.GetRoster(context.Background(), "does-not-exist")
	require.ErrorIs(t, err, ErrRosterNotFound)
}
