package leetcode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 5*time.Second)
}

func TestDailyQuestion(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/daily", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"questionLink": "https://leetcode.com/problems/two-sum/",
			"questionTitle": "Two Sum",
			"titleSlug": "two-sum",
			"difficulty": "Easy",
			"question": "<p>Find <b>two</b> numbers.</p>",
			"isPaidOnly": false
		}`))
	})

	q, err := client.DailyQuestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", q.Title)
	assert.Equal(t, DifficultyEasy, q.Difficulty)
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", q.URL)
	assert.Equal(t, "<p>Find <b>two</b> numbers.</p>", q.QuestionBody)
}

func TestDailyQuestionBuildsURLFromSlugWhenLinkMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"questionTitle": "Two Sum", "titleSlug": "two-sum"}`))
	})

	q, err := client.DailyQuestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", q.URL)
	assert.Equal(t, Difficulty(""), q.Difficulty)
}

func TestDailyQuestionNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.DailyQuestion(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, "/daily", statusErr.Path)
}

func TestAcceptedSubmissionsAcceptsStringAndNumberTimestamps(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alice/acSubmission", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{
			"count": 2,
			"submission": [
				{"title": "Two Sum", "titleSlug": "two-sum", "timestamp": "1700000000", "lang": "go"},
				{"title": "Valid Anagram", "titleSlug": "valid-anagram", "timestamp": 1700000100}
			]
		}`))
	})

	subs, err := client.AcceptedSubmissions(context.Background(), "alice", 5)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, Submission{Title: "Two Sum", TitleSlug: "two-sum", Timestamp: 1700000000}, subs[0])
	assert.Equal(t, int64(1700000100), subs[1].Timestamp)
}

func TestAcceptedSubmissionsMissingListIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"count": 0}`))
	})

	subs, err := client.AcceptedSubmissions(context.Background(), "bob", 0)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestAcceptedSubmissionsRejectsBadTimestamp(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"submission": [{"title": "x", "titleSlug": "x", "timestamp": "yesterday"}]}`))
	})

	_, err := client.AcceptedSubmissions(context.Background(), "bob", 10)
	require.Error(t, err)
}

func TestSolvedDefaultsMissingCountsToZero(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alice/solved", r.URL.Path)
		_, _ = w.Write([]byte(`{"solvedProblem": 10, "easySolved": 6, "mediumSolved": 4}`))
	})

	counts, err := client.Solved(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, SolvedCounts{TotalSolved: 10, Easy: 6, Medium: 4, Hard: 0}, counts)
}

func TestBadgesSkipsUnnamedEntries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alice/badges", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"badgesCount": 2,
			"badges": [
				{"id": "1", "displayName": "50 Days Badge 2024", "icon": "https://x/icon.png"},
				{"id": "2", "displayName": "  "}
			]
		}`))
	})

	badges, err := client.Badges(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "50 Days Badge 2024", badges[0].DisplayName)
}

func TestEmptyUsernameIsRejected(t *testing.T) {
	client := NewClient("", time.Second)

	_, err := client.Solved(context.Background(), " ")
	assert.Error(t, err)
	_, err = client.Badges(context.Background(), "")
	assert.Error(t, err)
	_, err = client.AcceptedSubmissions(context.Background(), "", 10)
	assert.Error(t, err)
}
