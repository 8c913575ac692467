package commands

import (
	"time"
)

const problemsBaseURL = "https://leetcode.com/problems/"

const displayTimeLayout = "2006-01-02 15:04:05"

// filterTodaysSubmissions keeps the submissions whose timestamp falls on the
// calendar date of now in loc. The day boundary is local midnight in loc, not
// a rolling 24h window. Input order is preserved.
func filterTodaysSubmissions(subs []Submission, loc *time.Location, now time.Time) []DisplaySubmission {
	if loc == nil {
		loc = time.UTC
	}
	ty, tm, td := now.In(loc).Date()

	out := make([]DisplaySubmission, 0, len(subs))
	for _, s := range subs {
		at := time.Unix(s.Timestamp, 0).In(loc)
		y, m, d := at.Date()
		if y != ty || m != tm || d != td {
			continue
		}
		out = append(out, DisplaySubmission{
			Title:     s.Title,
			URL:       problemsBaseURL + s.TitleSlug + "/",
			Timestamp: at.Format(displayTimeLayout),
		})
	}
	return out
}
