package leetcode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://alfa-leetcode-api.onrender.com"

const ProblemsBaseURL = "https://leetcode.com/problems/"

// StatusError is returned when the stats API answers with a non-2xx status.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("leetcode api %s: status %d", e.Path, e.StatusCode)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type DailyQuestion struct {
	Title        string
	TitleSlug    string
	Difficulty   Difficulty
	QuestionBody string
	URL          string
}

type Submission struct {
	Title     string
	TitleSlug string
	Timestamp int64
}

type SolvedCounts struct {
	TotalSolved int
	Easy        int
	Medium      int
	Hard        int
}

type Badge struct {
	ID          string
	DisplayName string
	Icon        string
}

type dailyResponse struct {
	QuestionLink  string `json:"questionLink"`
	QuestionTitle string `json:"questionTitle"`
	TitleSlug     string `json:"titleSlug"`
	Difficulty    string `json:"difficulty"`
	Question      string `json:"question"`
}

type submissionResponse struct {
	Count      int `json:"count"`
	Submission []struct {
		Title     string       `json:"title"`
		TitleSlug string       `json:"titleSlug"`
		Timestamp epochSeconds `json:"timestamp"`
	} `json:"submission"`
}

type solvedResponse struct {
	SolvedProblem int `json:"solvedProblem"`
	EasySolved    int `json:"easySolved"`
	MediumSolved  int `json:"mediumSolved"`
	HardSolved    int `json:"hardSolved"`
}

type badgesResponse struct {
	BadgesCount int `json:"badgesCount"`
	Badges      []struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		Icon        string `json:"icon"`
	} `json:"badges"`
}

// epochSeconds accepts both "1700000000" and 1700000000.
type epochSeconds int64

func (e *epochSeconds) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*e = 0
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	*e = epochSeconds(v)
	return nil
}

func (c *Client) DailyQuestion(ctx context.Context) (DailyQuestion, error) {
	var parsed dailyResponse
	if err := c.getJSON(ctx, "/daily", &parsed); err != nil {
		return DailyQuestion{}, err
	}

	slug := strings.TrimSpace(parsed.TitleSlug)
	link := strings.TrimSpace(parsed.QuestionLink)
	if link == "" && slug != "" {
		link = ProblemURL(slug)
	}

	return DailyQuestion{
		Title:        strings.TrimSpace(parsed.QuestionTitle),
		TitleSlug:    slug,
		Difficulty:   Difficulty(strings.TrimSpace(parsed.Difficulty)),
		QuestionBody: parsed.Question,
		URL:          link,
	}, nil
}

func (c *Client) AcceptedSubmissions(ctx context.Context, username string, limit int) ([]Submission, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is empty")
	}
	if limit <= 0 {
		limit = 10
	}

	path := "/" + url.PathEscape(username) + "/acSubmission?limit=" + strconv.Itoa(limit)
	var parsed submissionResponse
	if err := c.getJSON(ctx, path, &parsed); err != nil {
		return nil, err
	}

	out := make([]Submission, 0, len(parsed.Submission))
	for _, s := range parsed.Submission {
		out = append(out, Submission{
			Title:     strings.TrimSpace(s.Title),
			TitleSlug: strings.TrimSpace(s.TitleSlug),
			Timestamp: int64(s.Timestamp),
		})
	}
	return out, nil
}

func (c *Client) Solved(ctx context.Context, username string) (SolvedCounts, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return SolvedCounts{}, fmt.Errorf("username is empty")
	}

	var parsed solvedResponse
	if err := c.getJSON(ctx, "/"+url.PathEscape(username)+"/solved", &parsed); err != nil {
		return SolvedCounts{}, err
	}

	return SolvedCounts{
		TotalSolved: parsed.SolvedProblem,
		Easy:        parsed.EasySolved,
		Medium:      parsed.MediumSolved,
		Hard:        parsed.HardSolved,
	}, nil
}

func (c *Client) Badges(ctx context.Context, username string) ([]Badge, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is empty")
	}

	var parsed badgesResponse
	if err := c.getJSON(ctx, "/"+url.PathEscape(username)+"/badges", &parsed); err != nil {
		return nil, err
	}

	out := make([]Badge, 0, len(parsed.Badges))
	for _, b := range parsed.Badges {
		name := strings.TrimSpace(b.DisplayName)
		if name == "" {
			continue
		}
		out = append(out, Badge{
			ID:          b.ID,
			DisplayName: name,
			Icon:        b.Icon,
		})
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create leetcode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func ProblemURL(slug string) string {
	return ProblemsBaseURL + slug + "/"
}
