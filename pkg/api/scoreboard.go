// Package api defines the request and response messages of the
// scoreboard.v1.ScoreboardService Connect service.
//
// Messages are plain Go structs. They travel as JSON (application/json) or
// CBOR (application/cbor) through the codecs in this package, so no
// generated code is needed.
package api

import "time"

// Match is an active match as seen by clients.
type Match struct {
	ID              string    `json:"id"`
	HomeParticipant string    `json:"home_participant"`
	AwayParticipant string    `json:"away_participant"`
	HomeScore       int       `json:"home_score"`
	AwayScore       int       `json:"away_score"`
	TotalScore      int       `json:"total_score"`
	StartedAt       time.Time `json:"started_at"`
}

// Result is a finished match from the archive.
type Result struct {
	MatchID         string    `json:"match_id"`
	HomeParticipant string    `json:"home_participant"`
	AwayParticipant string    `json:"away_participant"`
	HomeScore       int       `json:"home_score"`
	AwayScore       int       `json:"away_score"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
}

type StartMatchRequest struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

type StartMatchResponse struct {
	Match *Match `json:"match"`
}

type UpdateScoreRequest struct {
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
}

type UpdateScoreResponse struct{}

type FinishMatchRequest struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

type FinishMatchResponse struct {
	Result *Result `json:"result"`
}

type ListActiveMatchesRequest struct{}

type ListActiveMatchesResponse struct {
	Matches []*Match `json:"matches"`
}

type GetSummaryRequest struct{}

// GetSummaryResponse lists matches by total score, highest first; equal
// totals list the most recently started match first.
type GetSummaryResponse struct {
	Matches []*Match `json:"matches"`
}

type ListResultsRequest struct {
	// Participant restricts results to matches this participant played. Optional.
	Participant string `json:"participant,omitempty"`
	// Limit caps the number of results. Zero means no limit.
	Limit int `json:"limit,omitempty"`
}

type ListResultsResponse struct {
	Results []*Result `json:"results"`
}
