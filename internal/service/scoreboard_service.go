package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/scoreboard/internal/models"
	"github.com/mmynk/scoreboard/internal/registry"
	"github.com/mmynk/scoreboard/internal/storage"
	"github.com/mmynk/scoreboard/pkg/api"
	"github.com/mmynk/scoreboard/pkg/api/apiconnect"
)

// ScoreboardService implements the Connect ScoreboardService
type ScoreboardService struct {
	apiconnect.UnimplementedScoreboardServiceHandler
	registry *registry.Registry
	store    storage.ResultStore
	now      func() time.Time
}

// NewScoreboardService creates a ScoreboardService over an already seeded
// registry and the result archive.
func NewScoreboardService(reg *registry.Registry, store storage.ResultStore) *ScoreboardService {
	return &ScoreboardService{registry: reg, store: store, now: time.Now}
}

// registryError translates a registry failure into a Connect error.
func registryError(err error) *connect.Error {
	switch {
	case errors.Is(err, registry.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, registry.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, registry.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// StartMatch starts a new match at 0-0.
func (s *ScoreboardService) StartMatch(ctx context.Context, req *connect.Request[api.StartMatchRequest]) (*connect.Response[api.StartMatchResponse], error) {
	slog.Info("StartMatch request received", "home", req.Msg.Home, "away", req.Msg.Away)

	match, err := s.registry.StartMatch(req.Msg.Home, req.Msg.Away)
	if err != nil {
		slog.Warn("StartMatch failed", "home", req.Msg.Home, "away", req.Msg.Away, "error", err)
		return nil, registryError(err)
	}

	slog.Info("Match started", "match_id", match.ID, "match", match.String())

	return connect.NewResponse(&api.StartMatchResponse{
		Match: toAPIMatch(match),
	}), nil
}

// UpdateScore overwrites the score of an active match.
func (s *ScoreboardService) UpdateScore(ctx context.Context, req *connect.Request[api.UpdateScoreRequest]) (*connect.Response[api.UpdateScoreResponse], error) {
	slog.Info("UpdateScore request received",
		"home", req.Msg.Home,
		"away", req.Msg.Away,
		"home_score", req.Msg.HomeScore,
		"away_score", req.Msg.AwayScore,
	)

	if err := s.registry.UpdateScore(req.Msg.Home, req.Msg.Away, req.Msg.HomeScore, req.Msg.AwayScore); err != nil {
		slog.Warn("UpdateScore failed", "home", req.Msg.Home, "away", req.Msg.Away, "error", err)
		return nil, registryError(err)
	}

	return connect.NewResponse(&api.UpdateScoreResponse{}), nil
}

// FinishMatch ends an active match and archives its final score.
func (s *ScoreboardService) FinishMatch(ctx context.Context, req *connect.Request[api.FinishMatchRequest]) (*connect.Response[api.FinishMatchResponse], error) {
	slog.Info("FinishMatch request received", "home", req.Msg.Home, "away", req.Msg.Away)

	match, err := s.registry.FinishMatch(req.Msg.Home, req.Msg.Away)
	if err != nil {
		slog.Warn("FinishMatch failed", "home", req.Msg.Home, "away", req.Msg.Away, "error", err)
		return nil, registryError(err)
	}

	result := models.NewResult(match, s.now())

	// The match is already gone from the registry; a failed archive only loses history.
	if err := s.store.ArchiveResult(ctx, &result); err != nil {
		slog.Error("FinishMatch: failed to archive result", "match_id", match.ID, "error", err)
	}

	slog.Info("Match finished", "match_id", match.ID, "match", match.String())

	return connect.NewResponse(&api.FinishMatchResponse{
		Result: toAPIResult(result),
	}), nil
}

// ListActiveMatches returns every active match in start order.
func (s *ScoreboardService) ListActiveMatches(ctx context.Context, req *connect.Request[api.ListActiveMatchesRequest]) (*connect.Response[api.ListActiveMatchesResponse], error) {
	matches := s.registry.ListActiveMatches()
	slog.Debug("ListActiveMatches successful", "count", len(matches))

	return connect.NewResponse(&api.ListActiveMatchesResponse{
		Matches: toAPIMatches(matches),
	}), nil
}

// GetSummary returns every active match ordered by total score.
func (s *ScoreboardService) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	matches := s.registry.SummaryByTotalScore()
	slog.Debug("GetSummary successful", "count", len(matches))

	return connect.NewResponse(&api.GetSummaryResponse{
		Matches: toAPIMatches(matches),
	}), nil
}

// ListResults returns archived results, most recently finished first.
func (s *ScoreboardService) ListResults(ctx context.Context, req *connect.Request[api.ListResultsRequest]) (*connect.Response[api.ListResultsResponse], error) {
	slog.Info("ListResults request received", "participant", req.Msg.Participant, "limit", req.Msg.Limit)

	if req.Msg.Limit < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("limit cannot be negative"))
	}

	results, err := s.store.ListResults(ctx, req.Msg.Participant, req.Msg.Limit)
	if err != nil {
		slog.Error("ListResults failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	apiResults := make([]*api.Result, len(results))
	for i, r := range results {
		apiResults[i] = toAPIResult(r)
	}

	slog.Info("ListResults successful", "count", len(results))

	return connect.NewResponse(&api.ListResultsResponse{
		Results: apiResults,
	}), nil
}

func toAPIMatch(m models.Match) *api.Match {
	return &api.Match{
		ID:              m.ID.String(),
		HomeParticipant: m.HomeParticipant,
		AwayParticipant: m.AwayParticipant,
		HomeScore:       m.HomeScore,
		AwayScore:       m.AwayScore,
		TotalScore:      m.TotalScore(),
		StartedAt:       m.StartedAt,
	}
}

func toAPIMatches(matches []models.Match) []*api.Match {
	out := make([]*api.Match, len(matches))
	for i, m := range matches {
		out[i] = toAPIMatch(m)
	}
	return out
}

func toAPIResult(r models.Result) *api.Result {
	return &api.Result{
		MatchID:         r.MatchID.String(),
		HomeParticipant: r.HomeParticipant,
		AwayParticipant: r.AwayParticipant,
		HomeScore:       r.HomeScore,
		AwayScore:       r.AwayScore,
		StartedAt:       r.StartedAt,
		FinishedAt:      r.FinishedAt,
	}
}
