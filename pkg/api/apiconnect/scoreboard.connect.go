// Package apiconnect wires the scoreboard.v1.ScoreboardService messages to
// Connect handlers and clients. It follows the shape of protoc-gen-connect-go
// output so callers can use it the same way.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/scoreboard/pkg/api"
)

// ScoreboardServiceName is the fully-qualified name of the ScoreboardService service.
const ScoreboardServiceName = "scoreboard.v1.ScoreboardService"

// Procedure paths, usable as Spec.Procedure and as HTTP routes.
const (
	ScoreboardServiceStartMatchProcedure        = "/scoreboard.v1.ScoreboardService/StartMatch"
	ScoreboardServiceUpdateScoreProcedure       = "/scoreboard.v1.ScoreboardService/UpdateScore"
	ScoreboardServiceFinishMatchProcedure       = "/scoreboard.v1.ScoreboardService/FinishMatch"
	ScoreboardServiceListActiveMatchesProcedure = "/scoreboard.v1.ScoreboardService/ListActiveMatches"
	ScoreboardServiceGetSummaryProcedure        = "/scoreboard.v1.ScoreboardService/GetSummary"
	ScoreboardServiceListResultsProcedure       = "/scoreboard.v1.ScoreboardService/ListResults"
)

// ScoreboardServiceClient is a client for the scoreboard.v1.ScoreboardService service.
type ScoreboardServiceClient interface {
	StartMatch(context.Context, *connect.Request[api.StartMatchRequest]) (*connect.Response[api.StartMatchResponse], error)
	UpdateScore(context.Context, *connect.Request[api.UpdateScoreRequest]) (*connect.Response[api.UpdateScoreResponse], error)
	FinishMatch(context.Context, *connect.Request[api.FinishMatchRequest]) (*connect.Response[api.FinishMatchResponse], error)
	ListActiveMatches(context.Context, *connect.Request[api.ListActiveMatchesRequest]) (*connect.Response[api.ListActiveMatchesResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
	ListResults(context.Context, *connect.Request[api.ListResultsRequest]) (*connect.Response[api.ListResultsResponse], error)
}

// NewScoreboardServiceClient constructs a client for the scoreboard.v1.ScoreboardService
// service. Messages are sent as JSON unless opts select another codec, e.g.
// connect.WithCodec(api.CBORCodec{}).
func NewScoreboardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ScoreboardServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	readOpts := append([]connect.ClientOption{connect.WithIdempotency(connect.IdempotencyNoSideEffects)}, opts...)
	return &scoreboardServiceClient{
		startMatch: connect.NewClient[api.StartMatchRequest, api.StartMatchResponse](
			httpClient, baseURL+ScoreboardServiceStartMatchProcedure, opts...),
		updateScore: connect.NewClient[api.UpdateScoreRequest, api.UpdateScoreResponse](
			httpClient, baseURL+ScoreboardServiceUpdateScoreProcedure, opts...),
		finishMatch: connect.NewClient[api.FinishMatchRequest, api.FinishMatchResponse](
			httpClient, baseURL+ScoreboardServiceFinishMatchProcedure, opts...),
		listActiveMatches: connect.NewClient[api.ListActiveMatchesRequest, api.ListActiveMatchesResponse](
			httpClient, baseURL+ScoreboardServiceListActiveMatchesProcedure, readOpts...),
		getSummary: connect.NewClient[api.GetSummaryRequest, api.GetSummaryResponse](
			httpClient, baseURL+ScoreboardServiceGetSummaryProcedure, readOpts...),
		listResults: connect.NewClient[api.ListResultsRequest, api.ListResultsResponse](
			httpClient, baseURL+ScoreboardServiceListResultsProcedure, readOpts...),
	}
}

type scoreboardServiceClient struct {
	startMatch        *connect.Client[api.StartMatchRequest, api.StartMatchResponse]
	updateScore       *connect.Client[api.UpdateScoreRequest, api.UpdateScoreResponse]
	finishMatch       *connect.Client[api.FinishMatchRequest, api.FinishMatchResponse]
	listActiveMatches *connect.Client[api.ListActiveMatchesRequest, api.ListActiveMatchesResponse]
	getSummary        *connect.Client[api.GetSummaryRequest, api.GetSummaryResponse]
	listResults       *connect.Client[api.ListResultsRequest, api.ListResultsResponse]
}

func (c *scoreboardServiceClient) StartMatch(ctx context.Context, req *connect.Request[api.StartMatchRequest]) (*connect.Response[api.StartMatchResponse], error) {
	return c.startMatch.CallUnary(ctx, req)
}

func (c *scoreboardServiceClient) UpdateScore(ctx context.Context, req *connect.Request[api.UpdateScoreRequest]) (*connect.Response[api.UpdateScoreResponse], error) {
	return c.updateScore.CallUnary(ctx, req)
}

func (c *scoreboardServiceClient) FinishMatch(ctx context.Context, req *connect.Request[api.FinishMatchRequest]) (*connect.Response[api.FinishMatchResponse], error) {
	return c.finishMatch.CallUnary(ctx, req)
}

func (c *scoreboardServiceClient) ListActiveMatches(ctx context.Context, req *connect.Request[api.ListActiveMatchesRequest]) (*connect.Response[api.ListActiveMatchesResponse], error) {
	return c.listActiveMatches.CallUnary(ctx, req)
}

func (c *scoreboardServiceClient) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *scoreboardServiceClient) ListResults(ctx context.Context, req *connect.Request[api.ListResultsRequest]) (*connect.Response[api.ListResultsResponse], error) {
	return c.listResults.CallUnary(ctx, req)
}

// ScoreboardServiceHandler is an implementation of the scoreboard.v1.ScoreboardService service.
type ScoreboardServiceHandler interface {
	StartMatch(context.Context, *connect.Request[api.StartMatchRequest]) (*connect.Response[api.StartMatchResponse], error)
	UpdateScore(context.Context, *connect.Request[api.UpdateScoreRequest]) (*connect.Response[api.UpdateScoreResponse], error)
	FinishMatch(context.Context, *connect.Request[api.FinishMatchRequest]) (*connect.Response[api.FinishMatchResponse], error)
	ListActiveMatches(context.Context, *connect.Request[api.ListActiveMatchesRequest]) (*connect.Response[api.ListActiveMatchesResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
	ListResults(context.Context, *connect.Request[api.ListResultsRequest]) (*connect.Response[api.ListResultsResponse], error)
}

// NewScoreboardServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
// The handler accepts both the JSON and CBOR codecs.
func NewScoreboardServiceHandler(svc ScoreboardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{
		connect.WithCodec(api.JSONCodec{}),
		connect.WithCodec(api.CBORCodec{}),
	}, opts...)
	readOpts := append([]connect.HandlerOption{connect.WithIdempotency(connect.IdempotencyNoSideEffects)}, opts...)

	startMatchHandler := connect.NewUnaryHandler(ScoreboardServiceStartMatchProcedure, svc.StartMatch, opts...)
	updateScoreHandler := connect.NewUnaryHandler(ScoreboardServiceUpdateScoreProcedure, svc.UpdateScore, opts...)
	finishMatchHandler := connect.NewUnaryHandler(ScoreboardServiceFinishMatchProcedure, svc.FinishMatch, opts...)
	listActiveMatchesHandler := connect.NewUnaryHandler(ScoreboardServiceListActiveMatchesProcedure, svc.ListActiveMatches, readOpts...)
	getSummaryHandler := connect.NewUnaryHandler(ScoreboardServiceGetSummaryProcedure, svc.GetSummary, readOpts...)
	listResultsHandler := connect.NewUnaryHandler(ScoreboardServiceListResultsProcedure, svc.ListResults, readOpts...)

	return "/" + ScoreboardServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ScoreboardServiceStartMatchProcedure:
			startMatchHandler.ServeHTTP(w, r)
		case ScoreboardServiceUpdateScoreProcedure:
			updateScoreHandler.ServeHTTP(w, r)
		case ScoreboardServiceFinishMatchProcedure:
			finishMatchHandler.ServeHTTP(w, r)
		case ScoreboardServiceListActiveMatchesProcedure:
			listActiveMatchesHandler.ServeHTTP(w, r)
		case ScoreboardServiceGetSummaryProcedure:
			getSummaryHandler.ServeHTTP(w, r)
		case ScoreboardServiceListResultsProcedure:
			listResultsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedScoreboardServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedScoreboardServiceHandler struct{}

func (UnimplementedScoreboardServiceHandler) StartMatch(context.Context, *connect.Request[api.StartMatchRequest]) (*connect.Response[api.StartMatchResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("scoreboard.v1.ScoreboardService.StartMatch is not implemented"))
}

func (UnimplementedScoreboardServiceHandler) UpdateScore(context.Context, *connect.Request[api.UpdateScoreRequest]) (*connect.Response[api.UpdateScoreResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("scoreboard.v1.ScoreboardService.UpdateScore is not implemented"))
}

func (UnimplementedScoreboardServiceHandler) FinishMatch(context.Context, *connect.Request[api.FinishMatchRequest]) (*connect.Response[api.FinishMatchResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("scoreboard.v1.ScoreboardService.FinishMatch is not implemented"))
}

func (UnimplementedScoreboardServiceHandler) ListActiveMatches(context.Context, *connect.Request[api.ListActiveMatchesRequest]) (*connect.Response[api.ListActiveMatchesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("scoreboard.v1.ScoreboardService.ListActiveMatches is not implemented"))
}

func (UnimplementedScoreboardServiceHandler) GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("scoreboard.v1.ScoreboardService.GetSummary is not implemented"))
}

func (UnimplementedScoreboardServiceHandler) ListResults(context.Context, *connect.Request[api.ListResultsRequest]) (*connect.Response[api.ListResultsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("scoreboard.v1.ScoreboardService.ListResults is not implemented"))
}
