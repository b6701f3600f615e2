package fed

import (
	"context"
	"errors"
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/danielpatrickdp/safegate/gen/federation"
	"github.com/danielpatrickdp/safegate/internal/commit"
	"github.com/danielpatrickdp/safegate/internal/engine"
)

// #region server
// Server exposes the aggregator over gRPC.
type Server struct {
	pb.UnimplementedFederationServer
	agg *Aggregator
}

// NewServer wraps an aggregator.
func NewServer(agg *Aggregator) *Server {
	return &Server{agg: agg}
}

// #endregion server

// #region open-round
// OpenRound starts a round for a registered group.
func (s *Server) OpenRound(ctx context.Context, req *pb.OpenRoundRequest) (*pb.OpenRoundResponse, error) {
	roundID, err := s.agg.OpenRound(req.GroupId, req.ExpectedClients)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownGroup) {
			return nil, status.Errorf(codes.NotFound, "%v", err)
		}
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return &pb.OpenRoundResponse{RoundId: roundID}, nil
}

// #endregion open-round

// #region submit-report
// SubmitReport admits one client report. Rejections (late, unknown round,
// malformed) are reported in the response rather than as RPC failures so a
// straggling client is dropped, not blocked.
func (s *Server) SubmitReport(ctx context.Context, req *pb.SubmitReportRequest) (*pb.SubmitReportResponse, error) {
	if req.Report == nil {
		return &pb.SubmitReportResponse{Accepted: false, Reason: "empty report"}, nil
	}
	err := s.agg.Submit(Report{
		ClientID:    req.Report.ClientId,
		RoundID:     req.Report.RoundId,
		Budget:      req.Report.Budget,
		Eligibility: req.Report.Eligibility,
		Weight:      req.Report.Weight,
		SampleCount: req.Report.SampleCount,
	})
	if err != nil {
		return &pb.SubmitReportResponse{Accepted: false, Reason: err.Error()}, nil
	}
	return &pb.SubmitReportResponse{Accepted: true}, nil
}

// #endregion submit-report

// #region close-round
// CloseRound combines the round's reports and resolves the commit decision.
func (s *Server) CloseRound(ctx context.Context, req *pb.CloseRoundRequest) (*pb.CloseRoundResponse, error) {
	main := make(map[string]float64, len(req.Samples))
	shadow := make(map[string]float64, len(req.Samples))
	for _, sm := range req.Samples {
		main[sm.Name] = sm.Main
		shadow[sm.Name] = sm.Shadow
	}

	result, err := s.agg.CloseRound(req.RoundId, commit.Report{
		Main:        main,
		Shadow:      shadow,
		DatasetHash: req.DatasetHash,
		Exhausted:   len(req.Samples) == 0,
	})
	if err != nil {
		var quorumErr *QuorumError
		switch {
		case errors.As(err, &quorumErr):
			return nil, status.Errorf(codes.FailedPrecondition, "%v", err)
		case errors.Is(err, commit.ErrDeferred):
			return nil, status.Errorf(codes.Unavailable, "%v", err)
		case errors.Is(err, ErrUnknownRound):
			return nil, status.Errorf(codes.NotFound, "%v", err)
		case errors.Is(err, ErrRoundClosed):
			return nil, status.Errorf(codes.FailedPrecondition, "%v", err)
		default:
			return nil, status.Errorf(codes.Internal, "%v", err)
		}
	}

	deltas := make([]*pb.MetricDelta, 0, len(result.Decision.Deltas))
	for _, name := range sortedKeys(result.Decision.Deltas) {
		deltas = append(deltas, &pb.MetricDelta{Name: name, Delta: result.Decision.Deltas[name]})
	}
	return &pb.CloseRoundResponse{
		Outcome:             string(result.Decision.Outcome),
		Reason:              result.Decision.Reason,
		WindowId:            result.Decision.WindowID,
		CombinedBudget:      result.CombinedBudget,
		CombinedEligibility: result.CombinedEligibility,
		Deltas:              deltas,
	}, nil
}

// #endregion close-round

// #region helpers
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// #endregion helpers

// #region round-status
// RoundStatus reports a round's admission progress.
func (s *Server) RoundStatus(ctx context.Context, req *pb.RoundStatusRequest) (*pb.RoundStatusResponse, error) {
	st, err := s.agg.Status(req.RoundId)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "%v", err)
	}
	return &pb.RoundStatusResponse{
		RoundId:     st.RoundID,
		GroupId:     st.GroupID,
		ReportCount: int64(st.ReportCount),
		Open:        st.Open,
		Clients:     st.Clients,
	}, nil
}

// #endregion round-status
