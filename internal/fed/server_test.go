package fed

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/danielpatrickdp/safegate/gen/federation"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	agg, _ := newTestAggregator(t, Config{Quorum: 1})
	return NewServer(agg)
}

func TestServerRoundTrip(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	open, err := s.OpenRound(ctx, &pb.OpenRoundRequest{GroupId: "shared"})
	if err != nil {
		t.Fatalf("OpenRound: %v", err)
	}

	sub, err := s.SubmitReport(ctx, &pb.SubmitReportRequest{
		Report: &pb.BudgetReport{
			ClientId:    "a",
			RoundId:     open.RoundId,
			Budget:      []float64{0.2},
			Eligibility: []float64{0.1},
			Weight:      1,
		},
	})
	if err != nil {
		t.Fatalf("SubmitReport: %v", err)
	}
	if !sub.Accepted {
		t.Fatalf("report rejected: %s", sub.Reason)
	}

	st, err := s.RoundStatus(ctx, &pb.RoundStatusRequest{RoundId: open.RoundId})
	if err != nil {
		t.Fatalf("RoundStatus: %v", err)
	}
	if !st.Open || st.ReportCount != 1 || st.GroupId != "shared" {
		t.Fatalf("unexpected status: %+v", st)
	}

	closed, err := s.CloseRound(ctx, &pb.CloseRoundRequest{
		RoundId: open.RoundId,
		Samples: []*pb.MetricSample{
			{Name: "loss", Main: 0.5, Shadow: 0.4},
		},
		DatasetHash: "sha256:round",
	})
	if err != nil {
		t.Fatalf("CloseRound: %v", err)
	}
	if closed.Outcome != "commit" {
		t.Fatalf("outcome = %q, want commit", closed.Outcome)
	}
	if len(closed.CombinedBudget) != 1 || closed.CombinedBudget[0] != 0.2 {
		t.Fatalf("unexpected combined budget: %v", closed.CombinedBudget)
	}
	if len(closed.Deltas) != 1 || closed.Deltas[0].Name != "loss" {
		t.Fatalf("unexpected deltas: %v", closed.Deltas)
	}
}

func TestServerLateReportDropped(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	open, _ := s.OpenRound(ctx, &pb.OpenRoundRequest{GroupId: "shared"})
	sub, _ := s.SubmitReport(ctx, &pb.SubmitReportRequest{
		Report: &pb.BudgetReport{ClientId: "a", RoundId: open.RoundId, Budget: []float64{0.2}, Eligibility: []float64{0.1}},
	})
	if !sub.Accepted {
		t.Fatalf("report rejected: %s", sub.Reason)
	}
	if _, err := s.CloseRound(ctx, &pb.CloseRoundRequest{
		RoundId: open.RoundId,
		Samples: []*pb.MetricSample{{Name: "loss", Main: 0.5, Shadow: 0.4}},
	}); err != nil {
		t.Fatalf("CloseRound: %v", err)
	}

	// A straggler is refused in the response, not with an RPC failure.
	late, err := s.SubmitReport(ctx, &pb.SubmitReportRequest{
		Report: &pb.BudgetReport{ClientId: "b", RoundId: open.RoundId, Budget: []float64{0.3}, Eligibility: []float64{0.1}},
	})
	if err != nil {
		t.Fatalf("late SubmitReport: %v", err)
	}
	if late.Accepted {
		t.Fatal("late report should not be accepted")
	}
}

func TestServerErrorCodes(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	if _, err := s.OpenRound(ctx, &pb.OpenRoundRequest{GroupId: "missing"}); status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if _, err := s.RoundStatus(ctx, &pb.RoundStatusRequest{RoundId: "nope"}); status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}

	open, _ := s.OpenRound(ctx, &pb.OpenRoundRequest{GroupId: "shared", ExpectedClients: []string{"a", "b"}})
	if _, err := s.CloseRound(ctx, &pb.CloseRoundRequest{
		RoundId: open.RoundId,
		Samples: []*pb.MetricSample{{Name: "loss", Main: 0.5, Shadow: 0.4}},
	}); status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition for quorum shortfall, got %v", err)
	}
}
