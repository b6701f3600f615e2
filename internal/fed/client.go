package fed

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/danielpatrickdp/safegate/gen/federation"
	"github.com/danielpatrickdp/safegate/internal/commit"
)

// #region types
// CloseResult holds the client-side view of a resolved round.
type CloseResult struct {
	Outcome             string
	Reason              string
	WindowID            string
	CombinedBudget      []float64
	CombinedEligibility []float64
	Deltas              map[string]float64
}

// #endregion types

// #region client-struct
// Client wraps the gRPC connection to a federation aggregator.
type Client struct {
	conn   *grpc.ClientConn
	client pb.FederationClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the aggregator daemon.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewFederationClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.FederationClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region open-round
// OpenRound starts a round for a group and returns its ID.
func (c *Client) OpenRound(ctx context.Context, groupID string, expectedClients []string) (string, error) {
	resp, err := c.client.OpenRound(ctx, &pb.OpenRoundRequest{
		GroupId:         groupID,
		ExpectedClients: expectedClients,
	})
	if err != nil {
		return "", fmt.Errorf("open round rpc: %w", err)
	}
	return resp.RoundId, nil
}

// #endregion open-round

// #region submit
// Submit sends one report into its round. A rejected report (late, unknown
// round, malformed) surfaces as an error on the client side.
func (c *Client) Submit(ctx context.Context, rep Report) error {
	resp, err := c.client.SubmitReport(ctx, &pb.SubmitReportRequest{
		Report: &pb.BudgetReport{
			ClientId:    rep.ClientID,
			RoundId:     rep.RoundID,
			Budget:      rep.Budget,
			Eligibility: rep.Eligibility,
			Weight:      rep.Weight,
			SampleCount: rep.SampleCount,
		},
	})
	if err != nil {
		return fmt.Errorf("submit report rpc: %w", err)
	}
	if !resp.Accepted {
		return fmt.Errorf("report not accepted: %s", resp.Reason)
	}
	return nil
}

// #endregion submit

// #region close-round
// CloseRound resolves a round against the supplied metric report.
func (c *Client) CloseRound(ctx context.Context, roundID string, metrics commit.Report) (CloseResult, error) {
	samples := make([]*pb.MetricSample, 0, len(metrics.Main))
	for _, name := range sortedKeys(metrics.Main) {
		samples = append(samples, &pb.MetricSample{
			Name:   name,
			Main:   metrics.Main[name],
			Shadow: metrics.Shadow[name],
		})
	}

	resp, err := c.client.CloseRound(ctx, &pb.CloseRoundRequest{
		RoundId:     roundID,
		Samples:     samples,
		DatasetHash: metrics.DatasetHash,
	})
	if err != nil {
		return CloseResult{}, fmt.Errorf("close round rpc: %w", err)
	}

	deltas := make(map[string]float64, len(resp.Deltas))
	for _, d := range resp.Deltas {
		deltas[d.Name] = d.Delta
	}
	return CloseResult{
		Outcome:             resp.Outcome,
		Reason:              resp.Reason,
		WindowID:            resp.WindowId,
		CombinedBudget:      resp.CombinedBudget,
		CombinedEligibility: resp.CombinedEligibility,
		Deltas:              deltas,
	}, nil
}

// #endregion close-round

// #region status
// Status fetches a round's admission progress.
func (c *Client) Status(ctx context.Context, roundID string) (RoundStatus, error) {
	resp, err := c.client.RoundStatus(ctx, &pb.RoundStatusRequest{RoundId: roundID})
	if err != nil {
		return RoundStatus{}, fmt.Errorf("round status rpc: %w", err)
	}
	return RoundStatus{
		RoundID:     resp.RoundId,
		GroupID:     resp.GroupId,
		Open:        resp.Open,
		ReportCount: int(resp.ReportCount),
		Clients:     resp.Clients,
	}, nil
}

// #endregion status
