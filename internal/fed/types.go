package fed

import (
	"errors"
	"fmt"

	"github.com/danielpatrickdp/safegate/internal/commit"
)

// #region report
// Report is one client's local budget and eligibility summary for a round.
// The client owns the values until aggregation; after the round closes the
// aggregator exclusively owns the combined result.
type Report struct {
	ClientID    string
	RoundID     string
	Budget      []float64
	Eligibility []float64
	Weight      float64 // aggregation weight, typically client dataset size
	SampleCount int64
}

// #endregion report

// #region config
// Config holds the round admission policy.
type Config struct {
	Quorum       int  // minimum reports required to close a round
	AllowPartial bool // close once quorum is met even if expected clients are missing
}

// DefaultConfig requires every expected client.
func DefaultConfig() Config {
	return Config{Quorum: 1, AllowPartial: false}
}

// #endregion config

// #region round-result
// RoundResult is the outcome of a closed round: the combined dynamics plus
// the single coordinator-level commit decision.
type RoundResult struct {
	RoundID             string
	GroupID             string
	Policy              string
	CombinedBudget      []float64
	CombinedEligibility []float64
	Decision            commit.Decision
}

// RoundStatus is a point-in-time view of a round.
type RoundStatus struct {
	RoundID     string
	GroupID     string
	Open        bool
	ReportCount int
	Clients     []string
}

// #endregion round-result

// #region errors
// QuorumError means a round closed without enough client reports. The round
// is skipped, no decision is made; this is distinct from a metric-based
// reject.
type QuorumError struct {
	RoundID string
	Got     int
	Want    int
}

func (e *QuorumError) Error() string {
	return fmt.Sprintf("round %s: %d reports, quorum %d", e.RoundID, e.Got, e.Want)
}

var (
	// ErrUnknownRound means the round ID was never opened.
	ErrUnknownRound = errors.New("unknown round")
	// ErrRoundClosed means a report arrived after the round resolved. Late
	// reports are dropped for that round, never blocked on.
	ErrRoundClosed = errors.New("round already closed")
)

// #endregion errors
