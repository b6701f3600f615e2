package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"google.golang.org/grpc"

	pb "github.com/danielpatrickdp/safegate/gen/federation"
	"github.com/danielpatrickdp/safegate/internal/audit"
	"github.com/danielpatrickdp/safegate/internal/engine"
	"github.com/danielpatrickdp/safegate/internal/fed"
)

// #region main
func main() {
	dbPath := envOr("SAFEGATE_DB", "safegate.db")
	addr := envOr("SAFEGATE_ADDR", "localhost:50061")
	groupID := envOr("SAFEGATE_GROUP", "default")
	dim := envIntOr("SAFEGATE_DIM", 64)
	quorum := envIntOr("SAFEGATE_QUORUM", 1)
	allowPartial := os.Getenv("SAFEGATE_ALLOW_PARTIAL") == "true"
	decisionLog := envOr("SAFEGATE_DECISION_LOG", "decisions.jsonl")

	store, err := audit.NewStore(dbPath, audit.DefaultRetentionConfig())
	if err != nil {
		log.Fatalf("failed to open audit store: %v", err)
	}
	defer store.Close()

	eng, err := engine.New(engine.DefaultConfig())
	if err != nil {
		log.Fatalf("failed to build engine: %v", err)
	}
	eng.AuditTo(store)

	stream, err := os.OpenFile(decisionLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("failed to open decision log: %v", err)
	}
	defer stream.Close()
	eng.LogDecisionsTo(stream)

	// Resume from the latest checkpoint when one exists, otherwise start
	// from zero weights of the configured dimension.
	weights := initialWeights(store, groupID, dim)
	if err := eng.AddGroup(groupID, weights); err != nil {
		log.Fatalf("failed to register group %s: %v", groupID, err)
	}

	agg, err := fed.NewAggregator(eng, fed.NewHarmonicMeanPolicy(), fed.Config{
		Quorum:       quorum,
		AllowPartial: allowPartial,
	})
	if err != nil {
		log.Fatalf("failed to build aggregator: %v", err)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}
	srv := grpc.NewServer()
	pb.RegisterFederationServer(srv, fed.NewServer(agg))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("shutting down...")
		srv.GracefulStop()
	}()

	fmt.Println("Safe-gate aggregator ready.")
	fmt.Printf("  DB: %s | Addr: %s | Group: %s (%d params)\n", dbPath, addr, groupID, len(weights))
	fmt.Printf("  Quorum: %d | Partial rounds: %v\n", quorum, allowPartial)

	if err := srv.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region bootstrap

// initialWeights loads the group's most recent checkpoint, falling back to a
// zero vector of the configured dimension.
func initialWeights(store *audit.Store, groupID string, dim int) []float64 {
	cps, err := store.ListCheckpoints(groupID, 1)
	if err != nil {
		log.Printf("[AGGREGATOR] checkpoint lookup failed: %v", err)
	}
	if len(cps) > 0 {
		log.Printf("[AGGREGATOR] resuming group %s from checkpoint %s (%d params)",
			groupID, cps[0].CheckpointID, len(cps[0].MainValue))
		return cps[0].MainValue
	}
	return make([]float64, dim)
}

// #endregion bootstrap

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Fatalf("invalid %s: %q", key, v)
	}
	return n
}

// #endregion helpers
