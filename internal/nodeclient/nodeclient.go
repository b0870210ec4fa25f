// Package nodeclient adapts the engine to the chain node's HTTP surface
// (spec section 6): UTXO lookup, balance lookup, and raw-transaction
// submission.
package nodeclient

import (
	"context"

	"github.com/hoosat-labs/hrc20-engine/internal/txmodel"
)

// Balance is the node's confirmed/pending balance report.
type Balance struct {
	Confirmed uint64
	Pending   uint64
}

// NodeClient is the engine's view of the chain node. Implementations
// (HTTPNodeClient, FakeNodeClient) share this interface so the
// orchestrator and its tests can swap transports.
type NodeClient interface {
	GetUTXOs(ctx context.Context, address string) ([]txmodel.UTXO, error)
	GetBalance(ctx context.Context, address string) (Balance, error)
	SubmitTransaction(ctx context.Context, tx *txmodel.Transaction) (txID string, err error)
}
