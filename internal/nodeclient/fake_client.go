// FakeNodeClient is an in-memory NodeClient used by orchestrator tests and
// the CLI's --fake debug flag, grounded in the teacher's tendency to keep
// a manual demo harness alongside the real network code.
package nodeclient

import (
	"context"
	"sync"

	"github.com/hoosat-labs/hrc20-engine/internal/hashutil"
	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
	"github.com/hoosat-labs/hrc20-engine/internal/txmodel"
)

// FakeNodeClient holds UTXOs per address in memory and fabricates a
// transaction id on submit by BLAKE3-hashing the serialized transaction.
type FakeNodeClient struct {
	mu      sync.Mutex
	utxos   map[string][]txmodel.UTXO
	submits []*txmodel.Transaction
}

// NewFakeNodeClient builds an empty fake client; call SeedUTXOs to give an
// address a starting balance.
func NewFakeNodeClient() *FakeNodeClient {
	return &FakeNodeClient{utxos: make(map[string][]txmodel.UTXO)}
}

// SeedUTXOs installs a starting UTXO set for address, for test setup.
func (f *FakeNodeClient) SeedUTXOs(address string, utxos []txmodel.UTXO) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.utxos[address] = utxos
}

func (f *FakeNodeClient) GetUTXOs(_ context.Context, address string) ([]txmodel.UTXO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]txmodel.UTXO(nil), f.utxos[address]...), nil
}

func (f *FakeNodeClient) GetBalance(ctx context.Context, address string) (Balance, error) {
	utxos, err := f.GetUTXOs(ctx, address)
	if err != nil {
		return Balance{}, err
	}
	var total uint64
	for _, u := range utxos {
		total += u.Amount
	}
	return Balance{Confirmed: total, Pending: 0}, nil
}

func (f *FakeNodeClient) SubmitTransaction(_ context.Context, tx *txmodel.Transaction) (string, error) {
	if tx == nil {
		return "", &hrc20err.InvalidTransaction{Message: "nil transaction"}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits = append(f.submits, tx)

	id := hashutil.Blake3TxID(tx.Serialize())
	return reverseHex(id), nil
}

// Submits returns every transaction handed to SubmitTransaction, for test
// assertions.
func (f *FakeNodeClient) Submits() []*txmodel.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*txmodel.Transaction(nil), f.submits...)
}

func reverseHex(id [32]byte) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 0, 64)
	for i := 31; i >= 0; i-- {
		b := id[i]
		out = append(out, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return string(out)
}
