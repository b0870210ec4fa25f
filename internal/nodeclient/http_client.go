// HTTPNodeClient talks to the node's REST surface over net/http, mirroring
// the teacher's services/node/api.go request/response struct style from
// the server side and the JSON-RPC-over-HTTP client idiom read from
// blacktrace-go/settlement-service/zcash/client.go before that directory
// was removed as a duplicate nested module.
package nodeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hoosat-labs/hrc20-engine/internal/hexcodec"
	"github.com/hoosat-labs/hrc20-engine/internal/hrc20err"
	"github.com/hoosat-labs/hrc20-engine/internal/txmodel"
)

// HTTPNodeClient is the production NodeClient backed by the node's REST API.
type HTTPNodeClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPNodeClient builds a client bound to baseURL (e.g.
// "http://localhost:16210"), with a bounded response size matching the
// host runtime's HTTP response size limits (spec 5 resource budgets).
func NewHTTPNodeClient(baseURL string) *HTTPNodeClient {
	return &HTTPNodeClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

const maxResponseBytes = 10 << 20 // 10MiB node-response cap

type utxoEntryWire struct {
	Outpoint struct {
		TransactionID string `json:"transactionId"`
		Index         uint32 `json:"index"`
	} `json:"outpoint"`
	Amount          uint64 `json:"amount"`
	ScriptPublicKey struct {
		Version         uint16 `json:"version"`
		ScriptPublicKey string `json:"scriptPublicKey"`
	} `json:"scriptPublicKey"`
	Address string `json:"address"`
}

func (c *HTTPNodeClient) GetUTXOs(ctx context.Context, address string) ([]txmodel.UTXO, error) {
	var wire []utxoEntryWire
	if err := c.getJSON(ctx, fmt.Sprintf("/addresses/%s/utxos", address), &wire); err != nil {
		return nil, err
	}

	out := make([]txmodel.UTXO, 0, len(wire))
	for _, w := range wire {
		outpoint, err := txmodel.OutpointFromHex(w.Outpoint.TransactionID, w.Outpoint.Index)
		if err != nil {
			return nil, &hrc20err.NetworkError{Message: fmt.Sprintf("malformed outpoint: %v", err)}
		}
		scriptBytes, err := hexcodec.Decode(w.ScriptPublicKey.ScriptPublicKey)
		if err != nil {
			return nil, &hrc20err.NetworkError{Message: fmt.Sprintf("malformed scriptPublicKey: %v", err)}
		}
		out = append(out, txmodel.UTXO{
			Outpoint: outpoint,
			Amount:   w.Amount,
			ScriptPK: txmodel.ScriptPublicKey{Version: w.ScriptPublicKey.Version, Script: scriptBytes},
			Address:  w.Address,
		})
	}
	return out, nil
}

type balanceWire struct {
	Confirmed uint64 `json:"confirmed"`
	Pending   uint64 `json:"pending"`
}

func (c *HTTPNodeClient) GetBalance(ctx context.Context, address string) (Balance, error) {
	var wire balanceWire
	if err := c.getJSON(ctx, fmt.Sprintf("/addresses/%s/balance", address), &wire); err != nil {
		return Balance{}, err
	}
	return Balance{Confirmed: wire.Confirmed, Pending: wire.Pending}, nil
}

type submitRequest struct {
	Transaction string `json:"transaction"`
}

type submitResponse struct {
	TransactionID string `json:"transactionId"`
}

func (c *HTTPNodeClient) SubmitTransaction(ctx context.Context, tx *txmodel.Transaction) (string, error) {
	body, err := json.Marshal(submitRequest{Transaction: hexcodec.Encode(tx.Serialize())})
	if err != nil {
		return "", &hrc20err.NetworkError{Message: fmt.Sprintf("marshal submit request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		return "", &hrc20err.NetworkError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &hrc20err.NetworkError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &hrc20err.NetworkError{Message: err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &hrc20err.NetworkError{Message: fmt.Sprintf("submit failed: status %d: %s", resp.StatusCode, string(raw))}
	}

	var out submitResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", &hrc20err.NetworkError{Message: fmt.Sprintf("unmarshal submit response: %v", err)}
	}
	return out.TransactionID, nil
}

func (c *HTTPNodeClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &hrc20err.NetworkError{Message: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &hrc20err.NetworkError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &hrc20err.NetworkError{Message: err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		return &hrc20err.NetworkError{Message: fmt.Sprintf("node request failed: status %d: %s", resp.StatusCode, string(raw))}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &hrc20err.NetworkError{Message: fmt.Sprintf("unmarshal response: %v", err)}
	}
	return nil
}
