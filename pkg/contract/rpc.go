package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	rpcMethodCall     = "contract_call"
	rpcMethodTransact = "contract_transact"
)

// RPCError is an error object returned by the JSON-RPC endpoint
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("contract rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      uint64      `json:"id"`
	Method  string      `json:"method"`
	Params  []rpcParams `json:"params"`
}

type rpcParams struct {
	Contract string        `json:"contract"`
	Method   string        `json:"method"`
	Args     []interface{} `json:"args"`
	Value    string        `json:"value,omitempty"`
	From     string        `json:"from,omitempty"`
}

type rpcResponse struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

type rpcTxResult struct {
	TxHash string `json:"txHash"`
}

type rpcOptions struct {
	timeout    time.Duration
	from       string
	httpClient *http.Client
}

func defaultRPCOptions() rpcOptions {
	return rpcOptions{
		timeout: 30 * time.Second,
	}
}

// RPCOption ...
type RPCOption func(opts *rpcOptions)

// WithTimeout bounds every contract call, reads and writes alike
func WithTimeout(d time.Duration) RPCOption {
	return func(opts *rpcOptions) {
		opts.timeout = d
	}
}

// WithFrom sets the sender account used for transacting calls
func WithFrom(from string) RPCOption {
	return func(opts *rpcOptions) {
		opts.from = from
	}
}

// WithHTTPClient ...
func WithHTTPClient(client *http.Client) RPCOption {
	return func(opts *rpcOptions) {
		opts.httpClient = client
	}
}

// RPCClient talks to a JSON-RPC contract gateway over HTTP
type RPCClient struct {
	endpoint string
	address  string
	opts     rpcOptions
	client   *http.Client
	logger   *zap.Logger

	nextID uint64
}

var _ Client = &RPCClient{}

// NewRPCClient ...
func NewRPCClient(endpoint string, address string, logger *zap.Logger, options ...RPCOption) *RPCClient {
	opts := defaultRPCOptions()
	for _, fn := range options {
		fn(&opts)
	}

	client := opts.httpClient
	if client == nil {
		client = &http.Client{Timeout: opts.timeout}
	}

	return &RPCClient{
		endpoint: endpoint,
		address:  address,
		opts:     opts,
		client:   client,
		logger:   logger,
	}
}

// Call ...
func (c *RPCClient) Call(ctx context.Context, method string, args ...interface{}) (RawValue, error) {
	raw, err := c.do(ctx, rpcMethodCall, rpcParams{
		Contract: c.address,
		Method:   method,
		Args:     normalizeArgs(args),
	})
	if err != nil {
		return nil, err
	}

	var result interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("decode result of %s: %w", method, err)
	}
	return result, nil
}

// Transact ...
func (c *RPCClient) Transact(ctx context.Context, tx Tx) (Receipt, error) {
	params := rpcParams{
		Contract: c.address,
		Method:   tx.Method,
		Args:     normalizeArgs(tx.Args),
		From:     c.opts.from,
	}
	if tx.Value != nil {
		params.Value = tx.Value.String()
	}

	raw, err := c.do(ctx, rpcMethodTransact, params)
	if err != nil {
		return Receipt{}, err
	}

	var result rpcTxResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return Receipt{}, fmt.Errorf("decode receipt of %s: %w", tx.Method, err)
	}

	c.logger.Info("contract transaction settled",
		zap.String("method", tx.Method),
		zap.String("tx_hash", result.TxHash),
	)
	return Receipt{TxHash: result.TxHash}, nil
}

func (c *RPCClient) do(ctx context.Context, method string, params rpcParams) (json.RawMessage, error) {
	id := atomic.AddUint64(&c.nextID, 1)

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  []rpcParams{params},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contract %s %s: %w", method, params.Method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("contract rpc",
		zap.String("rpc_method", method),
		zap.String("method", params.Method),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contract %s %s: unexpected http status %d", method, params.Method, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		return nil, fmt.Errorf("decode rpc response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}
	return rpcResp.Result, nil
}

// big integers are sent as decimal strings to keep precision on the wire
func normalizeArgs(args []interface{}) []interface{} {
	result := make([]interface{}, 0, len(args))
	for _, a := range args {
		if s, ok := a.(fmt.Stringer); ok {
			result = append(result, s.String())
			continue
		}
		result = append(result, a)
	}
	return result
}
