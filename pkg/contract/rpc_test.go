package contract

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newContext() context.Context {
	return context.Background()
}

type rpcServerTest struct {
	server   *httptest.Server
	requests []rpcRequest
	response string
	status   int
}

func newRPCServerTest(t *testing.T) *rpcServerTest {
	s := &rpcServerTest{status: http.StatusOK}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, nil, err)
		s.requests = append(s.requests, req)

		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.response))
	}))
	t.Cleanup(s.server.Close)
	return s
}

func (s *rpcServerTest) newClient(options ...RPCOption) *RPCClient {
	return NewRPCClient(s.server.URL, "0xcontract", zap.NewNop(), options...)
}

func TestRPCClient_Call__Keeps_Big_Numbers_Exact(t *testing.T) {
	s := newRPCServerTest(t)
	s.response = `{"jsonrpc":"2.0","id":1,"result":["0xowner", 123456789012345678901234567890]}`

	c := s.newClient()
	result, err := c.Call(newContext(), MethodCampaigns, 3)
	assert.Equal(t, nil, err)

	tuple, err := ToSlice(result)
	assert.Equal(t, nil, err)
	assert.Equal(t, "0xowner", tuple[0])

	n, err := ToBigInt(tuple[1])
	assert.Equal(t, nil, err)
	assert.Equal(t, "123456789012345678901234567890", n.String())

	assert.Equal(t, 1, len(s.requests))
	assert.Equal(t, "2.0", s.requests[0].JSONRPC)
	assert.Equal(t, rpcMethodCall, s.requests[0].Method)
	assert.Equal(t, "0xcontract", s.requests[0].Params[0].Contract)
	assert.Equal(t, MethodCampaigns, s.requests[0].Params[0].Method)
	assert.Equal(t, []interface{}{float64(3)}, s.requests[0].Params[0].Args)
}

func TestRPCClient_Call__RPC_Error(t *testing.T) {
	s := newRPCServerTest(t)
	s.response = `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"execution reverted"}}`

	c := s.newClient()
	_, err := c.Call(newContext(), MethodNumberOfCampaigns)
	assert.Equal(t, &RPCError{Code: -32000, Message: "execution reverted"}, err)
}

func TestRPCClient_Call__HTTP_Error(t *testing.T) {
	s := newRPCServerTest(t)
	s.status = http.StatusBadGateway

	c := s.newClient()
	_, err := c.Call(newContext(), MethodNumberOfCampaigns)
	assert.Error(t, err)
}

func TestRPCClient_Transact(t *testing.T) {
	s := newRPCServerTest(t)
	s.response = `{"jsonrpc":"2.0","id":1,"result":{"txHash":"0xabc"}}`

	c := s.newClient(WithFrom("0xadmin"))
	receipt, err := c.Transact(newContext(), Tx{
		Method: MethodDonateToCampaign,
		Args:   []interface{}{"4"},
		Value:  big.NewInt(1000),
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, Receipt{TxHash: "0xabc"}, receipt)

	assert.Equal(t, 1, len(s.requests))
	params := s.requests[0].Params[0]
	assert.Equal(t, rpcMethodTransact, s.requests[0].Method)
	assert.Equal(t, MethodDonateToCampaign, params.Method)
	assert.Equal(t, "1000", params.Value)
	assert.Equal(t, "0xadmin", params.From)
	assert.Equal(t, []interface{}{"4"}, params.Args)
}

func TestNormalizeArgs(t *testing.T) {
	args := normalizeArgs([]interface{}{big.NewInt(10), "x", 5})
	assert.Equal(t, []interface{}{"10", "x", 5}, args)
}
