package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/QuangTung97/crowdfund-admin/pkg/otellib"
	"github.com/QuangTung97/crowdfund-admin/service/campaign"
	"github.com/QuangTung97/crowdfund-admin/service/identity"
	"github.com/QuangTung97/crowdfund-admin/service/moderation"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

var errBadRequest = errors.New("bad request")

func badRequest(msg string) error {
	return fmt.Errorf("%w: %s", errBadRequest, msg)
}

// stateError carries the state of a request-owned controller
type stateError struct {
	err   error
	state moderation.State
}

func withState(err error, state moderation.State) error {
	return &stateError{err: err, state: state}
}

func (e *stateError) Error() string {
	return e.err.Error()
}

func (e *stateError) Unwrap() error {
	return e.err
}

// statusCode maps domain errors to http status codes, anything else is a contract failure
func statusCode(err error) int {
	switch {
	case errors.Is(err, identity.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, identity.ErrForbidden), errors.Is(err, moderation.ErrNotModerator):
		return http.StatusForbidden
	case errors.Is(err, errBadRequest), errors.Is(err, campaign.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, campaign.ErrCampaignNotFound):
		return http.StatusNotFound
	case errors.Is(err, moderation.ErrRefreshInFlight):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error, state *moderation.State) {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		otellib.Extract(ctx).Error("request failed", zap.Error(err))
	}

	msg := err.Error()
	if state != nil && state.Kind == moderation.StateError {
		msg = state.Message
	}
	writeJSON(ctx, w, code, errorResponse{
		Error: msg,
		State: state,
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		otellib.Extract(ctx).Warn("write response", zap.Error(err))
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return badRequest(fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}
