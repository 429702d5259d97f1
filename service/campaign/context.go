package campaign

import (
	"context"
	"time"
)

// detachedContext keeps the values of its parent (logger, trace span)
// but never gets cancelled and has no deadline
type detachedContext struct {
	parent context.Context
}

func (detachedContext) Deadline() (time.Time, bool) {
	return time.Time{}, false
}

func (detachedContext) Done() <-chan struct{} {
	return nil
}

func (detachedContext) Err() error {
	return nil
}

func (c detachedContext) Value(key interface{}) interface{} {
	return c.parent.Value(key)
}

// detach is used for every contract call: a started call is never cancelled
// by its caller, the contract client owns the timeout
func detach(ctx context.Context) context.Context {
	if _, ok := ctx.(detachedContext); ok {
		return ctx
	}
	return detachedContext{parent: ctx}
}
