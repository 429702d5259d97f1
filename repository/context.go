package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type ctxKey int

const (
	txKey ctxKey = iota + 1
	readonlyKey
)

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

func txFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*sqlx.Tx)
	return tx, ok
}

// GetTx returns the Transaction started by Provider.Transact, panics outside of it
func GetTx(ctx context.Context) Transaction {
	tx, ok := txFromContext(ctx)
	if !ok {
		panic("transaction not found in context")
	}
	return tx
}

// GetReadonly returns the handle set by Provider.Readonly.
// Inside Provider.Transact the current transaction is used instead
func GetReadonly(ctx context.Context) Readonly {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	db, ok := ctx.Value(readonlyKey).(*sqlx.DB)
	if !ok {
		panic("readonly handle not found in context")
	}
	return db
}
