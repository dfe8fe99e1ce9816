package postgres

import (
	"context"

	"gorm.io/gorm"
)

type contextTxKey struct{}

// Transactor runs a function inside one gorm transaction. Repositories
// called with the ctx handed to fn join that transaction.
type Transactor struct {
	DB *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{
		DB: db,
	}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(contextTxKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return t.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, contextTxKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or db when there is none.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(contextTxKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}

	return db.WithContext(ctx)
}
