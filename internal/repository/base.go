// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gochurch/internal/models"

	"gorm.io/gorm"
)

type txKey struct{}

type afterCommitKey struct{}

// commitHooks collects work deferred until the outermost transaction commits.
type commitHooks struct {
	fns []func()
}

// Transactor runs a unit of work in a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor returns a Transactor backed by db.
func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

// WithinTx begins a transaction and hands fn a context that carries it.
// Repositories called with that context join the transaction. A nested call
// reuses the outer transaction.
func (t *gormTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	hooks := &commitHooks{}
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(context.WithValue(txCtx, afterCommitKey{}, hooks))
	})
	if err != nil {
		return err
	}
	for _, f := range hooks.fns {
		f()
	}
	return nil
}

// afterCommit runs f once the transaction bound to ctx commits, or right away
// when ctx carries none. Hooks of a rolled back transaction are dropped.
func afterCommit(ctx context.Context, f func()) {
	if hooks, ok := ctx.Value(afterCommitKey{}).(*commitHooks); ok {
		hooks.fns = append(hooks.fns, f)
		return
	}
	f()
}

// conn returns the transaction bound to ctx, or db scoped to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// takeByID loads the row with the given primary key into dest and maps a
// missing row to a NOT_FOUND AppError named after resource.
func takeByID(q *gorm.DB, dest any, resource string, id any) error {
	err := q.Where("id = ?", id).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, nil)
	}
	if err != nil {
		return fmt.Errorf("get %s %v: %w", strings.ToLower(resource), id, err)
	}
	return nil
}

// page applies offset/limit. Zero or negative limits leave the query unbounded.
func page(q *gorm.DB, offset, limit int) *gorm.DB {
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q
}
