package testutil

import (
	"context"
	"errors"

	"github.com/alexanderramin/caseflow/internal/db"
)

// ErrForcedFailure is returned by FailingUoW after its countdown hits zero.
var ErrForcedFailure = errors.New("forced unit-of-work failure")

// FailingUoW wraps a real UnitOfWork and fails the Nth transaction.
// Used to verify that multi-write operations roll back cleanly.
type FailingUoW struct {
	Inner     db.UnitOfWork
	FailOnNth int // 1-based; 0 never fails
	calls     int
}

func (f *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	f.calls++
	if f.FailOnNth > 0 && f.calls == f.FailOnNth {
		return f.Inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			if err := fn(ctx, tx); err != nil {
				return err
			}
			return ErrForcedFailure
		})
	}
	return f.Inner.WithinTx(ctx, fn)
}
