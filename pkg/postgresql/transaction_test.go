package postgresql_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/stockmarket/notifier/pkg/postgresql"
	mockPg "github.com/stockmarket/notifier/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

func TestWithTx(t *testing.T) {
	testCases := []struct {
		name     string
		fn       func(tx *fakeTx) func(ctx context.Context) error
		assertFn func(t *testing.T, tx *fakeTx, err error)
	}{
		{
			name: "commits on success",
			fn: func(tx *fakeTx) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					got, ok := postgresql.GetTx(ctx)
					require.True(t, ok)
					assert.Same(t, tx, got)
					return nil
				}
			},
			assertFn: func(t *testing.T, tx *fakeTx, err error) {
				require.NoError(t, err)
				assert.True(t, tx.committed)
				assert.False(t, tx.rolledBack)
			},
		},
		{
			name: "rolls back on failure",
			fn: func(*fakeTx) func(ctx context.Context) error {
				return func(context.Context) error { return assert.AnError }
			},
			assertFn: func(t *testing.T, tx *fakeTx, err error) {
				assert.ErrorIs(t, err, assert.AnError)
				assert.False(t, tx.committed)
				assert.True(t, tx.rolledBack)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := mockPg.NewMockPostgreSQLClient(ctrl)
			tx := &fakeTx{}
			db.EXPECT().Begin(gomock.Any()).Return(tx, nil)

			err := postgresql.WithTx(context.Background(), db, tc.fn(tx))
			tc.assertFn(t, tx, err)
		})
	}
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mockPg.NewMockPostgreSQLClient(ctrl)
	tx := &fakeTx{}
	db.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	assert.Panics(t, func() {
		_ = postgresql.WithTx(context.Background(), db, func(context.Context) error {
			panic("migration exploded")
		})
	})
	assert.True(t, tx.rolledBack)
}

func TestGetTx_Empty(t *testing.T) {
	_, ok := postgresql.GetTx(context.Background())
	assert.False(t, ok)
}
