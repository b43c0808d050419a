package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "calculations.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func compute(t *testing.T, in domain.Input) domain.Result {
	t.Helper()
	res, err := calculation.NewEngine().Calculate(in)
	require.NoError(t, err)
	return res
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := domain.WithdrawalsInput{
		InitialBalance:    decimal.NewFromInt(12000),
		MonthlyWithdrawal: decimal.NewFromInt(1100),
		AnnualRate:        decimal.Zero,
		Years:             1,
	}
	res := compute(t, in)

	rec, err := s.Save(ctx, "drawdown", in, res)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, domain.KindWithdrawals, rec.Kind)

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "drawdown", got.Name)
	assert.True(t, got.Timestamp.Equal(rec.Timestamp))

	w, ok := got.Result.(domain.WithdrawalsResult)
	require.True(t, ok, "decoded %T", got.Result)
	assert.True(t, w.Depleted)
	assert.Equal(t, 11, w.MonthsUntilDepletion)
	assert.NotEmpty(t, w.Trajectory)

	gotIn := got.Inputs.(domain.WithdrawalsInput)
	assert.True(t, gotIn.MonthlyWithdrawal.Equal(decimal.NewFromInt(1100)))
}

func TestSQLiteStore_DefaultNameAndKindMismatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in, err := domain.DefaultInput(domain.KindSIP)
	require.NoError(t, err)
	rec, err := s.Save(ctx, "", in, compute(t, in))
	require.NoError(t, err)
	assert.Equal(t, "SIP", rec.Name)

	_, err = s.Save(ctx, "mixed", in, domain.BasicFVResult{})
	assert.Error(t, err)

	_, err = s.Save(ctx, "empty", nil, nil)
	assert.Error(t, err)
}

func TestSQLiteStore_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	names := []string{"first", "second", "third"}
	for i, name := range names {
		at := base.Add(time.Duration(i) * time.Hour)
		s.now = func() time.Time { return at }

		in, err := domain.DefaultInput(domain.KindBasicFV)
		require.NoError(t, err)
		_, err = s.Save(ctx, name, in, compute(t, in))
		require.NoError(t, err)
	}

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[0].Name)
	assert.Equal(t, "first", records[2].Name)
	assert.True(t, records[0].Timestamp.Equal(base.Add(2*time.Hour)))
}

func TestSQLiteStore_DeleteAndClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in, err := domain.DefaultInput(domain.KindHomeValue)
	require.NoError(t, err)
	res := compute(t, in)

	a, err := s.Save(ctx, "a", in, res)
	require.NoError(t, err)
	_, err = s.Save(ctx, "b", in, res)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, a.ID))
	_, err = s.Get(ctx, a.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.ErrorIs(t, s.Delete(ctx, a.ID), ErrNotFound)

	require.NoError(t, s.Clear(ctx))
	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteStore_ReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calculations.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	in, err := domain.DefaultInput(domain.KindRetirement)
	require.NoError(t, err)
	rec, err := s.Save(ctx, "plan", in, compute(t, in))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	r := got.Result.(domain.RetirementResult)
	assert.Equal(t, rec.Result.(domain.RetirementResult).FutureValue.String(), r.FutureValue.String())
}
