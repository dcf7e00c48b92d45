package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/apnidukan/dukan/internal/model"
)

// SaveDailyAccount upserts the aggregate record for a calendar date. If a
// record for the date exists it is overwritten in place, keeping its id;
// otherwise a fresh record is prepended. TotalExpense and Profit are always
// recomputed here so callers cannot persist a stale aggregate.
func (s *Store) SaveDailyAccount(ctx context.Context, date string, expenses []model.ExpenseEntry, totalSale decimal.Decimal) (model.DailyAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveDailyAccount(ctx, date, expenses, totalSale)
}

// saveDailyAccount is the upsert body. Caller holds s.mu.
func (s *Store) saveDailyAccount(ctx context.Context, date string, expenses []model.ExpenseEntry, totalSale decimal.Decimal) (model.DailyAccount, error) {
	if expenses == nil {
		expenses = []model.ExpenseEntry{}
	}
	account := model.DailyAccount{
		Date:      date,
		Expenses:  expenses,
		TotalSale: totalSale,
	}
	account.Recompute()

	accounts := getDoc[[]model.DailyAccount](ctx, s, keyAccounts)
	for i := range accounts {
		if accounts[i].Date == date {
			account.ID = accounts[i].ID
			accounts[i] = account
			if err := setDoc(ctx, s, keyAccounts, accounts); err != nil {
				return model.DailyAccount{}, err
			}
			return account, nil
		}
	}

	account.ID = newID()
	accounts = append([]model.DailyAccount{account}, accounts...)
	if err := setDoc(ctx, s, keyAccounts, accounts); err != nil {
		return model.DailyAccount{}, err
	}
	return account, nil
}

// AddExpense appends one expense entry to the date's account, creating the
// account if this is the first entry for that date.
func (s *Store) AddExpense(ctx context.Context, date, description string, amount decimal.Decimal) (model.DailyAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.dailyAccount(ctx, date)
	expenses := append(existing.Expenses, model.ExpenseEntry{
		Description: description,
		Amount:      amount,
	})
	return s.saveDailyAccount(ctx, date, expenses, existing.TotalSale)
}

// SetDailySale records the date's total sale figure, creating the account if
// needed.
func (s *Store) SetDailySale(ctx context.Context, date string, totalSale decimal.Decimal) (model.DailyAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.dailyAccount(ctx, date)
	return s.saveDailyAccount(ctx, date, existing.Expenses, totalSale)
}

// ListDailyAccounts returns every account, most recent save first.
func (s *Store) ListDailyAccounts(ctx context.Context) []model.DailyAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := getDoc[[]model.DailyAccount](ctx, s, keyAccounts)
	if accounts == nil {
		accounts = []model.DailyAccount{}
	}
	return accounts
}

// GetDailyAccount returns the record for a date, or ErrNotFound.
func (s *Store) GetDailyAccount(ctx context.Context, date string) (model.DailyAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range getDoc[[]model.DailyAccount](ctx, s, keyAccounts) {
		if a.Date == date {
			return a, nil
		}
	}
	return model.DailyAccount{}, fmt.Errorf("daily account %s: %w", date, ErrNotFound)
}

// dailyAccount returns the date's record or an empty one. Caller holds s.mu.
func (s *Store) dailyAccount(ctx context.Context, date string) model.DailyAccount {
	for _, a := range getDoc[[]model.DailyAccount](ctx, s, keyAccounts) {
		if a.Date == date {
			return a
		}
	}
	return model.DailyAccount{Date: date, Expenses: []model.ExpenseEntry{}}
}
