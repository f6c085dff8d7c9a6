package usecases

import (
	"context"

	"alumnet/internal/domain/ticket"
	"alumnet/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc         func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc       func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc      func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc  func(ctx context.Context, number string) (*ticket.Ticket, error)
	GetOwnedByIDFunc func(ctx context.Context, ticketID, ownerID uint) (*ticket.Ticket, error)
	ListFunc         func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountStatsFunc   func(ctx context.Context, filter ticket.TicketFilter) (*ticket.TicketStats, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetOwnedByID(ctx context.Context, ticketID, ownerID uint) (*ticket.Ticket, error) {
	if m.GetOwnedByIDFunc != nil {
		return m.GetOwnedByIDFunc(ctx, ticketID, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountStats(ctx context.Context, filter ticket.TicketFilter) (*ticket.TicketStats, error) {
	if m.CountStatsFunc != nil {
		return m.CountStatsFunc(ctx, filter)
	}
	return nil, nil
}

type mockSavedFilterRepository struct {
	SaveFunc         func(ctx context.Context, f *ticket.SavedFilter) error
	UpdateFunc       func(ctx context.Context, f *ticket.SavedFilter) error
	DeleteFunc       func(ctx context.Context, filterID, ownerID uint) error
	GetByIDFunc      func(ctx context.Context, filterID, ownerID uint) (*ticket.SavedFilter, error)
	ListByOwnerFunc  func(ctx context.Context, ownerID uint) ([]*ticket.SavedFilter, error)
	ClearDefaultFunc func(ctx context.Context, ownerID uint) error
}

func (m *mockSavedFilterRepository) Save(ctx context.Context, f *ticket.SavedFilter) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockSavedFilterRepository) Update(ctx context.Context, f *ticket.SavedFilter) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockSavedFilterRepository) Delete(ctx context.Context, filterID, ownerID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, filterID, ownerID)
	}
	return nil
}

func (m *mockSavedFilterRepository) GetByID(ctx context.Context, filterID, ownerID uint) (*ticket.SavedFilter, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, filterID, ownerID)
	}
	return nil, nil
}

func (m *mockSavedFilterRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*ticket.SavedFilter, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockSavedFilterRepository) ClearDefault(ctx context.Context, ownerID uint) error {
	if m.ClearDefaultFunc != nil {
		return m.ClearDefaultFunc(ctx, ownerID)
	}
	return nil
}

type mockAdvancedSearchExecutor struct {
	ExecuteFunc func(ctx context.Context, query AdvancedSearchQuery) (*AdvancedSearchResult, error)
}

func (m *mockAdvancedSearchExecutor) Execute(ctx context.Context, query AdvancedSearchQuery) (*AdvancedSearchResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query)
	}
	return &AdvancedSearchResult{}, nil
}

type mockTransactor struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	FatalFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) Fatal(msg string, args ...any) {
	if m.FatalFunc != nil {
		m.FatalFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
