package usecases

import (
	"context"

	"alumnet/internal/domain/shared/events"
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

type mockBulkOperationRepository struct {
	SaveFunc            func(ctx context.Context, op *ticket.BulkOperation) error
	UpdateFunc          func(ctx context.Context, op *ticket.BulkOperation) error
	GetByIDFunc         func(ctx context.Context, operationID uint) (*ticket.BulkOperation, error)
	ListByInitiatorFunc func(ctx context.Context, initiatorID uint, page, pageSize int) ([]*ticket.BulkOperation, int64, error)
}

func (m *mockBulkOperationRepository) Save(ctx context.Context, op *ticket.BulkOperation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, op)
	}
	return nil
}

func (m *mockBulkOperationRepository) Update(ctx context.Context, op *ticket.BulkOperation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, op)
	}
	return nil
}

func (m *mockBulkOperationRepository) GetByID(ctx context.Context, operationID uint) (*ticket.BulkOperation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, operationID)
	}
	return nil, nil
}

func (m *mockBulkOperationRepository) ListByInitiator(ctx context.Context, initiatorID uint, page, pageSize int) ([]*ticket.BulkOperation, int64, error) {
	if m.ListByInitiatorFunc != nil {
		return m.ListByInitiatorFunc(ctx, initiatorID, page, pageSize)
	}
	return nil, 0, nil
}

type mockAdminDirectory struct {
	IsActiveSuperAdminFunc  func(ctx context.Context, userID uint) (bool, error)
	ListAvailableAdminsFunc func(ctx context.Context) ([]*ticket.AdminProfile, error)
	GetUserProfileFunc      func(ctx context.Context, userID uint) (*ticket.UserProfile, error)
}

func (m *mockAdminDirectory) IsActiveSuperAdmin(ctx context.Context, userID uint) (bool, error) {
	if m.IsActiveSuperAdminFunc != nil {
		return m.IsActiveSuperAdminFunc(ctx, userID)
	}
	return false, nil
}

func (m *mockAdminDirectory) ListAvailableAdmins(ctx context.Context) ([]*ticket.AdminProfile, error) {
	if m.ListAvailableAdminsFunc != nil {
		return m.ListAvailableAdminsFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminDirectory) GetUserProfile(ctx context.Context, userID uint) (*ticket.UserProfile, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	return nil, nil
}

type mockCategoryDirectory struct {
	GetByIDFunc    func(ctx context.Context, categoryID uint) (*ticket.Category, error)
	ListActiveFunc func(ctx context.Context) ([]*ticket.Category, error)
}

func (m *mockCategoryDirectory) GetByID(ctx context.Context, categoryID uint) (*ticket.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockCategoryDirectory) ListActive(ctx context.Context) ([]*ticket.Category, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
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
