package usecases

import (
	"context"
	"time"

	"alumnet/internal/application/ticket/dto"
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

type mockMessageRepository struct {
	SaveFunc                  func(ctx context.Context, msg *ticket.Message) error
	UpdateFunc                func(ctx context.Context, msg *ticket.Message) error
	GetByIDFunc               func(ctx context.Context, messageID uint) (*ticket.Message, error)
	GetByTicketIDFunc         func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
	MarkAdminMessagesReadFunc func(ctx context.Context, ticketID uint, at time.Time) error
	SaveEditFunc              func(ctx context.Context, edit *ticket.MessageEdit) error
	GetEditsByMessageIDFunc   func(ctx context.Context, messageID uint) ([]*ticket.MessageEdit, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *ticket.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) Update(ctx context.Context, msg *ticket.Message) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) GetByID(ctx context.Context, messageID uint) (*ticket.Message, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, messageID)
	}
	return nil, nil
}

func (m *mockMessageRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockMessageRepository) MarkAdminMessagesRead(ctx context.Context, ticketID uint, at time.Time) error {
	if m.MarkAdminMessagesReadFunc != nil {
		return m.MarkAdminMessagesReadFunc(ctx, ticketID, at)
	}
	return nil
}

func (m *mockMessageRepository) SaveEdit(ctx context.Context, edit *ticket.MessageEdit) error {
	if m.SaveEditFunc != nil {
		return m.SaveEditFunc(ctx, edit)
	}
	return nil
}

func (m *mockMessageRepository) GetEditsByMessageID(ctx context.Context, messageID uint) ([]*ticket.MessageEdit, error) {
	if m.GetEditsByMessageIDFunc != nil {
		return m.GetEditsByMessageIDFunc(ctx, messageID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc           func(ctx context.Context, a *ticket.Attachment) error
	GetByTicketIDFunc  func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	GetByMessageIDFunc func(ctx context.Context, messageID uint) ([]*ticket.Attachment, error)
	SaveMetadataFunc   func(ctx context.Context, meta *ticket.FileMetadata) error
	GetMetadataFunc    func(ctx context.Context, attachmentID uint) (*ticket.FileMetadata, error)
	TouchDownloadFunc  func(ctx context.Context, attachmentID uint, at time.Time) error
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByMessageID(ctx context.Context, messageID uint) ([]*ticket.Attachment, error) {
	if m.GetByMessageIDFunc != nil {
		return m.GetByMessageIDFunc(ctx, messageID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) SaveMetadata(ctx context.Context, meta *ticket.FileMetadata) error {
	if m.SaveMetadataFunc != nil {
		return m.SaveMetadataFunc(ctx, meta)
	}
	return nil
}

func (m *mockAttachmentRepository) GetMetadata(ctx context.Context, attachmentID uint) (*ticket.FileMetadata, error) {
	if m.GetMetadataFunc != nil {
		return m.GetMetadataFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) TouchDownload(ctx context.Context, attachmentID uint, at time.Time) error {
	if m.TouchDownloadFunc != nil {
		return m.TouchDownloadFunc(ctx, attachmentID, at)
	}
	return nil
}

type mockAuditLogRepository struct {
	SaveFunc          func(ctx context.Context, e *ticket.AuditEntry) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint, page, pageSize int) ([]*ticket.AuditEntry, int64, error)
}

func (m *mockAuditLogRepository) Save(ctx context.Context, e *ticket.AuditEntry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockAuditLogRepository) GetByTicketID(ctx context.Context, ticketID uint, page, pageSize int) ([]*ticket.AuditEntry, int64, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID, page, pageSize)
	}
	return nil, 0, nil
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

type mockMailer struct {
	SendTicketCopyFunc func(ctx context.Context, recipientEmail string, t *ticket.Ticket, messages []*ticket.Message) error
}

func (m *mockMailer) SendTicketCopy(ctx context.Context, recipientEmail string, t *ticket.Ticket, messages []*ticket.Message) error {
	if m.SendTicketCopyFunc != nil {
		return m.SendTicketCopyFunc(ctx, recipientEmail, t, messages)
	}
	return nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "TKT-2026-000001", nil
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

// mockTransactor runs the callback directly so use case tests exercise
// the transactional body without a database.
type mockTransactor struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockTicketCache struct {
	GetDetailFunc          func(ctx context.Context, ticketID uint, adminView bool) (*dto.TicketDetailDTO, error)
	SetDetailFunc          func(ctx context.Context, ticketID uint, adminView bool, detail *dto.TicketDetailDTO) error
	GetListFunc            func(ctx context.Context, scopeKey, filterHash string) (*CachedTicketList, error)
	SetListFunc            func(ctx context.Context, scopeKey, filterHash string, list *CachedTicketList, adminScope bool) error
	GetStatsFunc           func(ctx context.Context, scopeKey string) (*dto.TicketStatsDTO, error)
	SetStatsFunc           func(ctx context.Context, scopeKey string, stats *dto.TicketStatsDTO) error
	GetCategoriesFunc      func(ctx context.Context) ([]dto.CategoryDTO, error)
	SetCategoriesFunc      func(ctx context.Context, categories []dto.CategoryDTO) error
	GetAvailableAdminsFunc func(ctx context.Context) ([]dto.AdminDTO, error)
	SetAvailableAdminsFunc func(ctx context.Context, admins []dto.AdminDTO) error
}

func (m *mockTicketCache) GetDetail(ctx context.Context, ticketID uint, adminView bool) (*dto.TicketDetailDTO, error) {
	if m.GetDetailFunc != nil {
		return m.GetDetailFunc(ctx, ticketID, adminView)
	}
	return nil, nil
}

func (m *mockTicketCache) SetDetail(ctx context.Context, ticketID uint, adminView bool, detail *dto.TicketDetailDTO) error {
	if m.SetDetailFunc != nil {
		return m.SetDetailFunc(ctx, ticketID, adminView, detail)
	}
	return nil
}

func (m *mockTicketCache) GetList(ctx context.Context, scopeKey, filterHash string) (*CachedTicketList, error) {
	if m.GetListFunc != nil {
		return m.GetListFunc(ctx, scopeKey, filterHash)
	}
	return nil, nil
}

func (m *mockTicketCache) SetList(ctx context.Context, scopeKey, filterHash string, list *CachedTicketList, adminScope bool) error {
	if m.SetListFunc != nil {
		return m.SetListFunc(ctx, scopeKey, filterHash, list, adminScope)
	}
	return nil
}

func (m *mockTicketCache) GetStats(ctx context.Context, scopeKey string) (*dto.TicketStatsDTO, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, scopeKey)
	}
	return nil, nil
}

func (m *mockTicketCache) SetStats(ctx context.Context, scopeKey string, stats *dto.TicketStatsDTO) error {
	if m.SetStatsFunc != nil {
		return m.SetStatsFunc(ctx, scopeKey, stats)
	}
	return nil
}

func (m *mockTicketCache) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketCache) SetCategories(ctx context.Context, categories []dto.CategoryDTO) error {
	if m.SetCategoriesFunc != nil {
		return m.SetCategoriesFunc(ctx, categories)
	}
	return nil
}

func (m *mockTicketCache) GetAvailableAdmins(ctx context.Context) ([]dto.AdminDTO, error) {
	if m.GetAvailableAdminsFunc != nil {
		return m.GetAvailableAdminsFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketCache) SetAvailableAdmins(ctx context.Context, admins []dto.AdminDTO) error {
	if m.SetAvailableAdminsFunc != nil {
		return m.SetAvailableAdminsFunc(ctx, admins)
	}
	return nil
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
