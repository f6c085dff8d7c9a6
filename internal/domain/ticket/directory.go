package ticket

import "context"

// Category is the read-only view of a ticket category supplied by the
// platform's category directory.
type Category struct {
	ID       uint
	Name     string
	IsActive bool
}

// CategoryDirectory answers "does category X exist and is it active".
// Categories are managed elsewhere on the platform; the ticket core only
// references them.
type CategoryDirectory interface {
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	ListActive(ctx context.Context) ([]*Category, error)
}

// AdminProfile is the public view of an admin user supplied by the
// platform's identity provider.
type AdminProfile struct {
	ID        uint
	Name      string
	Email     string
	AvatarURL string
}

// UserProfile is the public view of any member, used when expanding
// message senders and reaction authors.
type UserProfile struct {
	ID        uint
	Name      string
	AvatarURL string
}

// AdminDirectory answers role questions about platform users. The core
// never manages credentials or roles itself.
type AdminDirectory interface {
	// IsActiveSuperAdmin reports whether userID is an active SUPER_ADMIN.
	IsActiveSuperAdmin(ctx context.Context, userID uint) (bool, error)
	ListAvailableAdmins(ctx context.Context) ([]*AdminProfile, error)
	GetUserProfile(ctx context.Context, userID uint) (*UserProfile, error)
}

// Mailer sends the explicit "email me a copy" message. The core never
// auto-notifies on ticket or message changes.
type Mailer interface {
	SendTicketCopy(ctx context.Context, recipientEmail string, t *Ticket, messages []*Message) error
}
