package ticket

import (
	"fmt"
	"time"
)

// FilterConfig is the serializable search predicate a saved filter stores.
// All fields are optional; empty means "no constraint".
type FilterConfig struct {
	Status     string `json:"status,omitempty"`
	Priority   string `json:"priority,omitempty"`
	CategoryID uint   `json:"category_id,omitempty"`
	AssigneeID uint   `json:"assignee_id,omitempty"`
	Search     string `json:"search,omitempty"`
	DateFrom   string `json:"date_from,omitempty"`
	DateTo     string `json:"date_to,omitempty"`
}

// SavedFilter persists a named, reusable search predicate per user with an
// optional default flag.
type SavedFilter struct {
	id        uint
	ownerID   uint
	name      string
	config    FilterConfig
	isDefault bool
	createdAt time.Time
	updatedAt time.Time
}

func NewSavedFilter(ownerID uint, name string, config FilterConfig, isDefault bool) (*SavedFilter, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("filter name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("filter name exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &SavedFilter{
		ownerID:   ownerID,
		name:      name,
		config:    config,
		isDefault: isDefault,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSavedFilter(
	id uint,
	ownerID uint,
	name string,
	config FilterConfig,
	isDefault bool,
	createdAt, updatedAt time.Time,
) (*SavedFilter, error) {
	if id == 0 {
		return nil, fmt.Errorf("saved filter ID cannot be zero")
	}

	return &SavedFilter{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		config:    config,
		isDefault: isDefault,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (f *SavedFilter) ID() uint             { return f.id }
func (f *SavedFilter) OwnerID() uint        { return f.ownerID }
func (f *SavedFilter) Name() string         { return f.name }
func (f *SavedFilter) Config() FilterConfig { return f.config }
func (f *SavedFilter) IsDefault() bool      { return f.isDefault }
func (f *SavedFilter) CreatedAt() time.Time { return f.createdAt }
func (f *SavedFilter) UpdatedAt() time.Time { return f.updatedAt }

func (f *SavedFilter) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("saved filter ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("saved filter ID cannot be zero")
	}
	f.id = id
	return nil
}

// Update replaces name, config, and default flag.
func (f *SavedFilter) Update(name string, config FilterConfig, isDefault bool) error {
	if len(name) == 0 {
		return fmt.Errorf("filter name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("filter name exceeds maximum length of 100 characters")
	}

	f.name = name
	f.config = config
	f.isDefault = isDefault
	f.updatedAt = time.Now()
	return nil
}
