package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alumnet/internal/infrastructure/persistence/models"
	"alumnet/internal/shared/constants"
)

// TicketNumberGenerator allocates TKT-YYYY-NNNNNN numbers from a per-year
// counter row. The row is locked for the duration of the bump, so numbers
// stay strictly increasing under concurrent creation, and a new year
// starts a fresh sequence at 1.
type TicketNumberGenerator struct {
	db *gorm.DB
}

func NewTicketNumberGenerator(db *gorm.DB) *TicketNumberGenerator {
	return &TicketNumberGenerator{db: db}
}

func (g *TicketNumberGenerator) Generate(ctx context.Context) (string, error) {
	year := time.Now().Year()
	var next int64

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq models.TicketSequenceModel
		result := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("year = ?", year).
			First(&seq)

		if result.Error != nil {
			if result.Error != gorm.ErrRecordNotFound {
				return fmt.Errorf("failed to load ticket sequence: %w", result.Error)
			}
			seq = models.TicketSequenceModel{Year: year, LastValue: 0}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create ticket sequence: %w", err)
			}
		}

		next = seq.LastValue + 1
		if err := tx.
			Model(&models.TicketSequenceModel{}).
			Where("year = ?", year).
			Update("last_value", next).Error; err != nil {
			return fmt.Errorf("failed to bump ticket sequence: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%d-%06d", constants.TicketNumberPrefix, year, next), nil
}
