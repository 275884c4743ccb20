package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID          int64           `gorm:"primaryKey;autoIncrement:false"`
	Slug        string          `gorm:"size:160;not null;uniqueIndex"`
	Name        string          `gorm:"size:120;not null;index"`
	Description *string         `gorm:"size:1000"`
	Price       decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (Item) TableName() string {
	return "items"
}
