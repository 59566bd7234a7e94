package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	LedgerKindInflow  = "inflow"
	LedgerKindExpense = "expense"

	MaxTagsPerTransaction = 10
	MaxTagLength          = 50
	MaxDescriptionLength  = 500
)

var (
	ErrInvalidLedgerKind  = errors.New("invalid ledger kind")
	ErrInvalidAmount      = errors.New("transaction amount must be positive")
	ErrTooManyTags        = errors.New("too many tags on transaction")
	ErrTagTooLong         = errors.New("tag exceeds maximum length")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
)

// Transaction is a single ledger entry. The ledger kind determines the sign
// contribution during aggregation; the stored amount is always a positive
// magnitude.
type Transaction struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"owner_id"`
	Kind        string           `gorm:"type:varchar(20);not null;index" json:"kind"`
	Amount      decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string           `gorm:"type:text" json:"description,omitempty"`
	Tags        []TransactionTag `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"tags"`
	CreatedAt   time.Time        `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// TransactionTag is one tag attached to a transaction. Tags are flattened
// into their own rows so filters and statistics can address them directly.
type TransactionTag struct {
	TransactionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Tag           string    `gorm:"type:varchar(50);primaryKey;index" json:"tag"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	// Child tag rows inherit the generated id.
	for i := range t.Tags {
		t.Tags[i].TransactionID = t.ID
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if !IsValidLedgerKind(t.Kind) {
		return ErrInvalidLedgerKind
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if len(t.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if len(t.Tags) > MaxTagsPerTransaction {
		return ErrTooManyTags
	}

	for _, tag := range t.Tags {
		if len(tag.Tag) > MaxTagLength {
			return ErrTagTooLong
		}
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// TableName returns the table name for TransactionTag
func (tt *TransactionTag) TableName() string {
	return "transaction_tags"
}

// TagNames returns the transaction's tags as a plain string slice.
func (t *Transaction) TagNames() []string {
	names := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		names = append(names, tag.Tag)
	}
	return names
}

// SetTags replaces the transaction's tags with the normalized, de-duplicated
// forms of the given names. Empty names are dropped.
func (t *Transaction) SetTags(names []string) {
	seen := make(map[string]bool, len(names))
	tags := make([]TransactionTag, 0, len(names))

	for _, name := range names {
		normalized := NormalizeTag(name)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		tags = append(tags, TransactionTag{TransactionID: t.ID, Tag: normalized})
	}

	t.Tags = tags
}

// HasTag reports whether the transaction carries the given tag.
// The comparison uses the normalized tag form.
func (t *Transaction) HasTag(tag string) bool {
	normalized := NormalizeTag(tag)
	for _, tt := range t.Tags {
		if tt.Tag == normalized {
			return true
		}
	}
	return false
}

// SignedAmount returns the amount with the sign implied by the ledger kind.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == LedgerKindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Period returns the (year, month) bucket the transaction falls into,
// derived from its creation timestamp.
func (t *Transaction) Period() PeriodKey {
	return PeriodKey{Year: t.CreatedAt.Year(), Month: int(t.CreatedAt.Month())}
}

// IsValidLedgerKind checks if the ledger kind is valid
func IsValidLedgerKind(kind string) bool {
	switch kind {
	case LedgerKindInflow, LedgerKindExpense:
		return true
	default:
		return false
	}
}

// NormalizeTag lowercases and trims a tag name. Matching and storage always
// operate on the normalized form.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
