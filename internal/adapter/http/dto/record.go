package dto

import (
	"time"

	"github.com/dompet/dompet/internal/domain"
)

// RecordResponse represents a financial record in API responses.
type RecordResponse struct {
	ID             int64     `json:"id"`
	Type           string    `json:"type"`
	Amount         string    `json:"amount"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	TelegramChatID string    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RecordFromDomain converts a domain record to response.
func RecordFromDomain(r *domain.Record) *RecordResponse {
	return &RecordResponse{
		ID:             r.ID,
		Type:           string(r.Kind),
		Amount:         r.Amount.StringFixed(2),
		Description:    r.Note,
		Date:           r.OccurredAt,
		TelegramChatID: r.OriginChannel,
		CreatedAt:      r.CreatedAt,
	}
}

// RecordsFromDomain converts domain records to responses. It never returns nil.
func RecordsFromDomain(records []*domain.Record) []*RecordResponse {
	result := make([]*RecordResponse, len(records))
	for i, r := range records {
		result[i] = RecordFromDomain(r)
	}
	return result
}
