package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionTransactionCreated  AuditAction = "CASH_TX_CREATED"
	AuditActionTransactionApproved AuditAction = "CASH_TX_APPROVED"
	AuditActionTransactionUpdated  AuditAction = "CASH_TX_DRAFT_UPDATED"
	AuditActionHandoverCreated     AuditAction = "HANDOVER_CREATED"
	AuditActionHandoverApproved    AuditAction = "HANDOVER_APPROVED"
)

// AuditEvent records a single ledger action.
type AuditEvent struct {
	ID           uuid.UUID   `json:"id"`
	CompanyID    uuid.UUID   `json:"company_id"`
	ActorUserID  uuid.UUID   `json:"actor_user_id"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id"`
	Details      string      `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time   `json:"created_at"`
}

// NewAuditEvent stamps an event with a fresh id.
func NewAuditEvent(companyID, actor uuid.UUID, action AuditAction, resourceType, resourceID string, now time.Time) *AuditEvent {
	return &AuditEvent{
		ID:           uuid.New(),
		CompanyID:    companyID,
		ActorUserID:  actor,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		CreatedAt:    now,
	}
}
