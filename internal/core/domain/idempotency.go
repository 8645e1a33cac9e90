package domain

import (
	"github.com/google/uuid"
)

// CachedResponse is a stored HTTP result replayed for a repeated Idempotency-Key.
type CachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// BuildIdempotencyKey scopes a client key to the tenant, actor and route.
func BuildIdempotencyKey(companyID, actorID uuid.UUID, route, clientKey string) string {
	return companyID.String() + ":" + actorID.String() + ":" + route + ":" + clientKey
}
