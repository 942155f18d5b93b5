package model

import "github.com/google/uuid"

// BaseModel carries the server-assigned identifier shared by every entity.
type BaseModel struct {
	ID uuid.UUID `json:"id"`
}

// GetID returns the entity identifier.
func (base BaseModel) GetID() uuid.UUID {
	return base.ID
}

// SetID is called by the store when the entity is first inserted.
func (base *BaseModel) SetID(id uuid.UUID) {
	base.ID = id
}
