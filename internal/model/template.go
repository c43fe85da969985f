package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomTemplate represents a reusable room preset: dimensions, fixture
// counts, and paint toggles for a room shape the contractor measures
// often (standard bedroom, hall bath, and so on).
type RoomTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Room        Room   `json:"room"`
}

// NewRoomTemplate creates a template from an existing room. The stored
// room keeps its measurements and toggles but drops its identity.
func NewRoomTemplate(name, description string, room Room) RoomTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	room.ID = ""
	room.Name = ""
	return RoomTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Room:        room,
	}
}

// ToRoom instantiates the template as a fresh room with its own ID.
func (t RoomTemplate) ToRoom(roomName string) Room {
	room := t.Room
	room.ID = uuid.New().String()[:8]
	room.Name = roomName
	return room
}

// TemplateStore holds a collection of room templates.
type TemplateStore struct {
	Templates []RoomTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []RoomTemplate{}}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t RoomTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) Find(id string) *RoomTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}
