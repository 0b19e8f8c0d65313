package models

import "errors"

// EntityType is the kind of a contact.
type EntityType string

const (
	EntityPerson  EntityType = "Pessoa"
	EntityCompany EntityType = "Empresa"
)

// Valid reports whether the entity type is one of the known values.
func (t EntityType) Valid() bool {
	return t == EntityPerson || t == EntityCompany
}

// Entity is a person or company transactions can be linked to.
type Entity struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     EntityType `json:"type"`
	Document string     `json:"document,omitempty"`
}

var (
	ErrEntityNameMissing = errors.New("entities must have a name")
	ErrEntityTypeInvalid = errors.New("the specified entity type is invalid")
)

// Validate checks the entity as submitted by a caller.
func (e Entity) Validate() error {
	if e.Name == "" {
		return ErrEntityNameMissing
	}

	if !e.Type.Valid() {
		return ErrEntityTypeInvalid
	}

	return nil
}
