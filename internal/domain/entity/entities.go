package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("entity not found")

type Type string

const (
	TypeIncarcerated Type = "INCARCERATED"
	TypeEmployee     Type = "EMPLOYEE"
	TypeLocation     Type = "LOCATION"
)

// Entity is the base row shared by every holder of assets. Variant payloads
// live in their own tables keyed by entity_id; an entity_id is never reused
// across variants.
type Entity struct {
	EntityID   uint64 `gorm:"primaryKey;autoIncrement;column:entity_id" json:"entity_id"`
	EntityType Type   `gorm:"size:16;column:entity_type;not null" json:"entity_type"`
	Enabled    bool   `gorm:"column:enabled;not null;default:true" json:"enabled"`
}

func (Entity) TableName() string { return "entities" }

// User carries the name fields shared by incarcerated and employee rows.
type User struct {
	EntityID   uint64 `gorm:"primaryKey;column:entity_id" json:"entity_id"`
	LastName   string `gorm:"size:80;column:last_name" json:"last_name"`
	FirstName  string `gorm:"size:80;column:first_name" json:"first_name"`
	MiddleName string `gorm:"size:80;column:middle_name" json:"middle_name"`
}

func (User) TableName() string { return "users" }

type Incarcerated struct {
	EntityID    uint64 `gorm:"primaryKey;column:entity_id" json:"entity_id"`
	DOCNumber   string `gorm:"size:12;column:doc_number;uniqueIndex:ux_incarcerated_doc" json:"doc_number"`
	Facility    string `gorm:"size:80;column:facility" json:"facility"`
	HousingUnit string `gorm:"size:16;column:housing_unit" json:"housing_unit"`
	HousingCell string `gorm:"size:16;column:housing_cell" json:"housing_cell"`
}

func (Incarcerated) TableName() string { return "incarcerated" }

type Employee struct {
	EntityID   uint64 `gorm:"primaryKey;column:entity_id" json:"entity_id"`
	EmployeeID string `gorm:"size:32;column:employee_id;uniqueIndex:ux_employees_employee_id" json:"employee_id"`
}

func (Employee) TableName() string { return "employees" }

type Location struct {
	EntityID uint64 `gorm:"primaryKey;column:entity_id" json:"entity_id"`
	Building string `gorm:"size:80;column:building" json:"building"`
	Room     string `gorm:"size:32;column:room" json:"room"`
}

func (Location) TableName() string { return "locations" }

// Record is the resolved view of one entity: the base row plus the variant
// payload matching EntityType. Exactly one variant pointer is set for a
// well-formed row; User accompanies Incarcerated and Employee variants.
type Record struct {
	Entity
	User         *User         `json:"user,omitempty"`
	Incarcerated *Incarcerated `json:"incarcerated,omitempty"`
	Employee     *Employee     `json:"employee,omitempty"`
	Location     *Location     `json:"location,omitempty"`
}

// DisplayName renders the entity the way paperwork and history rows name it.
func (r *Record) DisplayName() string {
	switch {
	case r.User != nil:
		name := fmt.Sprintf("%s, %s %s", r.User.LastName, r.User.FirstName, r.User.MiddleName)
		return strings.TrimSpace(name)
	case r.Location != nil:
		return strings.TrimSpace(fmt.Sprintf("%s %s", r.Location.Building, r.Location.Room))
	default:
		return fmt.Sprintf("entity %d", r.EntityID)
	}
}
