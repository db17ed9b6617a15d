package entity

import "time"

// Tenant representa la organización dueña de los datos (frontera de aislamiento multi-tenant).
type Tenant struct {
	ID        string
	Name      string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
