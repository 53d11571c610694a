package models

// Cycle is the root of the academic taxonomy.
type Cycle struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Field belongs to a Cycle.
type Field struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	CycleID int64  `json:"cycleId" db:"cycle_id"`

	Cycle *Cycle `json:"cycle,omitempty"`
}

// Specialization belongs to a Field.
type Specialization struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	FieldID int64  `json:"fieldId" db:"field_id"`

	Field *Field `json:"field,omitempty"`
}

// Level belongs to a Specialization.
type Level struct {
	ID               int64  `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	SpecializationID int64  `json:"specializationId" db:"specialization_id"`

	Specialization *Specialization `json:"specialization,omitempty"`
}

// Group belongs to a Level and holds students.
type Group struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	LevelID int64  `json:"levelId" db:"level_id"`

	Level *Level `json:"level,omitempty"`
}

// Subject belongs to a Level and is many-to-many with teachers.
type Subject struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	LevelID int64  `json:"levelId" db:"level_id"`

	Level *Level `json:"level,omitempty"`
}
