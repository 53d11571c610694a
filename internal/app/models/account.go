package models

import "time"

// Account defines the base identity record shared by every role, based on
// the 'accounts' table.
type Account struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Name        string     `json:"name" db:"name" example:"Amina Haddad"`
	Email       string     `json:"email" db:"email" example:"amina@school.test"`
	Password    string     `json:"-" db:"password"` // hashed, excluded from JSON
	Role        Role       `json:"role" db:"role" example:"teacher"`
	Gender      string     `json:"gender" db:"gender" example:"female"`
	Phone       string     `json:"phone" db:"phone" example:"+212600000000"`
	Address     string     `json:"address" db:"address" example:"12 Rue des Ecoles"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
