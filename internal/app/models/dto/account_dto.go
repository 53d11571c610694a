package dto

// AccountCreate holds the account-level fields shared by every
// create-profile request. DateOfBirth uses the 2006-01-02 form.
type AccountCreate struct {
	Name        string `json:"name" binding:"required,max=255" example:"Amina Haddad"`
	Email       string `json:"email" binding:"required,email,max=255" example:"amina@school.test"`
	Password    string `json:"password" binding:"required,min=6" example:"secret123"`
	Gender      string `json:"gender" binding:"required,oneof=male female" example:"female"`
	Phone       string `json:"phone" binding:"required,max=20" example:"+212600000000"`
	Address     string `json:"address" binding:"required,max=255" example:"12 Rue des Ecoles"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02" example:"1998-05-14"`
}

// AccountUpdate holds the optional account-level fields of a partial update.
// Nil pointers mean "keep the stored value".
type AccountUpdate struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	Password    *string `json:"password,omitempty" binding:"omitempty,min=6"`
	Gender      *string `json:"gender,omitempty" binding:"omitempty,oneof=male female"`
	Phone       *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Address     *string `json:"address,omitempty" binding:"omitempty,max=255"`
	DateOfBirth *string `json:"dateOfBirth,omitempty" binding:"omitempty,datetime=2006-01-02"`
}
