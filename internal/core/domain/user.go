package domain

// User models an authenticated actor in the system. "Deleting" a dependent
// profile only flips IsActive; user rows are never removed.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name"`
	Role         Role   `json:"role" gorm:"type:varchar(32);index"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}
