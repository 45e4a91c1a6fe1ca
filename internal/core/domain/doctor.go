package domain

// Doctor is the profile entity owned 1:1 by a user with RoleDoctor.
type Doctor struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	UserID         uint   `json:"user_id" gorm:"uniqueIndex"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience"`
}
