package domain

// Assistant is the profile entity owned 1:1 by a user with RoleAssistant.
type Assistant struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	UserID         uint   `json:"user_id" gorm:"uniqueIndex"`
	Age            int    `json:"age"`
	Specialization string `json:"specialization"`
}

// PatientAssistant links a patient to an assistant and records the doctor
// who made the assignment. The pair lifecycle is Absent → Active → Inactive;
// an inactive assignment is never reactivated.
type PatientAssistant struct {
	ID                 uint `json:"id" gorm:"primaryKey"`
	PatientID          uint `json:"patient_id" gorm:"index"`
	AssistantID        uint `json:"assistant_id" gorm:"index"`
	AssignedByDoctorID uint `json:"assigned_by_doctor_id"`
	IsActive           bool `json:"is_active" gorm:"default:true"`
}
