package domain

// Treatment belongs to exactly one doctor (creator) and one patient
// (subject). Deletion is two-phase: Active → Deactivated, and only while no
// application references it.
type Treatment struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DoctorID    uint   `json:"doctor_id" gorm:"index"`
	PatientID   uint   `json:"patient_id" gorm:"index"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}

// TreatmentApplication records that an assistant applied a treatment. It is
// an immutable creation record: no soft-delete flag, and its existence blocks
// deactivation of the treatment.
type TreatmentApplication struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	TreatmentID uint   `json:"treatment_id" gorm:"index"`
	AssistantID uint   `json:"assistant_id" gorm:"index"`
	Notes       string `json:"notes"`
}
