package domain

// Patient is a clinical record subject, optionally owned by a doctor.
// Soft-deleted via IsActive=false; rows stay retrievable by id.
type Patient struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	DoctorID  *uint  `json:"doctor_id" gorm:"index"`
}

// DisplayName is the patient name used in reports.
func (p Patient) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

// OwnedBy reports whether the patient belongs to the given doctor.
func (p Patient) OwnedBy(doctorID uint) bool {
	return p.DoctorID != nil && *p.DoctorID == doctorID
}
