package models

import "time"

// Gender values accepted on a patient record.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Appointment types and statuses.
const (
	AppointmentConsultation = "consultation"
	AppointmentFollowUp     = "follow-up"
	AppointmentEmergency    = "emergency"
	AppointmentSurgery      = "surgery"

	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no-show"
)

// EHR record types.
const (
	EHRDiagnosis    = "diagnosis"
	EHRTreatment    = "treatment"
	EHRTestResult   = "test-result"
	EHRPrescription = "prescription"
)

// Inventory categories.
const (
	CategoryMedication = "medication"
	CategoryEquipment  = "equipment"
	CategorySupplies   = "supplies"
)

// Bill statuses.
const (
	BillPending = "pending"
	BillPaid    = "paid"
	BillOverdue = "overdue"
)

// Patient model. ID and CreatedAt are assigned by the data store at
// creation time and never change afterwards.
type Patient struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	DateOfBirth      string   `json:"date_of_birth"`
	Gender           string   `json:"gender"`
	Address          string   `json:"address"`
	EmergencyContact string   `json:"emergency_contact"`
	BloodType        string   `json:"blood_type"`
	Allergies        []string `json:"allergies"`
	Medications      []string `json:"medications"`
	CreatedAt        string   `json:"created_at"`
}

// Appointment model. PatientName and DoctorName are snapshots taken at
// booking time; a later rename of the patient does not propagate here.
type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// EHRRecord model. Append-mostly: the store exposes no update or delete
// for clinical history entries.
type EHRRecord struct {
	ID          string   `json:"id"`
	PatientID   string   `json:"patient_id"`
	Date        string   `json:"date"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DoctorID    string   `json:"doctor_id"`
	DoctorName  string   `json:"doctor_name"`
	Attachments []string `json:"attachments"`
}

// InventoryItem model. Low stock is never stored; it is derived as
// Quantity <= MinStock on every read.
type InventoryItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quantity   int     `json:"quantity"`
	MinStock   int     `json:"min_stock"`
	Unit       string  `json:"unit"`
	Supplier   string  `json:"supplier"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
	Cost       float64 `json:"cost"`
	Location   string  `json:"location"`
}

// LowStock reports whether the item is at or below its minimum threshold.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinStock
}

// BillItem is a single line on a bill.
type BillItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Bill model. Subtotal, Tax and Total are computed once at creation and
// never recomputed. PatientName is a creation-time snapshot.
type Bill struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patient_id"`
	PatientName string     `json:"patient_name"`
	Date        string     `json:"date"`
	Items       []BillItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	Total       float64    `json:"total"`
	Status      string     `json:"status"`
	DueDate     string     `json:"due_date"`
}

// EffectiveBillStatus is the status shown to the user: the stored status,
// except that a pending bill past its due date displays as overdue. The
// stored field is never rewritten by this derivation, so the two can
// disagree until the status is explicitly transitioned.
func EffectiveBillStatus(b Bill, now time.Time) string {
	if b.Status != BillPending {
		return b.Status
	}
	due, err := time.Parse("2006-01-02", b.DueDate)
	if err != nil {
		return b.Status
	}
	if due.Before(now) {
		return BillOverdue
	}
	return b.Status
}

// PatientUpdate carries a partial patient update. Nil fields are left
// untouched by the store; set fields replace the stored value. ID and
// CreatedAt are immutable and therefore absent.
type PatientUpdate struct {
	Name             *string   `json:"name"`
	Email            *string   `json:"email"`
	Phone            *string   `json:"phone"`
	DateOfBirth      *string   `json:"date_of_birth"`
	Gender           *string   `json:"gender"`
	Address          *string   `json:"address"`
	EmergencyContact *string   `json:"emergency_contact"`
	BloodType        *string   `json:"blood_type"`
	Allergies        *[]string `json:"allergies"`
	Medications      *[]string `json:"medications"`
}

// AppointmentUpdate carries a partial appointment update.
type AppointmentUpdate struct {
	DoctorID   *string `json:"doctor_id"`
	DoctorName *string `json:"doctor_name"`
	Date       *string `json:"date"`
	Time       *string `json:"time"`
	Duration   *int    `json:"duration"`
	Type       *string `json:"type"`
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
}

// InventoryItemUpdate carries a partial inventory update.
type InventoryItemUpdate struct {
	Name       *string  `json:"name"`
	Category   *string  `json:"category"`
	Quantity   *int     `json:"quantity"`
	MinStock   *int     `json:"min_stock"`
	Unit       *string  `json:"unit"`
	Supplier   *string  `json:"supplier"`
	ExpiryDate *string  `json:"expiry_date"`
	Cost       *float64 `json:"cost"`
	Location   *string  `json:"location"`
}
