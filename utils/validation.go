package utils

import (
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"medcare/models"
)

// ValidateLogin checks the login form fields before the credential lookup
// runs.
func ValidateLogin(email, password string) error {
	err := validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidatePatient validates a patient create payload.
func ValidatePatient(p models.Patient) error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Email, is.Email),
		validation.Field(&p.Gender, validation.Required,
			validation.In(models.GenderMale, models.GenderFemale, models.GenderOther)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateAppointment validates an appointment create payload.
func ValidateAppointment(a models.Appointment) error {
	err := validation.ValidateStruct(&a,
		validation.Field(&a.PatientID, validation.Required),
		validation.Field(&a.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&a.Time, validation.Required),
		validation.Field(&a.Type, validation.Required,
			validation.In(models.AppointmentConsultation, models.AppointmentFollowUp,
				models.AppointmentEmergency, models.AppointmentSurgery)),
		validation.Field(&a.Status,
			validation.In(models.AppointmentScheduled, models.AppointmentCompleted,
				models.AppointmentCancelled, models.AppointmentNoShow)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateEHRRecord validates an EHR create payload.
func ValidateEHRRecord(r models.EHRRecord) error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.PatientID, validation.Required),
		validation.Field(&r.Type, validation.Required,
			validation.In(models.EHRDiagnosis, models.EHRTreatment,
				models.EHRTestResult, models.EHRPrescription)),
		validation.Field(&r.Title, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateInventoryItem validates an inventory create payload.
func ValidateInventoryItem(item models.InventoryItem) error {
	err := validation.ValidateStruct(&item,
		validation.Field(&item.Name, validation.Required),
		validation.Field(&item.Category, validation.Required,
			validation.In(models.CategoryMedication, models.CategoryEquipment, models.CategorySupplies)),
		validation.Field(&item.Quantity, validation.Min(0)),
		validation.Field(&item.MinStock, validation.Min(0)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateBill validates a bill create payload.
func ValidateBill(b models.Bill) error {
	err := validation.ValidateStruct(&b,
		validation.Field(&b.PatientID, validation.Required),
		validation.Field(&b.Items, validation.Required, validation.Length(1, 0)),
		validation.Field(&b.DueDate, validation.Required, validation.Date("2006-01-02")),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateStatus checks a status-transition payload against the allowed set.
func ValidateStatus(status string, allowed ...interface{}) error {
	err := validation.Validate(status, validation.Required, validation.In(allowed...))
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}
