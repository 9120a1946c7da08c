package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medcare/datastore"
	"medcare/models"
)

func TestBookSnapshotsPatientName(t *testing.T) {
	store := datastore.New()
	svc := NewAppointmentService(store)

	created, err := svc.Book(models.Appointment{
		PatientID:  "1",
		DoctorID:   "2",
		DoctorName: "Dr. Michael Chen",
		Date:       "2024-02-01",
		Time:       "09:00",
		Duration:   30,
		Type:       models.AppointmentConsultation,
	})
	assert.NoError(t, err)
	assert.Equal(t, "John Smith", created.PatientName)
	assert.Equal(t, models.AppointmentScheduled, created.Status)

	// The snapshot is not kept in sync with later renames.
	newName := "Johnny Smith"
	store.UpdatePatient("1", models.PatientUpdate{Name: &newName})

	for _, a := range store.Appointments() {
		if a.ID == created.ID {
			assert.Equal(t, "John Smith", a.PatientName)
		}
	}
}

func TestBookUnknownPatientDoesNotMutate(t *testing.T) {
	store := datastore.New()
	svc := NewAppointmentService(store)
	before := store.Appointments()

	_, err := svc.Book(models.Appointment{PatientID: "999", Date: "2024-02-01", Time: "09:00"})
	assert.ErrorIs(t, err, ErrUnknownPatient)
	assert.Equal(t, before, store.Appointments())
}

func TestListFiltersBySearchAndStatus(t *testing.T) {
	store := datastore.New()
	svc := NewAppointmentService(store)

	// Search matches patient or doctor name, case-insensitively.
	assert.Len(t, svc.List("john", ""), 2) // John Smith + Emily Johnson
	assert.Len(t, svc.List("chen", ""), 1)
	assert.Empty(t, svc.List("nobody", ""))

	store.UpdateAppointmentStatus("1", models.AppointmentCancelled)
	assert.Len(t, svc.List("", models.AppointmentCancelled), 1)
	assert.Len(t, svc.List("", models.AppointmentScheduled), 1)
	assert.Len(t, svc.List("", "all"), 2)
}

func TestForDate(t *testing.T) {
	store := datastore.New()
	svc := NewAppointmentService(store)

	assert.Len(t, svc.ForDate("2024-01-25"), 2)
	assert.Empty(t, svc.ForDate("2024-01-26"))
}
