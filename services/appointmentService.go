package services

import (
	"strings"

	"medcare/datastore"
	"medcare/models"
)

type AppointmentService struct {
	store *datastore.Store
}

func NewAppointmentService(store *datastore.Store) *AppointmentService {
	return &AppointmentService{store: store}
}

// List returns appointments filtered by search term (patient or doctor name,
// case-insensitive) and status; status "" or "all" matches every status.
func (s *AppointmentService) List(search, status string) []models.Appointment {
	term := strings.ToLower(search)
	appts := s.store.Appointments()
	matched := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(a.PatientName), term) ||
			strings.Contains(strings.ToLower(a.DoctorName), term)
		matchesStatus := status == "" || status == "all" || a.Status == status
		if matchesSearch && matchesStatus {
			matched = append(matched, a)
		}
	}
	return matched
}

// ForDate returns the appointments scheduled on the given date (YYYY-MM-DD),
// used by the calendar view.
func (s *AppointmentService) ForDate(date string) []models.Appointment {
	appts := s.store.Appointments()
	matched := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Date == date {
			matched = append(matched, a)
		}
	}
	return matched
}

// Book creates an appointment. PatientName is copied from the patient record
// at booking time and is not kept in sync with later renames. Booking
// against an unknown patient id does not mutate state.
func (s *AppointmentService) Book(a models.Appointment) (models.Appointment, error) {
	patient, ok := s.store.PatientByID(a.PatientID)
	if !ok {
		return models.Appointment{}, ErrUnknownPatient
	}
	a.PatientName = patient.Name
	if a.Status == "" {
		a.Status = models.AppointmentScheduled
	}
	return s.store.AddAppointment(a), nil
}

func (s *AppointmentService) Update(id string, upd models.AppointmentUpdate) {
	s.store.UpdateAppointment(id, upd)
}

func (s *AppointmentService) UpdateStatus(id, status string) {
	s.store.UpdateAppointmentStatus(id, status)
}

func (s *AppointmentService) Delete(id string) {
	s.store.DeleteAppointment(id)
}
