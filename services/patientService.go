package services

import (
	"errors"
	"strings"

	"medcare/datastore"
	"medcare/models"
)

// ErrUnknownPatient is returned when an operation references a patient id
// that does not resolve.
var ErrUnknownPatient = errors.New("patient not found")

type PatientService struct {
	store *datastore.Store
}

func NewPatientService(store *datastore.Store) *PatientService {
	return &PatientService{store: store}
}

// List returns the patients whose name, email or phone contains the search
// term (case-insensitive). An empty term matches everything.
func (s *PatientService) List(search string) []models.Patient {
	patients := s.store.Patients()
	if search == "" {
		return patients
	}
	term := strings.ToLower(search)
	matched := make([]models.Patient, 0, len(patients))
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Email), term) ||
			strings.Contains(strings.ToLower(p.Phone), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (s *PatientService) GetByID(id string) (models.Patient, error) {
	p, ok := s.store.PatientByID(id)
	if !ok {
		return models.Patient{}, ErrUnknownPatient
	}
	return p, nil
}

func (s *PatientService) Create(p models.Patient) models.Patient {
	return s.store.AddPatient(p)
}

func (s *PatientService) Update(id string, upd models.PatientUpdate) {
	s.store.UpdatePatient(id, upd)
}

// Delete removes only the patient record. Appointments, EHR entries and
// bills referencing it stay behind.
func (s *PatientService) Delete(id string) {
	s.store.DeletePatient(id)
}

// DeleteWithRelated removes the patient and every record referencing it.
func (s *PatientService) DeleteWithRelated(id string) {
	s.store.DeletePatientAndRelated(id)
}
