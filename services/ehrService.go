package services

import (
	"strings"

	"medcare/datastore"
	"medcare/models"
)

type EHRService struct {
	store *datastore.Store
}

func NewEHRService(store *datastore.Store) *EHRService {
	return &EHRService{store: store}
}

// List returns EHR records filtered by search term, record type and patient
// id. The search matches title, description and the owning patient's current
// name, which is joined at read time rather than stored on the record.
func (s *EHRService) List(search, recordType, patientID string) []models.EHRRecord {
	term := strings.ToLower(search)
	records := s.store.EHRRecords()
	matched := make([]models.EHRRecord, 0, len(records))
	for _, r := range records {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(r.Title), term) ||
			strings.Contains(strings.ToLower(r.Description), term)
		if !matchesSearch && term != "" {
			if patient, ok := s.store.PatientByID(r.PatientID); ok {
				matchesSearch = strings.Contains(strings.ToLower(patient.Name), term)
			}
		}
		matchesType := recordType == "" || recordType == "all" || r.Type == recordType
		matchesPatient := patientID == "" || r.PatientID == patientID
		if matchesSearch && matchesType && matchesPatient {
			matched = append(matched, r)
		}
	}
	return matched
}

// ForPatient returns the clinical history of a single patient.
func (s *EHRService) ForPatient(patientID string) []models.EHRRecord {
	return s.List("", "", patientID)
}

// Create appends a record to a patient's history. Records for unknown
// patient ids are rejected without mutating state.
func (s *EHRService) Create(r models.EHRRecord) (models.EHRRecord, error) {
	if _, ok := s.store.PatientByID(r.PatientID); !ok {
		return models.EHRRecord{}, ErrUnknownPatient
	}
	return s.store.AddEHRRecord(r), nil
}
