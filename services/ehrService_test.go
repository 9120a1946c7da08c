package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medcare/datastore"
	"medcare/models"
)

func TestListSearchJoinsPatientName(t *testing.T) {
	store := datastore.New()
	svc := NewEHRService(store)

	// "smith" appears in no record title or description; it matches via the
	// owning patient's current name, joined at read time.
	assert.Len(t, svc.List("smith", "", ""), 2)
	assert.Len(t, svc.List("hypertension", "", ""), 2) // title + description hits
	assert.Empty(t, svc.List("johnson", "", ""))       // Emily has no records
}

func TestListFiltersByTypeAndPatient(t *testing.T) {
	svc := NewEHRService(datastore.New())

	assert.Len(t, svc.List("", models.EHRDiagnosis, ""), 1)
	assert.Len(t, svc.List("", models.EHRPrescription, ""), 1)
	assert.Empty(t, svc.List("", models.EHRTestResult, ""))
	assert.Len(t, svc.ForPatient("1"), 2)
	assert.Empty(t, svc.ForPatient("2"))
}

func TestCreateRequiresKnownPatient(t *testing.T) {
	store := datastore.New()
	svc := NewEHRService(store)

	created, err := svc.Create(models.EHRRecord{
		PatientID: "2",
		Type:      models.EHRTreatment,
		Title:     "Physiotherapy",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, svc.ForPatient("2"), 1)

	before := store.EHRRecords()
	_, err = svc.Create(models.EHRRecord{PatientID: "999", Type: models.EHRTreatment, Title: "X"})
	assert.ErrorIs(t, err, ErrUnknownPatient)
	assert.Equal(t, before, store.EHRRecords())
}
