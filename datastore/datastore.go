// Package datastore holds the clinical/operational state of the application.
// Everything lives in process memory: collections are seeded at startup and
// reset to their seed values on restart, mirroring a fresh page load.
package datastore

import (
	"strconv"
	"sync"
	"time"

	"medcare/models"
)

// Store is the shared container for the five record collections. All
// operations are synchronous and atomic: a reader never observes a partial
// write. Update and delete on an id that does not exist are silent no-ops;
// add always succeeds.
type Store struct {
	mu sync.RWMutex

	patients     []models.Patient
	appointments []models.Appointment
	ehrRecords   []models.EHRRecord
	inventory    []models.InventoryItem
	bills        []models.Bill

	lastID int64
	now    func() time.Time
}

// New returns a Store populated with the seed fixtures.
func New() *Store {
	s := &Store{now: time.Now}
	s.loadSeed()
	return s
}

// NewAt is New with an injectable clock, for tests.
func NewAt(now func() time.Time) *Store {
	s := &Store{now: now}
	s.loadSeed()
	return s
}

// Reset discards all collections and restores the seed fixtures. This is the
// server-side equivalent of reloading the page.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadSeed()
}

// nextID derives a fresh identifier from the current time. Identifiers only
// need to be unique within the process, so a collision within the same
// millisecond is resolved by bumping past the last issued value.
func (s *Store) nextID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// Patients returns a copy of the patient collection in insertion order.
func (s *Store) Patients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Patient(nil), s.patients...)
}

// PatientByID returns the patient with the given id, or false.
func (s *Store) PatientByID(id string) (models.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p, true
		}
	}
	return models.Patient{}, false
}

// AddPatient assigns a fresh id and creation date, appends the patient and
// returns the stored record.
func (s *Store) AddPatient(p models.Patient) models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID()
	p.CreatedAt = s.now().Format("2006-01-02")
	s.patients = append(s.patients, p)
	return p
}

// UpdatePatient merges the set fields of upd into the patient with the given
// id. Unknown ids are ignored.
func (s *Store) UpdatePatient(id string, upd models.PatientUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID != id {
			continue
		}
		p := &s.patients[i]
		setString(&p.Name, upd.Name)
		setString(&p.Email, upd.Email)
		setString(&p.Phone, upd.Phone)
		setString(&p.DateOfBirth, upd.DateOfBirth)
		setString(&p.Gender, upd.Gender)
		setString(&p.Address, upd.Address)
		setString(&p.EmergencyContact, upd.EmergencyContact)
		setString(&p.BloodType, upd.BloodType)
		if upd.Allergies != nil {
			p.Allergies = append([]string(nil), (*upd.Allergies)...)
		}
		if upd.Medications != nil {
			p.Medications = append([]string(nil), (*upd.Medications)...)
		}
		return
	}
}

// DeletePatient removes the patient with the given id. Related appointments,
// EHR records and bills are deliberately left in place; callers that want a
// cascade use DeletePatientAndRelated.
func (s *Store) DeletePatient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = deleteByID(s.patients, id, func(p models.Patient) string { return p.ID })
}

// DeletePatientAndRelated removes the patient together with every
// appointment, EHR record and bill referencing it.
func (s *Store) DeletePatientAndRelated(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = deleteByID(s.patients, id, func(p models.Patient) string { return p.ID })
	s.appointments = deleteByID(s.appointments, id, func(a models.Appointment) string { return a.PatientID })
	s.ehrRecords = deleteByID(s.ehrRecords, id, func(r models.EHRRecord) string { return r.PatientID })
	s.bills = deleteByID(s.bills, id, func(b models.Bill) string { return b.PatientID })
}

// Appointments returns a copy of the appointment collection.
func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Appointment(nil), s.appointments...)
}

// AddAppointment assigns a fresh id, appends and returns the stored record.
func (s *Store) AddAppointment(a models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.nextID()
	s.appointments = append(s.appointments, a)
	return a
}

// UpdateAppointment merges the set fields of upd into the appointment with
// the given id. Unknown ids are ignored.
func (s *Store) UpdateAppointment(id string, upd models.AppointmentUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		a := &s.appointments[i]
		setString(&a.DoctorID, upd.DoctorID)
		setString(&a.DoctorName, upd.DoctorName)
		setString(&a.Date, upd.Date)
		setString(&a.Time, upd.Time)
		if upd.Duration != nil {
			a.Duration = *upd.Duration
		}
		setString(&a.Type, upd.Type)
		setString(&a.Status, upd.Status)
		setString(&a.Notes, upd.Notes)
		return
	}
}

// UpdateAppointmentStatus is a merge update restricted to the status field.
func (s *Store) UpdateAppointmentStatus(id, status string) {
	s.UpdateAppointment(id, models.AppointmentUpdate{Status: &status})
}

// DeleteAppointment removes the appointment with the given id.
func (s *Store) DeleteAppointment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = deleteByID(s.appointments, id, func(a models.Appointment) string { return a.ID })
}

// EHRRecords returns a copy of the EHR collection.
func (s *Store) EHRRecords() []models.EHRRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.EHRRecord(nil), s.ehrRecords...)
}

// AddEHRRecord assigns a fresh id, appends and returns the stored record.
// EHR entries are append-mostly: no update or delete is exposed.
func (s *Store) AddEHRRecord(r models.EHRRecord) models.EHRRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID()
	s.ehrRecords = append(s.ehrRecords, r)
	return r
}

// Inventory returns a copy of the inventory collection.
func (s *Store) Inventory() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.InventoryItem(nil), s.inventory...)
}

// AddInventoryItem assigns a fresh id, appends and returns the stored item.
func (s *Store) AddInventoryItem(item models.InventoryItem) models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextID()
	s.inventory = append(s.inventory, item)
	return item
}

// UpdateInventoryItem merges the set fields of upd into the item with the
// given id. Unknown ids are ignored.
func (s *Store) UpdateInventoryItem(id string, upd models.InventoryItemUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID != id {
			continue
		}
		item := &s.inventory[i]
		setString(&item.Name, upd.Name)
		setString(&item.Category, upd.Category)
		if upd.Quantity != nil {
			item.Quantity = *upd.Quantity
		}
		if upd.MinStock != nil {
			item.MinStock = *upd.MinStock
		}
		setString(&item.Unit, upd.Unit)
		setString(&item.Supplier, upd.Supplier)
		setString(&item.ExpiryDate, upd.ExpiryDate)
		if upd.Cost != nil {
			item.Cost = *upd.Cost
		}
		setString(&item.Location, upd.Location)
		return
	}
}

// Bills returns a copy of the bill collection.
func (s *Store) Bills() []models.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Bill(nil), s.bills...)
}

// BillByID returns the bill with the given id, or false.
func (s *Store) BillByID(id string) (models.Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bills {
		if b.ID == id {
			return b, true
		}
	}
	return models.Bill{}, false
}

// AddBill assigns a fresh id, appends and returns the stored bill. Totals
// are expected to be computed by the caller before the bill reaches the
// store and are never recomputed afterwards.
func (s *Store) AddBill(b models.Bill) models.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.nextID()
	s.bills = append(s.bills, b)
	return b
}

// UpdateBillStatus is a merge update restricted to the status field.
// Unknown ids are ignored.
func (s *Store) UpdateBillStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bills {
		if s.bills[i].ID == id {
			s.bills[i].Status = status
			return
		}
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func deleteByID[T any](items []T, id string, key func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if key(item) != id {
			out = append(out, item)
		}
	}
	// Zero the tail so removed records are not retained by the backing array.
	for i := len(out); i < len(items); i++ {
		var zero T
		items[i] = zero
	}
	return out
}
