package datastore

import "medcare/models"

// loadSeed installs the demo fixtures. Caller holds the write lock (or is
// the constructor).
func (s *Store) loadSeed() {
	s.patients = []models.Patient{
		{
			ID:               "1",
			Name:             "John Smith",
			Email:            "john.smith@email.com",
			Phone:            "+1-555-0123",
			DateOfBirth:      "1985-06-15",
			Gender:           models.GenderMale,
			Address:          "123 Main St, City, State 12345",
			EmergencyContact: "+1-555-0124",
			BloodType:        "O+",
			Allergies:        []string{"Penicillin", "Peanuts"},
			Medications:      []string{"Lisinopril 10mg"},
			CreatedAt:        "2024-01-15",
		},
		{
			ID:               "2",
			Name:             "Emily Johnson",
			Email:            "emily.johnson@email.com",
			Phone:            "+1-555-0125",
			DateOfBirth:      "1990-03-22",
			Gender:           models.GenderFemale,
			Address:          "456 Oak Ave, City, State 12345",
			EmergencyContact: "+1-555-0126",
			BloodType:        "A-",
			Allergies:        []string{"Latex"},
			Medications:      []string{},
			CreatedAt:        "2024-01-16",
		},
	}

	s.appointments = []models.Appointment{
		{
			ID:          "1",
			PatientID:   "1",
			PatientName: "John Smith",
			DoctorID:    "2",
			DoctorName:  "Dr. Michael Chen",
			Date:        "2024-01-25",
			Time:        "10:00",
			Duration:    30,
			Type:        models.AppointmentConsultation,
			Status:      models.AppointmentScheduled,
			Notes:       "Regular checkup",
		},
		{
			ID:          "2",
			PatientID:   "2",
			PatientName: "Emily Johnson",
			DoctorID:    "1",
			DoctorName:  "Dr. Sarah Johnson",
			Date:        "2024-01-25",
			Time:        "14:30",
			Duration:    45,
			Type:        models.AppointmentFollowUp,
			Status:      models.AppointmentScheduled,
			Notes:       "Follow-up for previous consultation",
		},
	}

	s.ehrRecords = []models.EHRRecord{
		{
			ID:          "1",
			PatientID:   "1",
			Date:        "2024-01-20",
			Type:        models.EHRDiagnosis,
			Title:       "Hypertension",
			Description: "Patient diagnosed with stage 1 hypertension. Blood pressure readings consistently above 140/90.",
			DoctorID:    "2",
			DoctorName:  "Dr. Michael Chen",
			Attachments: []string{},
		},
		{
			ID:          "2",
			PatientID:   "1",
			Date:        "2024-01-20",
			Type:        models.EHRPrescription,
			Title:       "Lisinopril Prescription",
			Description: "Prescribed Lisinopril 10mg once daily for hypertension management.",
			DoctorID:    "2",
			DoctorName:  "Dr. Michael Chen",
			Attachments: []string{},
		},
	}

	s.inventory = []models.InventoryItem{
		{
			ID:         "1",
			Name:       "Paracetamol 500mg",
			Category:   models.CategoryMedication,
			Quantity:   150,
			MinStock:   50,
			Unit:       "tablets",
			Supplier:   "PharmaCorp",
			ExpiryDate: "2025-12-31",
			Cost:       0.15,
			Location:   "Pharmacy-A1",
		},
		{
			ID:       "2",
			Name:     "Digital Thermometer",
			Category: models.CategoryEquipment,
			Quantity: 25,
			MinStock: 10,
			Unit:     "pieces",
			Supplier: "MedEquip Ltd",
			Cost:     45.00,
			Location: "Equipment-B2",
		},
		{
			ID:       "3",
			Name:     "Disposable Gloves",
			Category: models.CategorySupplies,
			Quantity: 500,
			MinStock: 100,
			Unit:     "boxes",
			Supplier: "SafeSupply Co",
			Cost:     12.50,
			Location: "Supplies-C1",
		},
	}

	s.bills = []models.Bill{
		{
			ID:          "1",
			PatientID:   "1",
			PatientName: "John Smith",
			Date:        "2024-01-20",
			Items: []models.BillItem{
				{Description: "Consultation Fee", Quantity: 1, UnitPrice: 150.00, Total: 150.00},
				{Description: "Blood Pressure Test", Quantity: 1, UnitPrice: 25.00, Total: 25.00},
				{Description: "Prescription", Quantity: 1, UnitPrice: 30.00, Total: 30.00},
			},
			Subtotal: 205.00,
			Tax:      20.50,
			Total:    225.50,
			Status:   models.BillPending,
			DueDate:  "2024-02-20",
		},
	}
}
