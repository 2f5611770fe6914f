package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{StatusActive, "Active"},
		{StatusInactive, "Inactive"},
		{StatusPending, "Pending"},
		{StatusCompleted, "Completed"},
		{StatusCancelled, "Cancelled"},
		{StatusApproved, "Approved"},
		{StatusRejected, "Rejected"},
		{0, UnknownStatusLabel},
		{99, UnknownStatusLabel},
		{107, UnknownStatusLabel},
		{-1, UnknownStatusLabel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusLabel(tt.code), "code %d", tt.code)
	}
}

func TestAppointmentUnmarshal_ToleratesCasingVariants(t *testing.T) {
	tests := map[string]string{
		"canonical":       `{"id":1,"patientId":"p1","doctorId":"d1","dateTime":"2026-03-01T09:30:00Z","status":100}`,
		"uppercase ID":    `{"id":1,"patientID":"p1","doctorID":"d1","dateTime":"2026-03-01T09:30:00Z","status":100}`,
		"spanish keys":    `{"id":1,"pacienteId":"p1","medicoId":"d1","fecha":"2026-03-01T09:30:00Z","status":100}`,
		"snake case keys": `{"id":1,"patient_id":"p1","doctor_id":"d1","date_time":"2026-03-01T09:30:00Z","status":100}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var appointment Appointment
			require.NoError(t, json.Unmarshal([]byte(body), &appointment))
			assert.Equal(t, "p1", appointment.PatientID)
			assert.Equal(t, "d1", appointment.DoctorID)
			assert.Equal(t, "2026-03-01T09:30:00Z", appointment.DateTime)
			assert.Equal(t, StatusActive, appointment.Status)
		})
	}
}

func TestPatientInsured_DerivedNotStored(t *testing.T) {
	assert.False(t, Patient{}.Insured())
	assert.False(t, Patient{InsurerID: "ars1"}.Insured())
	assert.False(t, Patient{PolicyNumber: "POL-9"}.Insured())
	assert.True(t, Patient{InsurerID: "ars1", PolicyNumber: "POL-9"}.Insured())
}

func TestFullName_Trimmed(t *testing.T) {
	assert.Equal(t, "Ana Gomez", Patient{FirstName: " Ana ", LastName: " Gomez "}.FullName())
	assert.Equal(t, "Ana", Patient{FirstName: "Ana"}.FullName())
	assert.Equal(t, "", Patient{}.FullName())
	assert.Equal(t, "Luis Diaz", Doctor{FirstName: "Luis", LastName: "Diaz"}.FullName())
}
