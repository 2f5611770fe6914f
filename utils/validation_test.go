package utils

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClinicaAdmin/models"
)

func validPatient() models.Patient {
	return models.Patient{
		FirstName:  "Ana",
		LastName:   "Reyes",
		DocumentID: "003-848995-1",
		BirthDate:  "1990-04-12",
		Sex:        "Female",
		Phone:      "809-555-0101",
		Email:      "ana.reyes@example.com",
	}
}

func TestDocumentIDPattern(t *testing.T) {
	cases := []struct {
		documentID string
		valid      bool
	}{
		{"003-848995-1", true},
		{"123-456789-0", true},
		{"003-8489951", false},   // missing final hyphen
		{"03-848995-1", false},   // short first group
		{"003-84899-1", false},   // short middle group
		{"003-848995-12", false}, // long final group
		{"abc-defghi-j", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, DocumentIDPattern.MatchString(tc.documentID), "document %q", tc.documentID)
	}
}

func TestPhonePattern(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"809-555-0101", true},
		{"8095550101", false},
		{"809-555-010", false},
		{"809 555 0101", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, PhonePattern.MatchString(tc.phone), "phone %q", tc.phone)
	}
}

func TestValidatePatient_Valid(t *testing.T) {
	assert.NoError(t, ValidatePatient(validPatient()))
}

func TestValidatePatient_BadDocumentID(t *testing.T) {
	patient := validPatient()
	patient.DocumentID = "003-8489951"

	err := ValidatePatient(patient)
	require.Error(t, err)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "documentId")
}

func TestValidatePatient_BadBirthDate(t *testing.T) {
	patient := validPatient()
	patient.BirthDate = "12/04/1990"

	err := ValidatePatient(patient)
	require.Error(t, err)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "birthDate")
}

func TestValidatePatient_InsurerRequiresPolicy(t *testing.T) {
	patient := validPatient()
	patient.InsurerID = "ars1"

	err := ValidatePatient(patient)
	require.Error(t, err)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "policyNumber")
}

func TestValidatePatient_PolicyRequiresInsurer(t *testing.T) {
	patient := validPatient()
	patient.PolicyNumber = "POL-9"

	err := ValidatePatient(patient)
	require.Error(t, err)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "insurerId")
}

func TestValidatePatient_InsurerAndPolicyTogether(t *testing.T) {
	patient := validPatient()
	patient.InsurerID = "ars1"
	patient.PolicyNumber = "POL-9"

	assert.NoError(t, ValidatePatient(patient))
}

func TestValidateUser(t *testing.T) {
	user := models.User{
		Name:     "Ana Reyes",
		Username: "areyes",
		Email:    "ana.reyes@example.com",
		Password: "s3cret-password",
		RoleID:   models.RoleReceptionist,
	}
	assert.NoError(t, ValidateUser(user))

	user.Password = "short"
	err := ValidateUser(user)
	require.Error(t, err)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "password")
}

func TestValidateCoverageRequest(t *testing.T) {
	request := models.CoverageRequest{
		DocumentID:  "003-848995-1",
		RequestType: "procedure",
		Amount:      1500,
	}
	assert.NoError(t, ValidateCoverageRequest(request))

	request.Amount = 0
	err := ValidateCoverageRequest(request)
	require.Error(t, err)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "amount")
}
