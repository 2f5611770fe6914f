package utils

import (
	"log"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"ClinicaAdmin/models"
)

// Form values are validated here, before anything reaches the network; a
// failed rule blocks submission with a field-level error.
var (
	// National ID (cédula), digit groups 3-6-1.
	DocumentIDPattern = regexp.MustCompile(`^\d{3}-\d{6}-\d{1}$`)
	// Phone, digit groups 3-3-4.
	PhonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

const (
	documentIDFormatError = "must match the format 000-000000-0"
	phoneFormatError      = "must match the format 000-000-0000"
)

// ValidatePatient validates a patient form using ozzo-validation.
func ValidatePatient(patient models.Patient) error {
	err := validation.ValidateStruct(&patient,
		validation.Field(&patient.FirstName, validation.Required),
		validation.Field(&patient.LastName, validation.Required),
		validation.Field(&patient.DocumentID, validation.Required, validation.Match(DocumentIDPattern).Error(documentIDFormatError)),
		validation.Field(&patient.BirthDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&patient.Sex, validation.Required, validation.In("Male", "Female", "Other")),
		validation.Field(&patient.Phone, validation.Match(PhonePattern).Error(phoneFormatError)),
		validation.Field(&patient.Email, is.Email),
		// A policy without an insurer (or the reverse) is half an insured
		// patient; both or neither.
		validation.Field(&patient.PolicyNumber, validation.When(patient.InsurerID != "", validation.Required.Error("policy number is required when an insurer is selected"))),
		validation.Field(&patient.InsurerID, validation.When(patient.PolicyNumber != "", validation.Required.Error("insurer is required when a policy number is set"))),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateDoctor validates a doctor form.
func ValidateDoctor(doctor models.Doctor) error {
	err := validation.ValidateStruct(&doctor,
		validation.Field(&doctor.FirstName, validation.Required),
		validation.Field(&doctor.LastName, validation.Required),
		validation.Field(&doctor.Specialty, validation.Required),
		validation.Field(&doctor.Phone, validation.Match(PhonePattern).Error(phoneFormatError)),
		validation.Field(&doctor.Email, is.Email),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateInsurer validates an insurer (ARS) form.
func ValidateInsurer(insurer models.Insurer) error {
	err := validation.ValidateStruct(&insurer,
		validation.Field(&insurer.Name, validation.Required),
		validation.Field(&insurer.Phone, validation.Required, validation.Match(PhonePattern).Error(phoneFormatError)),
		validation.Field(&insurer.Email, is.Email),
		validation.Field(&insurer.ContactPerson, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateUser validates a user account form.
func ValidateUser(user models.User) error {
	err := validation.ValidateStruct(&user,
		validation.Field(&user.Name, validation.Required),
		validation.Field(&user.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&user.Email, validation.Required, is.Email),
		validation.Field(&user.Password, validation.Required, validation.Length(8, 0)),
		validation.Field(&user.RoleID, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateCoverageRequest validates an ARS authorization request form.
func ValidateCoverageRequest(request models.CoverageRequest) error {
	err := validation.ValidateStruct(&request,
		validation.Field(&request.DocumentID, validation.Required, validation.Match(DocumentIDPattern).Error(documentIDFormatError)),
		validation.Field(&request.RequestType, validation.Required),
		validation.Field(&request.Amount, validation.Required, validation.Min(0.01)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}
