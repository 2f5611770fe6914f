package controllers

import (
	"github.com/gin-gonic/gin"

	"ClinicaAdmin/handlers"
)

// SetupResourceRoutes registers the console's resource surface on the
// authenticated group.
func SetupResourceRoutes(router *gin.RouterGroup, appointmentHandler *handlers.AppointmentHandler, patientHandler *handlers.PatientHandler, doctorHandler *handlers.DoctorHandler, insurerHandler *handlers.InsurerHandler, billingHandler *handlers.BillingHandler) {
	router.GET("/appointments", appointmentHandler.GetAllAppointments)
	router.GET("/appointments/:appointment_id", appointmentHandler.GetAppointmentByID)
	router.POST("/appointments", appointmentHandler.CreateAppointment)
	router.PUT("/appointments/:appointment_id", appointmentHandler.UpdateAppointment)
	router.PUT("/appointments/:appointment_id/status", appointmentHandler.UpdateAppointmentStatus)
	router.DELETE("/appointments/:appointment_id", appointmentHandler.DeleteAppointment)

	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	router.GET("/patients", patientHandler.GetAllPatients)

	router.POST("/doctors", doctorHandler.CreateDoctor)
	router.GET("/doctors/:id", doctorHandler.GetDoctorByID)
	router.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
	router.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)
	router.GET("/doctors", doctorHandler.GetAllDoctors)

	router.POST("/insurers", insurerHandler.CreateInsurer)
	router.GET("/insurers/:id", insurerHandler.GetInsurerByID)
	router.PUT("/insurers/:id", insurerHandler.UpdateInsurer)
	router.DELETE("/insurers/:id", insurerHandler.DeleteInsurer)
	router.GET("/insurers", insurerHandler.GetAllInsurers)

	router.POST("/coverage/check", billingHandler.CheckCoverage)
	router.POST("/invoices", billingHandler.CreateInvoice)
	router.GET("/invoices", billingHandler.GetAllInvoices)
	router.GET("/invoices/:id/items", billingHandler.GetInvoiceItems)
	router.PUT("/invoices/:id", billingHandler.UpdateInvoice)
	router.DELETE("/invoices/:id", billingHandler.DeleteInvoice)
}
