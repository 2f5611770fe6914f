package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/services"
)

func newAppointmentRouter(t *testing.T, upstreamCalls *int32) *gin.Engine {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(upstreamCalls, 1)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(upstream.Close)

	service := services.NewAppointmentService(backend.NewClient(upstream.URL))
	handler := NewAppointmentHandler(service)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/appointments/:appointment_id", handler.DeleteAppointment)
	router.PUT("/appointments/:appointment_id/status", handler.UpdateAppointmentStatus)
	return router
}

func TestDeleteAppointment_NotAvailableAndNeverReachesBackend(t *testing.T) {
	var upstreamCalls int32
	router := newAppointmentRouter(t, &upstreamCalls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/appointments/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.JSONEq(t, `{"error":"Appointment deletion is not available yet"}`, w.Body.String())
	assert.EqualValues(t, 0, upstreamCalls, "deletion must not issue any upstream request")
}

func TestUpdateAppointmentStatus_InvalidID(t *testing.T) {
	var upstreamCalls int32
	router := newAppointmentRouter(t, &upstreamCalls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/appointments/not-a-number/status", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 0, upstreamCalls)
}
