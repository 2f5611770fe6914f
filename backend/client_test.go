package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClinicaAdmin/models"
	"ClinicaAdmin/session"
)

func TestGetAllPatients_NormalizesBothListShapes(t *testing.T) {
	bare := `[{"id":"p1","firstName":"Ana","lastName":"Gomez"},{"id":"p2","firstName":"Luis","lastName":"Diaz"}]`
	enveloped := `{"data":` + bare + `}`

	for name, body := range map[string]string{"bare array": bare, "data envelope": enveloped} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/patients/all", r.URL.Path)
				w.Write([]byte(body))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			patients := client.GetAllPatients(context.Background())

			require.Len(t, patients, 2)
			assert.Equal(t, "p1", patients[0].ID)
			assert.Equal(t, "Luis", patients[1].FirstName)
		})
	}
}

func TestGetAllPatients_DegradesToEmptyOnFailure(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		patients := NewClient(server.URL).GetAllPatients(context.Background())
		require.NotNil(t, patients)
		assert.Empty(t, patients)
	})

	t.Run("envelope data is not an array", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":"oops"}`))
		}))
		defer server.Close()

		patients := NewClient(server.URL).GetAllPatients(context.Background())
		require.NotNil(t, patients)
		assert.Empty(t, patients)
	})
}

func TestGetPatientByID_TypedErrorCarriesStatusAndMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"patient not found"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetPatientByID(context.Background(), "missing")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "patient not found", apiErr.Message)
}

func TestUpdatePatient_NoContentSynthesizesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/patients/p1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	patient := &models.Patient{FirstName: "Ana", LastName: "Gomez"}
	updated, err := NewClient(server.URL).UpdatePatient(context.Background(), "p1", patient)

	require.NoError(t, err)
	assert.Equal(t, "p1", updated.ID)
	assert.Equal(t, "Ana", updated.FirstName)
}

func TestDeleteDoctor_ToleratesStatuses(t *testing.T) {
	t.Run("204 is success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		assert.NoError(t, NewClient(server.URL).DeleteDoctor(context.Background(), "d1"))
	})

	t.Run("unparseable error body falls back to status text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("<html>boom</html>"))
		}))
		defer server.Close()

		err := NewClient(server.URL).DeleteDoctor(context.Background(), "d1")
		require.Error(t, err)

		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Contains(t, apiErr.Message, "500")
	})
}

func TestBearerTokenReadFromSessionAtCallTime(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	client.GetAllPatients(context.Background())
	assert.Empty(t, gotAuth, "unauthenticated call must not carry a token")

	ctx := session.NewContext(context.Background(), &session.Session{ID: "s1", Token: "backend-token"})
	client.GetAllPatients(ctx)
	assert.Equal(t, "Bearer backend-token", gotAuth)
}

func TestLogin_CarriesNoTokenAndReturnsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"token":"backend-token","user":{"id":7,"username":"ana","roleId":100}}`))
	}))
	defer server.Close()

	result, err := NewClient(server.URL).Login(context.Background(), "ana", "secret")
	require.NoError(t, err)
	assert.Equal(t, "backend-token", result.Token)
	assert.Equal(t, int64(7), result.User.ID)
	assert.Equal(t, models.RoleAdmin, result.User.RoleID)
}
