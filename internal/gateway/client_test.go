package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerenciamento-cursos/painel/internal/models"
	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
	"github.com/gerenciamento-cursos/painel/pkg/middleware/requestid"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(server.URL, 5*time.Second, nil, nil)
	require.NoError(t, err)
	return client, server
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New("", time.Second, nil, nil)
	assert.Error(t, err)
}

func TestMeDecodesIdentity(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(requestid.Header))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"nome":"Maria","email":"maria@x.com","tipo":"ADMIN"}`))
	}))

	identity, err := client.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.ID)
	assert.Equal(t, models.RoleAdmin, identity.Role)
}

func TestMeUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.Me(context.Background())

	assert.True(t, appErrors.Is(err, appErrors.ErrUnauthenticated))
}

func TestLoginVerifiesSessionWithWhoAmI(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "maria@x.com", r.PostForm.Get("username"))
			assert.Equal(t, "secret", r.PostForm.Get("password"))
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "abc"})
		case "/auth/me":
			cookie, err := r.Cookie("JSESSIONID")
			require.NoError(t, err)
			assert.Equal(t, "abc", cookie.Value)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":1,"nome":"Maria","tipo":"ADMIN"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	identity, err := client.Login(context.Background(), "maria@x.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "Maria", identity.Name)
}

func TestLoginFailureIsUnauthenticated(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.WriteHeader(http.StatusOK)
		case "/auth/me":
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))

	_, err := client.Login(context.Background(), "maria@x.com", "wrong")

	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrUnauthenticated))
	assert.Equal(t, "invalid email or password", appErrors.FromError(err).Message)
}

func TestCreateEnrollmentBodyShape(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/matriculas", r.URL.Path)

		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(7), body["alunoId"])
		assert.Equal(t, int64(3), body["cursoId"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":10,"alunoId":7,"cursoId":3,"status":"ATIVA","progresso":0}`))
	}))

	enrollment, err := client.CreateEnrollment(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(10), enrollment.ID)
	assert.Equal(t, models.EnrollmentStatusActive, enrollment.Status)
}

func TestCreateEnrollmentKeepsServerMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Não há vagas disponíveis neste curso"}`))
	}))

	_, err := client.CreateEnrollment(context.Background(), 7, 3)

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrMutationRejected.Code, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Não há vagas disponíveis neste curso", appErr.Message)
}

func TestUpdateProgressNeverClamps(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/matriculas/5/progresso", r.URL.Path)

		var body map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(150), body["progresso"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Progresso deve estar entre 0 e 100"}`))
	}))

	_, err := client.UpdateEnrollmentProgress(context.Background(), 5, 150)

	require.Error(t, err)
	assert.Equal(t, "Progresso deve estar entre 0 e 100", appErrors.FromError(err).Message)
}

func TestListFailureMapsToLoadFailed(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListCourses(context.Background())

	assert.True(t, appErrors.Is(err, appErrors.ErrLoadFailed))
}

func TestTransportFailureMapsToUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client, err := New(server.URL, time.Second, nil, nil)
	require.NoError(t, err)
	server.Close()

	_, err = client.ListCourses(context.Background())

	assert.True(t, appErrors.Is(err, appErrors.ErrUpstream))
}

func TestCancelAndReactivatePaths(t *testing.T) {
	var gotMethods []string
	var gotPaths []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethods = append(gotMethods, r.Method)
		gotPaths = append(gotPaths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":5,"status":"ATIVA"}`))
	}))

	require.NoError(t, client.CancelEnrollment(context.Background(), 5))
	_, err := client.ReactivateEnrollment(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, []string{http.MethodDelete, http.MethodPatch}, gotMethods)
	assert.Equal(t, []string{"/matriculas/5", "/matriculas/5/reativar"}, gotPaths)
}
