package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/lead"
	"github.com/vantage-crm/vantage/modules/crm/presentation/viewmodels"
	"github.com/vantage-crm/vantage/modules/crm/services"
	"github.com/vantage-crm/vantage/pkg/application"
	"github.com/vantage-crm/vantage/pkg/eventbus"
	"github.com/vantage-crm/vantage/pkg/logging"
)

type fakeLeadRepository struct {
	leads []lead.Lead
}

func (r *fakeLeadRepository) GetAll(context.Context) ([]lead.Lead, error) {
	return slices.Clone(r.leads), nil
}

func (r *fakeLeadRepository) GetByID(_ context.Context, id uuid.UUID) (lead.Lead, error) {
	for _, l := range r.leads {
		if l.ID() == id {
			return l, nil
		}
	}
	return lead.Lead{}, lead.ErrNotFound
}

func (r *fakeLeadRepository) Create(_ context.Context, l lead.Lead) (lead.Lead, error) {
	for _, existing := range r.leads {
		if existing.Email() == l.Email() {
			return lead.Lead{}, lead.ErrEmailTaken
		}
	}
	created := lead.Hydrate(
		uuid.New(), l.FirstName(), l.LastName(), l.Email(), l.Phone(), l.Company(),
		l.Source(), l.Status(), l.OwnerID(), "", l.CreatedAt(), l.UpdatedAt(),
	)
	r.leads = append(r.leads, created)
	return created, nil
}

func (r *fakeLeadRepository) Update(_ context.Context, l lead.Lead) (lead.Lead, error) {
	for i, existing := range r.leads {
		if existing.ID() == l.ID() {
			r.leads[i] = l
			return l, nil
		}
	}
	return lead.Lead{}, lead.ErrNotFound
}

func (r *fakeLeadRepository) Delete(_ context.Context, ids []uuid.UUID) (int64, error) {
	var deleted int64
	kept := r.leads[:0]
	for _, l := range r.leads {
		if slices.Contains(ids, l.ID()) {
			deleted++
			continue
		}
		kept = append(kept, l)
	}
	r.leads = kept
	return deleted, nil
}

func setupLeadsAPI(t *testing.T, repo *fakeLeadRepository) *mux.Router {
	t.Helper()
	t.Setenv("LOG_PATH", filepath.Join(t.TempDir(), "app.log"))
	log := logging.ConsoleLogger(logrus.ErrorLevel)
	app := application.New(nil, eventbus.NewEventPublisher(log), log)

	svc := services.NewLeadService(repo, app.EventPublisher())
	app.RegisterServices(svc, services.NewExportService(svc, nil, nil, nil, nil))

	router := mux.NewRouter()
	NewLeadsController(app).Register(router)
	return router
}

func TestLeadsAPI_CreateAndList(t *testing.T) {
	repo := &fakeLeadRepository{}
	router := setupLeadsAPI(t, repo)

	body := `{"first_name":"Grace","last_name":"Hopper","email":"Grace@Example.com","company":"Navy"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/crm/api/leads", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created viewmodels.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "grace@example.com", created.Email)
	require.Equal(t, "new", created.Status)
	require.Equal(t, "Grace Hopper", created.FullName)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/crm/api/leads?q=hopper", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), created.ID)
}

func TestLeadsAPI_CreateValidation(t *testing.T) {
	router := setupLeadsAPI(t, &fakeLeadRepository{})

	body := `{"first_name":"","last_name":"Hopper","email":"not-an-email"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/crm/api/leads", strings.NewReader(body)))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	require.Contains(t, rec.Body.String(), "Email")
}

func TestLeadsAPI_CreateDuplicateEmailConflict(t *testing.T) {
	router := setupLeadsAPI(t, &fakeLeadRepository{})

	body := `{"first_name":"Grace","last_name":"Hopper","email":"grace@example.com"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/crm/api/leads", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/crm/api/leads", strings.NewReader(body)))
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
}

func TestLeadsAPI_GetUnknownID(t *testing.T) {
	router := setupLeadsAPI(t, &fakeLeadRepository{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/crm/api/leads/"+uuid.NewString(), nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/crm/api/leads/not-a-uuid", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
