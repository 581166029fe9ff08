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
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/meeting"
	"github.com/vantage-crm/vantage/modules/crm/presentation/viewmodels"
	"github.com/vantage-crm/vantage/modules/crm/services"
	"github.com/vantage-crm/vantage/pkg/application"
	"github.com/vantage-crm/vantage/pkg/eventbus"
	"github.com/vantage-crm/vantage/pkg/logging"
)

type fakeMeetingRepository struct {
	meetings []meeting.Meeting
}

func (r *fakeMeetingRepository) GetAll(context.Context) ([]meeting.Meeting, error) {
	return slices.Clone(r.meetings), nil
}

func (r *fakeMeetingRepository) GetByID(_ context.Context, id uuid.UUID) (meeting.Meeting, error) {
	for _, m := range r.meetings {
		if m.ID() == id {
			return m, nil
		}
	}
	return meeting.Meeting{}, meeting.ErrNotFound
}

func (r *fakeMeetingRepository) Create(_ context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	created := meeting.Hydrate(
		uuid.New(), m.Title(), m.StartTime(), m.EndTime(), m.StoredStatus(),
		m.Location(), m.Notes(), m.OwnerID(), "", m.AccountName(),
		m.CreatedAt(), m.UpdatedAt(),
	)
	r.meetings = append(r.meetings, created)
	return created, nil
}

func (r *fakeMeetingRepository) Update(_ context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	for i, existing := range r.meetings {
		if existing.ID() == m.ID() {
			// Status changes only land through SetStatus, as in the
			// real repository.
			updated := meeting.Hydrate(
				m.ID(), m.Title(), m.StartTime(), m.EndTime(), existing.StoredStatus(),
				m.Location(), m.Notes(), m.OwnerID(), existing.OwnerName(),
				m.AccountName(), m.CreatedAt(), m.UpdatedAt(),
			)
			r.meetings[i] = updated
			return updated, nil
		}
	}
	return meeting.Meeting{}, meeting.ErrNotFound
}

func (r *fakeMeetingRepository) SetStatus(_ context.Context, id uuid.UUID, status meeting.Status) (meeting.Meeting, error) {
	for i, existing := range r.meetings {
		if existing.ID() == id {
			updated := meeting.Hydrate(
				existing.ID(), existing.Title(), existing.StartTime(), existing.EndTime(), status,
				existing.Location(), existing.Notes(), existing.OwnerID(), existing.OwnerName(),
				existing.AccountName(), existing.CreatedAt(), existing.UpdatedAt(),
			)
			r.meetings[i] = updated
			return updated, nil
		}
	}
	return meeting.Meeting{}, meeting.ErrNotFound
}

func (r *fakeMeetingRepository) Delete(_ context.Context, ids []uuid.UUID) (int64, error) {
	var deleted int64
	kept := r.meetings[:0]
	for _, m := range r.meetings {
		if slices.Contains(ids, m.ID()) {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	r.meetings = kept
	return deleted, nil
}

type meetingListResponse struct {
	Items      []*viewmodels.Meeting `json:"items"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"total_pages"`
	Page       int                   `json:"page"`
}

func seedMeeting(title string, start, end time.Time, status meeting.Status) meeting.Meeting {
	return meeting.Hydrate(
		uuid.New(), title, start, end, status,
		"", "", uuid.Nil, "", "",
		start.Add(-24*time.Hour), start.Add(-24*time.Hour),
	)
}

func setupMeetingsAPI(t *testing.T, clock clockwork.Clock, repo *fakeMeetingRepository) *mux.Router {
	t.Helper()
	t.Setenv("LOG_PATH", filepath.Join(t.TempDir(), "app.log"))
	log := logging.ConsoleLogger(logrus.ErrorLevel)
	app := application.New(nil, eventbus.NewEventPublisher(log), log)

	svc := services.NewMeetingService(repo, app.EventPublisher(), clock)
	app.RegisterServices(svc, services.NewExportService(nil, nil, nil, svc, nil))

	router := mux.NewRouter()
	NewMeetingsController(app).Register(router)
	return router
}

func TestMeetingsAPI_ListFiltersByEffectiveStatus(t *testing.T) {
	now := time.Date(2026, time.April, 2, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	repo := &fakeMeetingRepository{meetings: []meeting.Meeting{
		seedMeeting("Running now", now.Add(-30*time.Minute), now.Add(30*time.Minute), meeting.StatusScheduled),
		seedMeeting("Tomorrow", now.Add(24*time.Hour), now.Add(25*time.Hour), meeting.StatusScheduled),
		seedMeeting("Called off", now.Add(-30*time.Minute), now.Add(30*time.Minute), meeting.StatusCancelled),
	}}
	router := setupMeetingsAPI(t, clock, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/crm/api/meetings?status=ongoing", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp meetingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	require.Equal(t, "Running now", resp.Items[0].Title)
	require.Equal(t, "ongoing", resp.Items[0].Status)
	require.Equal(t, "scheduled", resp.Items[0].StoredStatus)
}

func TestMeetingsAPI_ListSortsByDateThenSearch(t *testing.T) {
	now := time.Date(2026, time.April, 2, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	repo := &fakeMeetingRepository{meetings: []meeting.Meeting{
		seedMeeting("Beta sync", now.Add(48*time.Hour), now.Add(49*time.Hour), meeting.StatusScheduled),
		seedMeeting("Alpha sync", now.Add(24*time.Hour), now.Add(25*time.Hour), meeting.StatusScheduled),
	}}
	router := setupMeetingsAPI(t, clock, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/crm/api/meetings?sort=date&dir=asc", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp meetingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	require.Equal(t, "Alpha sync", resp.Items[0].Title)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/crm/api/meetings?q=beta", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "Beta sync", resp.Items[0].Title)
}

func TestMeetingsAPI_Cancel(t *testing.T) {
	now := time.Date(2026, time.April, 2, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	seeded := seedMeeting("Running now", now.Add(-30*time.Minute), now.Add(30*time.Minute), meeting.StatusScheduled)
	repo := &fakeMeetingRepository{meetings: []meeting.Meeting{seeded}}
	router := setupMeetingsAPI(t, clock, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/crm/api/meetings/"+seeded.ID().String()+"/cancel", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var vm viewmodels.Meeting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	require.Equal(t, "cancelled", vm.Status)
	require.Equal(t, "cancelled", vm.StoredStatus)
}

func TestMeetingsAPI_UpdateAppliesPayloadStatus(t *testing.T) {
	now := time.Date(2026, time.April, 2, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	seeded := seedMeeting("Planning", now.Add(24*time.Hour), now.Add(25*time.Hour), meeting.StatusScheduled)
	repo := &fakeMeetingRepository{meetings: []meeting.Meeting{seeded}}
	router := setupMeetingsAPI(t, clock, repo)

	body := `{"title":"Planning","start_time":"2026-04-03T12:00:00Z","end_time":"2026-04-03T13:00:00Z","status":"cancelled"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/crm/api/meetings/"+seeded.ID().String(), strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var vm viewmodels.Meeting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	require.Equal(t, "cancelled", vm.StoredStatus)
	require.Equal(t, "cancelled", vm.Status)
	require.Equal(t, meeting.StatusCancelled, repo.meetings[0].StoredStatus())
}

func TestMeetingsAPI_CancelUnknownID(t *testing.T) {
	clock := clockwork.NewRealClock()
	router := setupMeetingsAPI(t, clock, &fakeMeetingRepository{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/crm/api/meetings/"+uuid.NewString()+"/cancel", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMeetingsAPI_CreateRejectsBackwardsWindow(t *testing.T) {
	clock := clockwork.NewRealClock()
	router := setupMeetingsAPI(t, clock, &fakeMeetingRepository{})

	body := `{"title":"Broken","start_time":"2026-04-02T12:00:00Z","end_time":"2026-04-02T11:00:00Z"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/crm/api/meetings", strings.NewReader(body)))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "EndTime")
}

func TestMeetingsAPI_BulkDelete(t *testing.T) {
	now := time.Date(2026, time.April, 2, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	first := seedMeeting("One", now, now.Add(time.Hour), meeting.StatusScheduled)
	second := seedMeeting("Two", now, now.Add(time.Hour), meeting.StatusScheduled)
	repo := &fakeMeetingRepository{meetings: []meeting.Meeting{first, second}}
	router := setupMeetingsAPI(t, clock, repo)

	body := `{"ids":["` + first.ID().String() + `"]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/crm/api/meetings/bulk-delete", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"deleted":1}`, rec.Body.String())
	require.Len(t, repo.meetings, 1)
	require.Equal(t, second.ID(), repo.meetings[0].ID())
}
