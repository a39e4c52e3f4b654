package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var creds = session.Credentials{Token: "t1", UserID: "s1"}

func TestClient_ListJobs_SendsBearerAndPage(t *testing.T) {
	var gotAuth, gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotPage = r.URL.Query().Get("page")
		_ = json.NewEncoder(w).Encode(models.JobPage{
			Jobs:       []models.Job{{ID: "j1", Title: "Go developer"}},
			Total:      1,
			Pagination: models.Pagination{CurrentPage: 2, TotalPages: 2},
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	page, err := c.ListJobs(context.Background(), creds, 2)
	require.NoError(t, err)

	assert.Equal(t, "Bearer t1", gotAuth)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "Go developer", page.Jobs[0].Title)
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"locations":[{"city":"Lahore","province":"Punjab","country":"Pakistan"}]}`))
	}))
	defer srv.Close()

	locs, err := New(srv.URL, time.Second).Locations(context.Background(), session.Credentials{})
	require.NoError(t, err)
	assert.Len(t, locs, 1)
}

func TestClient_Apply_ErrorClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		code   apperrors.ErrorCode
		msg    string
	}{
		{"structured code", http.StatusBadRequest, `{"code":"ALREADY_APPLIED","message":"Duplicate"}`, apperrors.CodeAlreadyApplied, "Duplicate"},
		{"legacy prose", http.StatusBadRequest, `{"message":"You have already applied for this job"}`, apperrors.CodeAlreadyApplied, "You have already applied for this job"},
		{"plain conflict", http.StatusConflict, `{"message":"Job is closed"}`, apperrors.CodeConflict, "Job is closed"},
		{"unauthorized", http.StatusUnauthorized, `{"message":"jwt expired"}`, apperrors.CodeUnauthorized, "jwt expired"},
		{"not found no body", http.StatusNotFound, ``, apperrors.CodeNotFound, "Not Found"},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, apperrors.CodeExternalServiceError, "boom"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, time.Second).Apply(context.Background(), creds, "j1", "s1")
			require.Error(t, err)
			assert.Equal(t, tc.code, apperrors.CodeOf(err))
			assert.Equal(t, tc.msg, apperrors.MessageOf(err))
		})
	}
}

func TestClient_ServerErrorMapsToBadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).GetJob(context.Background(), creds, "j1")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).SimilarJobs(context.Background(), creds, "j1")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeRequestFailed))
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := New(srv.URL, 20*time.Millisecond).ListJobs(context.Background(), creds, 1)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeRequestFailed))
}

func TestClient_TransitionApplication_Paths(t *testing.T) {
	var paths []string
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "c1", body["companyId"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	company := session.Credentials{Token: "t1", UserID: "c1"}
	ctx := context.Background()
	require.NoError(t, c.TransitionApplication(ctx, company, models.ActionShortlist, "a1", nil))
	require.NoError(t, c.TransitionApplication(ctx, company, models.ActionReject, "a1", nil))

	assert.Equal(t, []string{
		"/job-applications/company/shortlist-application/a1",
		"/job-applications/company/reject-application/a1",
	}, paths)
	assert.Equal(t, []string{http.MethodPatch, http.MethodPatch}, methods)
}

func serveBody(t *testing.T, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second)
}

func TestClient_GetJob_ResponseShapes(t *testing.T) {
	ctx := context.Background()

	t.Run("wrapped", func(t *testing.T) {
		job, err := serveBody(t, `{"job":{"_id":"j1","title":"Go developer"}}`).GetJob(ctx, creds, "j1")
		require.NoError(t, err)
		assert.Equal(t, "j1", job.ID)
		assert.Equal(t, "Go developer", job.Title)
	})

	t.Run("bare", func(t *testing.T) {
		job, err := serveBody(t, `{"_id":"j1","title":"Go developer"}`).GetJob(ctx, creds, "j1")
		require.NoError(t, err)
		assert.Equal(t, "j1", job.ID)
		assert.Equal(t, "Go developer", job.Title)
	})

	for name, body := range map[string]string{
		"empty object": `{}`,
		"null job":     `{"job":null}`,
		"no id":        `{"message":"ok"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := serveBody(t, body).GetJob(ctx, creds, "j1")
			assert.True(t, apperrors.IsCode(err, apperrors.CodeRequestFailed))
		})
	}
}

func TestClient_GetCompany_BareResponse(t *testing.T) {
	company, err := serveBody(t, `{"_id":"c1","companyName":"Acme"}`).GetCompany(context.Background(), creds, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", company.ID)

	_, err = serveBody(t, `{}`).GetCompany(context.Background(), creds, "c1")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeRequestFailed))
}

func TestClient_CreateCompanyRole_BareRoleWithRoleField(t *testing.T) {
	c := serveBody(t, `{"_id":"r1","firstName":"Ann","role":"Recruiter"}`)
	role, err := c.CreateCompanyRole(context.Background(), creds, models.CompanyRoleInput{Role: "Recruiter"})
	require.NoError(t, err)
	assert.Equal(t, "r1", role.ID)
	assert.Equal(t, "Recruiter", role.Role)

	c = serveBody(t, `{"role":{"_id":"r2","role":"Manager"}}`)
	role, err = c.CreateCompanyRole(context.Background(), creds, models.CompanyRoleInput{Role: "Manager"})
	require.NoError(t, err)
	assert.Equal(t, "r2", role.ID)
}

func TestClient_Apply_BareAndEmptyBodies(t *testing.T) {
	app, err := serveBody(t, `{"_id":"a1","jobId":"j1"}`).Apply(context.Background(), creds, "j1", "s1")
	require.NoError(t, err)
	assert.Equal(t, "a1", app.ID)

	app, err = serveBody(t, ``).Apply(context.Background(), creds, "j1", "s1")
	require.NoError(t, err)
	assert.Empty(t, app.ID)
}
