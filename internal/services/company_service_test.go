package services

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"jobportal_front/internal/forms"
	"jobportal_front/internal/models"
	"jobportal_front/internal/storage"
	"jobportal_front/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJob_ValidatesAndPrepends(t *testing.T) {
	f := newFixture(t)
	var got models.JobPayload
	f.api.handle("POST /job", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusCreated, map[string]any{"job": models.Job{ID: "j9", Title: got.Title}})
	})
	ctx := context.Background()

	_, err := f.svc.Jobs.PostJob(ctx, f.company, forms.JobForm{})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
	assert.Zero(t, f.api.total())

	job, err := f.svc.Jobs.PostJob(ctx, f.company, forms.JobForm{Title: "SRE", SalaryFrom: "90,000", SalaryTo: "n/a"})
	require.NoError(t, err)
	assert.Equal(t, "j9", job.ID)
	assert.Equal(t, 90000, got.SalaryFrom)
	assert.Zero(t, got.SalaryTo)
	assert.Equal(t, "c1", got.Company)

	jobs := f.state(f.company).Jobs
	require.Len(t, jobs.CompanyJobs, 1)
	assert.Equal(t, "j9", jobs.CompanyJobs[0].ID)
}

func TestToggleJobActive_EmptyResponseFlipsCache(t *testing.T) {
	f := newFixture(t)
	f.api.handle("GET /jobs/company/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.JobPage{Jobs: []models.Job{{ID: "j1", IsActive: true}}, Total: 1})
	})
	f.api.handle("PATCH /jobs/toggle-job-active-status/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	_, err := f.svc.Jobs.FetchCompanyJobs(ctx, f.company, 1)
	require.NoError(t, err)
	_, err = f.svc.Jobs.ToggleJobActive(ctx, f.company, "j1")
	require.NoError(t, err)

	assert.False(t, f.state(f.company).Jobs.CompanyJobs[0].IsActive)
}

func TestCompanyProfile_AddImage(t *testing.T) {
	f := newFixture(t)
	f.api.handle("GET /company/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"company": models.Company{ID: "c1", Images: []string{}}})
	})
	var registered string
	f.api.handle("POST /company/{id}/images", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			URL string `json:"url"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		registered = body.URL
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	_, err := f.svc.CompanyProfile.GetProfile(ctx, f.company)
	require.NoError(t, err)

	url, err := f.svc.CompanyProfile.AddImage(ctx, f.company, storage.Upload{
		Filename: "office.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("png"),
	})
	require.NoError(t, err)
	assert.Equal(t, registered, url)
	assert.Equal(t, []string{url}, f.state(f.company).CompanyProfile.Profile.Images)

	_, err = os.Stat(filepath.Join(f.filesDir, filepath.FromSlash(strings.TrimPrefix(url, "/files/"))))
	assert.NoError(t, err)
}

func TestCompanyProfile_AddImageRollsBackFile(t *testing.T) {
	f := newFixture(t)
	f.api.handle("POST /company/{id}/images", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "Not your company"})
	})

	_, err := f.svc.CompanyProfile.AddImage(context.Background(), f.company, storage.Upload{
		Filename: "office.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("png"),
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))

	entries, err := os.ReadDir(filepath.Join(f.filesDir, "companies", "c1"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCompanyRoles_CreateRequiresPassword(t *testing.T) {
	f := newFixture(t)
	f.api.handle("POST /company-roles", func(w http.ResponseWriter, r *http.Request) {
		var in models.CompanyRoleInput
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "c1", in.CompanyID)
		writeJSON(w, http.StatusCreated, map[string]any{"role": models.CompanyRole{ID: "r1", Email: in.Email, Role: in.Role}})
	})
	ctx := context.Background()
	in := models.CompanyRoleInput{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Role: "recruiter"}

	_, err := f.svc.CompanyRoles.Create(ctx, f.company, in)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))

	in.Password = "s3cretpass"
	role, err := f.svc.CompanyRoles.Create(ctx, f.company, in)
	require.NoError(t, err)
	assert.Equal(t, "r1", role.ID)
	assert.Len(t, f.state(f.company).CompanyRoles.Roles, 1)
}

func TestRespondToOffer(t *testing.T) {
	f := newFixture(t)
	f.api.handle("GET /job-offers/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"offers": []models.JobOffer{{ID: "o1", Status: models.OfferStatusPending}}})
	})
	f.api.handle("PATCH /job-offers/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	_, err := f.svc.Offers.GetOffers(ctx, f.seeker)
	require.NoError(t, err)

	_, err = f.svc.Offers.RespondToOffer(ctx, f.seeker, "o1", "maybe")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidOperation))

	_, err = f.svc.Offers.RespondToOffer(ctx, f.seeker, "o1", models.OfferDecisionDecline)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusDeclined, f.state(f.seeker).Offers.Offers[0].Status)
}

func TestLoadReferenceData_CachesAcrossSessions(t *testing.T) {
	f := newFixture(t)
	f.api.handle("GET /app/skills", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"skills": []string{"Go"}})
	})
	f.api.handle("GET /app/sectors", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"sectors": []string{"IT"}})
	})
	f.api.handle("GET /app/benefits", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"benefits": []string{"Medical"}})
	})
	f.api.handle("GET /app/locations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"locations": []models.Location{{City: "Lahore", Province: "Punjab", Country: "Pakistan"}}})
	})
	ctx := context.Background()

	data, err := f.svc.Reference.LoadReferenceData(ctx, f.seeker, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, data.Skills)
	assert.Equal(t, 4, f.api.total())

	// та же сессия: из состояния
	_, err = f.svc.Reference.LoadReferenceData(ctx, f.seeker, false)
	require.NoError(t, err)
	// другая сессия: из общего кеша
	data, err = f.svc.Reference.LoadReferenceData(ctx, f.company, false)
	require.NoError(t, err)

	assert.Equal(t, 4, f.api.total())
	assert.Equal(t, 1, f.cache.sets)
	assert.Len(t, data.Locations, 1)
	assert.True(t, f.state(f.company).Reference.Loaded)
}

func TestLoadReferenceData_ForceBypassesRedisAndRewritesIt(t *testing.T) {
	f := newFixture(t)
	var version atomic.Int32
	f.api.handle("GET /app/skills", func(w http.ResponseWriter, r *http.Request) {
		skills := []string{"Go"}
		if version.Load() > 0 {
			skills = []string{"Go", "Rust"}
		}
		writeJSON(w, http.StatusOK, map[string]any{"skills": skills})
	})
	f.api.handle("GET /app/sectors", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"sectors": []string{"IT"}})
	})
	f.api.handle("GET /app/benefits", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"benefits": []string{"Medical"}})
	})
	f.api.handle("GET /app/locations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"locations": []models.Location{{City: "Lahore"}}})
	})
	ctx := context.Background()

	_, err := f.svc.Reference.LoadReferenceData(ctx, f.seeker, false)
	require.NoError(t, err)
	require.Equal(t, 1, f.cache.gets)
	require.Equal(t, 1, f.cache.sets)

	version.Store(1)
	data, err := f.svc.Reference.LoadReferenceData(ctx, f.seeker, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, data.Skills)
	assert.Equal(t, 8, f.api.total())
	assert.Equal(t, 1, f.cache.gets, "force не читает Redis")
	assert.Equal(t, 2, f.cache.sets)
	assert.Equal(t, []string{"Go", "Rust"}, f.state(f.seeker).Reference.Data.Skills)

	// другая сессия получает обновленный кеш
	data, err = f.svc.Reference.LoadReferenceData(ctx, f.company, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, data.Skills)
	assert.Equal(t, 8, f.api.total())
}
