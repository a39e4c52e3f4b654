package views

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"jobportal_front/internal/models"
	"jobportal_front/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildApplicantsTable_EmptyPending(t *testing.T) {
	slice := store.ApplicantsSlice{}
	slice.Succeed()
	slice.Set(models.ApplicationStatusPending, nil)

	table := BuildApplicantsTable(slice, models.ApplicationStatusPending, 1, 10)

	assert.Equal(t, "Showing 0 People", table.Header)
	assert.Empty(t, table.Rows)

	raw, err := json.Marshal(table)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"rows":[]`)
}

func TestBuildApplicantsTable_RowsAndActions(t *testing.T) {
	slice := store.ApplicantsSlice{}
	slice.Set("", []models.JobApplication{
		{ID: "a1", JobID: "j1", Status: models.ApplicationStatusAccepted, MatchedScore: 87.4,
			JobSeeker: &models.SeekerRef{FirstName: "Sara", LastName: "Khan"}, Job: &models.Job{Title: "QA"}},
		{ID: "a2", JobID: "j1", Status: models.ApplicationStatusRejected},
		{ID: "a3", JobID: "j2", Status: models.ApplicationStatusPending},
	})

	table := BuildApplicantsTable(slice, "", 1, 10)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "Showing 3 People", table.Header)

	first := table.Rows[0]
	assert.Equal(t, "Interviewing", first.StatusLabel)
	assert.Equal(t, "Sara Khan", first.Name)
	assert.Equal(t, "QA", first.JobTitle)
	assert.Equal(t, "87%", first.MatchedScore)
	assert.Equal(t, []models.ApplicationAction{models.ActionAccept, models.ActionReject}, first.Actions)

	assert.Empty(t, table.Rows[1].Actions)
	assert.Equal(t, []models.ApplicationAction{models.ActionShortlist, models.ActionReject}, table.Rows[2].Actions)

	filtered := BuildApplicantsTable(slice, models.ApplicationStatusPending, 1, 10)
	assert.Equal(t, "Showing 1 People", filtered.Header)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, p.Items)
	assert.Equal(t, 3, p.TotalPages)

	p = Paginate(items, 9, 2)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, []int{5}, p.Items)

	empty := Paginate([]int{}, 1, 0)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Empty(t, empty.Items)
	assert.Equal(t, DefaultPageSize, empty.PageSize)
}

func TestFilterJobs(t *testing.T) {
	jobs := []models.Job{
		{ID: "1", Title: "Go Developer"},
		{ID: "2", Title: "Designer", Skills: []string{"Figma"}},
		{ID: "3", Title: "Analyst", Company: &models.CompanyRef{Name: "Gopher Labs"}},
	}

	assert.Len(t, FilterJobs(jobs, ""), 3)
	ids := []string{}
	for _, j := range FilterJobs(jobs, "go") {
		ids = append(ids, j.ID)
	}
	assert.Equal(t, []string{"1", "3"}, ids)
	assert.Len(t, FilterJobs(jobs, "FIGMA"), 1)
}

func TestJobCards_Flags(t *testing.T) {
	var seeker store.JobSeekerSlice
	seeker.MarkApplied("j1")
	seeker.ApplyPending("j2")
	seeker.SetSaved([]models.Job{{ID: "j3"}})

	cards := JobCards([]models.Job{
		{ID: "j1", SalaryFrom: 50000, SalaryTo: 80000, CreatedAt: time.Now()},
		{ID: "j2"},
		{ID: "j3", Location: models.Location{City: "Lahore", Country: "Pakistan"}},
	}, seeker)

	assert.True(t, cards[0].Applied)
	assert.Equal(t, "50,000 - 80,000", cards[0].Salary)
	assert.False(t, cards[1].Applied)
	assert.Equal(t, "pending", cards[1].ApplyState)
	assert.True(t, cards[2].Saved)
	assert.Equal(t, "Lahore, Pakistan", cards[2].Location)
	assert.Equal(t, "Not disclosed", cards[2].Salary)

	assert.True(t, IsApplied(seeker, "j1"))
	assert.True(t, IsSaved(seeker, "j3"))
}

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "1,200,000", FormatSalary(1200000, 0))
	assert.Equal(t, "up to 999", FormatSalary(0, 999))
	assert.Equal(t, "500", FormatSalary(500, 500))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "87%", FormatScore(87.456))
	assert.Equal(t, "100%", FormatScore(140))
	assert.Equal(t, "0%", FormatScore(-3))
	assert.Equal(t, "0%", FormatScore(math.NaN()))
	assert.Equal(t, "100%", FormatScore(math.Inf(1)))
}
