package views

import (
	"fmt"
	"strings"
	"time"

	"jobportal_front/internal/models"
	"jobportal_front/internal/store"
)

// JobCard - карточка вакансии в списках соискателя
type JobCard struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"companyName,omitempty"`
	CompanyLogo string    `json:"companyLogo,omitempty"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	JobType     string    `json:"jobType"`
	Skills      []string  `json:"skills"`
	IsActive    bool      `json:"isActive"`
	Applied     bool      `json:"applied"`
	ApplyState  string    `json:"applyState,omitempty"`
	Saved       bool      `json:"saved"`
	PostedAt    time.Time `json:"postedAt"`
}

// FilterJobs - поиск по строке в названии, секторе, навыках и компании
func FilterJobs(jobs []models.Job, text string) []models.Job {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return jobs
	}
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if jobMatches(j, needle) {
			out = append(out, j)
		}
	}
	return out
}

func jobMatches(j models.Job, needle string) bool {
	fields := []string{j.Title, j.Sector, j.JobType, j.Location.City, j.Location.Country}
	if j.Company != nil {
		fields = append(fields, j.Company.Name)
	}
	fields = append(fields, j.Skills...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func SavedIDs(seeker store.JobSeekerSlice) map[string]bool {
	ids := make(map[string]bool, len(seeker.SavedJobs))
	for _, j := range seeker.SavedJobs {
		ids[j.ID] = true
	}
	return ids
}

func IsApplied(seeker store.JobSeekerSlice, jobID string) bool {
	return seeker.HasApplied(jobID)
}

func IsSaved(seeker store.JobSeekerSlice, jobID string) bool {
	return seeker.IsSaved(jobID)
}

// JobCards собирает карточки с отметками "откликнулся" и "сохранено"
func JobCards(jobs []models.Job, seeker store.JobSeekerSlice) []JobCard {
	saved := SavedIDs(seeker)
	cards := make([]JobCard, 0, len(jobs))
	for _, j := range jobs {
		card := NewJobCard(j)
		card.Saved = saved[j.ID]
		if e, ok := seeker.Entry(j.ID); ok {
			card.ApplyState = string(e.Kind)
			card.Applied = e.Kind == store.AppliedConfirmed
		}
		cards = append(cards, card)
	}
	return cards
}

func NewJobCard(j models.Job) JobCard {
	card := JobCard{
		ID:       j.ID,
		Title:    j.Title,
		Location: FormatLocation(j.Location),
		Salary:   FormatSalary(j.SalaryFrom, j.SalaryTo),
		JobType:  j.JobType,
		Skills:   append([]string{}, j.Skills...),
		IsActive: j.IsActive,
		PostedAt: j.CreatedAt,
	}
	if j.Company != nil {
		card.CompanyName = j.Company.Name
		card.CompanyLogo = j.Company.Logo
	}
	return card
}

func FormatLocation(l models.Location) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.Province, l.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// FormatSalary: 0 означает "не указано"
func FormatSalary(from, to int) string {
	switch {
	case from > 0 && to > 0 && from != to:
		return fmt.Sprintf("%s - %s", groupThousands(from), groupThousands(to))
	case from > 0:
		return groupThousands(from)
	case to > 0:
		return "up to " + groupThousands(to)
	default:
		return "Not disclosed"
	}
}

func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
