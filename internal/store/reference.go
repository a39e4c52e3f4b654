package store

import (
	"slices"

	"jobportal_front/internal/models"
)

type ReferenceSlice struct {
	Request
	Data   models.ReferenceData `json:"data"`
	Loaded bool                 `json:"loaded"`
}

func (s *ReferenceSlice) Set(d models.ReferenceData) {
	s.Data = models.ReferenceData{
		Skills:    slices.Clone(d.Skills),
		Sectors:   slices.Clone(d.Sectors),
		Benefits:  slices.Clone(d.Benefits),
		Locations: slices.Clone(d.Locations),
	}
	s.Loaded = true
}
