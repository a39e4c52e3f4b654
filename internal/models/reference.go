package models

// ReferenceData - справочники для выпадающих списков формы вакансии и профиля
type ReferenceData struct {
	Skills    []string   `json:"skills"`
	Sectors   []string   `json:"sectors"`
	Benefits  []string   `json:"benefits"`
	Locations []Location `json:"locations"`
}

func (r ReferenceData) Empty() bool {
	return len(r.Skills) == 0 && len(r.Sectors) == 0 && len(r.Benefits) == 0 && len(r.Locations) == 0
}
