package forms

import (
	"strings"

	"jobportal_front/internal/models"
)

// LocationOptions - выпадающие списки страна -> провинция -> город,
// собранные из плоского списка /app/locations.
type LocationOptions struct {
	Countries []string            `json:"countries"`
	Provinces map[string][]string `json:"provinces"`
	Cities    map[string][]string `json:"cities"`
}

// DedupLocations сохраняет порядок первого появления. Пустые части пропускаются.
func DedupLocations(locations []models.Location) LocationOptions {
	opts := LocationOptions{
		Countries: []string{},
		Provinces: map[string][]string{},
		Cities:    map[string][]string{},
	}
	seen := map[string]bool{}

	add := func(key string) bool {
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	}

	for _, l := range locations {
		country := strings.TrimSpace(l.Country)
		province := strings.TrimSpace(l.Province)
		city := strings.TrimSpace(l.City)
		if country == "" {
			continue
		}
		if add("c\x00" + country) {
			opts.Countries = append(opts.Countries, country)
		}
		if province == "" {
			continue
		}
		if add("p\x00" + country + "\x00" + province) {
			opts.Provinces[country] = append(opts.Provinces[country], province)
		}
		if city == "" {
			continue
		}
		key := provinceKey(country, province)
		if add("t\x00" + key + "\x00" + city) {
			opts.Cities[key] = append(opts.Cities[key], city)
		}
	}
	return opts
}

func (o LocationOptions) ProvincesOf(country string) []string {
	return o.Provinces[country]
}

func (o LocationOptions) CitiesOf(country, province string) []string {
	return o.Cities[provinceKey(country, province)]
}

func provinceKey(country, province string) string {
	return country + "/" + province
}
