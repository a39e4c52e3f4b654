package apiclient

import (
	"context"

	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
)

type locationsEnvelope struct {
	Locations []models.Location `json:"locations"`
}

type namesEnvelope struct {
	Skills   []string `json:"skills"`
	Sectors  []string `json:"sectors"`
	Benefits []string `json:"benefits"`
}

// Locations - GET /app/locations, плоский список {city, province, country}
func (c *Client) Locations(ctx context.Context, creds session.Credentials) ([]models.Location, error) {
	var out locationsEnvelope
	err := c.get(ctx, creds, "reference", "/app/locations", nil, &out)
	return out.Locations, err
}

func (c *Client) Skills(ctx context.Context, creds session.Credentials) ([]string, error) {
	var out namesEnvelope
	err := c.get(ctx, creds, "reference", "/app/skills", nil, &out)
	return out.Skills, err
}

func (c *Client) Sectors(ctx context.Context, creds session.Credentials) ([]string, error) {
	var out namesEnvelope
	err := c.get(ctx, creds, "reference", "/app/sectors", nil, &out)
	return out.Sectors, err
}

func (c *Client) Benefits(ctx context.Context, creds session.Credentials) ([]string, error) {
	var out namesEnvelope
	err := c.get(ctx, creds, "reference", "/app/benefits", nil, &out)
	return out.Benefits, err
}
