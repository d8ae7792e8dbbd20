package api

import (
	"context"
	"fmt"

	"github.com/tourmate-app/tourmate-cli/internal/models"
)

// Destinations fetches the full destination catalog. The list is filtered
// client-side; there is no server-side search parameter.
func (c *Client) Destinations(ctx context.Context) ([]models.Destination, error) {
	env, err := c.getJSON(ctx, "/destinations")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Destination](env)
}

// Destination fetches one destination for the detail view.
func (c *Client) Destination(ctx context.Context, id string) (*models.Destination, error) {
	env, err := c.getJSON(ctx, fmt.Sprintf("/destinations/%s", id))
	if err != nil {
		return nil, err
	}
	d, err := decodeData[models.Destination](env)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDestination is the admin create form: write-only, fire-and-forget.
// The caller refreshes the list with a full refetch.
func (c *Client) CreateDestination(ctx context.Context, d models.Destination) error {
	_, err := c.postJSON(ctx, "/destinations", d)
	return err
}

// Tours fetches the public tour catalog.
func (c *Client) Tours(ctx context.Context) ([]models.Tour, error) {
	env, err := c.getJSON(ctx, "/tours")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Tour](env)
}

// Tour fetches one tour for the detail view.
func (c *Client) Tour(ctx context.Context, id string) (*models.Tour, error) {
	env, err := c.getJSON(ctx, fmt.Sprintf("/tours/%s", id))
	if err != nil {
		return nil, err
	}
	t, err := decodeData[models.Tour](env)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
