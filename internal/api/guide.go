package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tourmate-app/tourmate-cli/internal/models"
)

// SubmitGuideApplication posts the already-encoded multipart application
// payload. Encoding belongs to the wizard package; this method only moves
// bytes.
func (c *Client) SubmitGuideApplication(ctx context.Context, contentType string, body io.Reader) error {
	_, err := c.do(ctx, http.MethodPost, "/guide/register", contentType, body)
	return err
}

// GuideApplications fetches the moderation queue.
func (c *Client) GuideApplications(ctx context.Context) ([]models.GuideApplication, error) {
	env, err := c.getJSON(ctx, "/guide/applications")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.GuideApplication](env)
}

// SetApplicationStatus approves or rejects one application.
func (c *Client) SetApplicationStatus(ctx context.Context, id, status string) error {
	payload := struct {
		Status string `json:"status"`
	}{Status: status}
	_, err := c.patchJSON(ctx, fmt.Sprintf("/guide/applications/%s", id), payload)
	return err
}
