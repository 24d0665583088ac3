package supabase

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/getmingle/mingle/pkg/models"
)

const objectPath = "/storage/v1/object/"

// Upload stores data at bucket/path, overwriting any prior object at the
// same path.
func (c *Client) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	headers := map[string]string{
		"Content-Type": contentType,
		"x-upsert":     "true",
	}
	body, status, err := c.do(
		ctx,
		http.MethodPost,
		objectPath+bucket+"/"+path,
		nil,
		headers,
		bytes.NewReader(data),
	)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return models.NewStorageError(storageMessage("upload", bucket+"/"+path, status, body), nil)
	}
	return nil
}

// PublicURL returns the deterministic public URL for an uploaded object.
func (c *Client) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s%spublic/%s/%s", c.projectURL, objectPath, bucket, path)
}
