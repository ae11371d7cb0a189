package apiclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/renato0307/hotline/internal/adapters/httpapi"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/services"
)

// Sounds lists the server's sound library
func (c *Client) Sounds(ctx context.Context) ([]domain.SoundAsset, error) {
	var assets []domain.SoundAsset
	err := c.do(ctx, http.MethodGet, "/api/sounds", nil, nil, &assets)
	return assets, err
}

// UploadSounds sends local files in one multipart request. Per file outcomes
// are returned even when the server rejects all of them.
func (c *Client) UploadSounds(ctx context.Context, paths ...string) ([]services.UploadResult, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no files to upload", domain.ErrInvalidUpload)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeUploadParts(mw, paths))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/api/sounds", nil), pr)
	if err != nil {
		_ = pr.Close()
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rsp, err := c.send(req)
	_ = pr.Close()
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && len(statusErr.Files) > 0 {
			return statusErr.Files, err
		}
		return nil, err
	}
	defer rsp.Body.Close()

	var body httpapi.UploadResponse
	if err := decodeJSON(rsp.Body, &body); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return body.Files, nil
}

func writeUploadParts(mw *multipart.Writer, paths []string) error {
	for _, path := range paths {
		if err := writeUploadPart(mw, path); err != nil {
			return err
		}
	}
	return mw.Close()
}

func writeUploadPart(mw *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	name := filepath.Base(path)
	contentType := domain.SoundContentType(name)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="sound"; filename=%q`, name))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}

// DeleteSound removes a file from the library
func (c *Client) DeleteSound(ctx context.Context, filename string) error {
	return c.do(ctx, http.MethodDelete, "/api/sounds/"+url.PathEscape(filename), nil, nil, nil)
}

// SoundDownload is the outcome of a conditional sound fetch. Body is nil when
// NotModified is set; otherwise the caller closes it.
type SoundDownload struct {
	Body        io.ReadCloser
	ModifiedAt  time.Time
	NotModified bool
}

// DownloadSound fetches the audio bytes of filename. A non zero since turns
// the request into a conditional GET.
func (c *Client) DownloadSound(ctx context.Context, filename string, since time.Time) (SoundDownload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/sounds/play/"+url.PathEscape(filename), nil), nil)
	if err != nil {
		return SoundDownload{}, fmt.Errorf("failed to create request: %w", err)
	}
	if !since.IsZero() {
		req.Header.Set("If-Modified-Since", since.UTC().Format(http.TimeFormat))
	}

	rsp, err := c.h.Do(req)
	if err != nil {
		return SoundDownload{}, fmt.Errorf("GET %s: %w", req.URL.Path, err)
	}

	switch {
	case rsp.StatusCode == http.StatusNotModified:
		rsp.Body.Close()
		return SoundDownload{ModifiedAt: since, NotModified: true}, nil
	case rsp.StatusCode != http.StatusOK:
		defer rsp.Body.Close()
		return SoundDownload{}, readStatusError(rsp)
	}

	modified, err := http.ParseTime(rsp.Header.Get("Last-Modified"))
	if err != nil {
		modified = time.Now()
	}
	return SoundDownload{Body: rsp.Body, ModifiedAt: modified}, nil
}
