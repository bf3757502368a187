package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// FileURL returns the download locator for a file returned by GetFile.
func (c *Client) FileURL(file *File) (string, error) {
	if file == nil {
		return "", &ValidationError{Field: "file", Reason: "must not be nil"}
	}
	if file.FilePath == "" {
		return "", &ValidationError{Field: "file_path", Reason: "missing", Err: ErrNoFilePath}
	}
	return fmt.Sprintf(fileURLTemplate, c.fileBaseURL, c.apiKey, file.FilePath), nil
}

// OpenFile streams the file contents. The caller must close the reader.
func (c *Client) OpenFile(ctx context.Context, file *File) (io.ReadCloser, error) {
	target, err := c.FileURL(file)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("download: build request: %w", c.scrub(err))
	}
	c.l.Debugf(ctx, "telegram.OpenFile: file_id=%s size=%d", file.FileID, file.FileSize)

	resp, err := c.transport().Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", ctxErr(ctx, c.scrub(err)))
	}

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return resp.Body, nil
	case resp.StatusCode == http.StatusBadGateway:
		resp.Body.Close()
		return nil, fmt.Errorf("download: %w", ErrServiceUnavailable)
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		resp.Body.Close()
		return nil, fmt.Errorf("download: %w", &TransportError{StatusCode: resp.StatusCode, Status: resp.Status, Body: raw})
	}
}

// CopyFile writes the file contents to w and returns the number of bytes copied.
func (c *Client) CopyFile(ctx context.Context, file *File, w io.Writer) (int64, error) {
	if w == nil {
		return 0, &ValidationError{Field: "destination", Reason: "must not be nil"}
	}
	rc, err := c.OpenFile(ctx, file)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	n, err := io.Copy(w, rc)
	if err != nil {
		return n, fmt.Errorf("download: copy: %w", ctxErr(ctx, err))
	}
	return n, nil
}

// DownloadFile saves the file to dst. An existing dst is left untouched unless
// overwrite is set, in which case it is removed before the new contents are written.
func (c *Client) DownloadFile(ctx context.Context, file *File, dst string, overwrite bool) error {
	if err := requireNonBlank("destination", dst); err != nil {
		return err
	}

	exists, err := pathExists(dst)
	if err != nil {
		return fmt.Errorf("download: stat %s: %w", dst, err)
	}
	if exists && !overwrite {
		return &ValidationError{Field: "destination", Reason: dst + " already exists", Err: ErrFileExists}
	}

	rc, err := c.OpenFile(ctx, file)
	if err != nil {
		return err
	}
	defer rc.Close()

	if exists {
		if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("download: remove %s: %w", dst, err)
		}
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return &ValidationError{Field: "destination", Reason: dst + " already exists", Err: ErrFileExists}
		}
		return fmt.Errorf("download: create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("download: copy: %w", ctxErr(ctx, err))
	}
	return out.Close()
}

// DownloadFileByID resolves fileID with GetFile and saves it to dst.
func (c *Client) DownloadFileByID(ctx context.Context, fileID, dst string, overwrite bool) (*File, error) {
	file, err := c.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if err := c.DownloadFile(ctx, file, dst, overwrite); err != nil {
		return file, err
	}
	return file, nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
