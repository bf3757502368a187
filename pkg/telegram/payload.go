package telegram

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const (
	contentTypeForm = "application/x-www-form-urlencoded"
)

// InputFile is a named byte stream uploaded as a multipart part.
// Name is sent as the part's file name.
type InputFile struct {
	Name   string
	Reader io.Reader
}

// NewInputFile wraps r. If r implements io.Closer it is closed once the
// request that carries it completes.
func NewInputFile(name string, r io.Reader) *InputFile {
	return &InputFile{Name: name, Reader: r}
}

// OpenInputFile opens a local file for upload, named after its base name.
func OpenInputFile(path string) (*InputFile, error) {
	if err := requireNonBlank("path", path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ValidationError{Field: "path", Reason: "file does not exist: " + path, Err: err}
		}
		return nil, fmt.Errorf("telegram: open %s: %w", path, err)
	}
	return &InputFile{Name: filepath.Base(path), Reader: f}, nil
}

// Close closes the underlying reader if it is closable.
func (f *InputFile) Close() error {
	if c, ok := f.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// encode picks the wire body: multipart when any field is binary, url-encoded otherwise.
// A multipart body is streamed, so uploads are read only while the request is sent.
func encode(ctx context.Context, fields *Fields) (io.Reader, string, error) {
	if fields.HasFile() {
		body, contentType := encodeMultipart(ctx, fields)
		return body, contentType, nil
	}
	return strings.NewReader(encodeForm(fields)), contentTypeForm, nil
}

// encodeForm keeps insertion order, which url.Values.Encode would sort away.
func encodeForm(fields *Fields) string {
	var b strings.Builder
	for i, it := range fields.items {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(it.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(it.Value))
	}
	return b.String()
}

// encodeMultipart writes the parts into a pipe from its own goroutine. The pipe
// is closed with ctx's error once ctx ends, so a stalled upload source cannot
// hold the request open.
func encodeMultipart(ctx context.Context, fields *Fields) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	w := multipart.NewWriter(pw)

	stop := context.AfterFunc(ctx, func() {
		pw.CloseWithError(ctx.Err())
	})
	go func() {
		defer stop()
		pw.CloseWithError(writeMultipart(ctx, w, fields))
	}()
	return pr, w.FormDataContentType()
}

func writeMultipart(ctx context.Context, w *multipart.Writer, fields *Fields) error {
	for _, it := range fields.items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if it.File == nil {
			if err := w.WriteField(it.Name, it.Value); err != nil {
				return fmt.Errorf("write field %s: %w", it.Name, err)
			}
			continue
		}

		name := it.File.Name
		if name == "" {
			name = it.Name
		}
		part, err := w.CreateFormFile(it.Name, name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", it.Name, err)
		}
		if it.File.Reader != nil {
			if _, err := io.Copy(part, ctxReader{ctx: ctx, r: it.File.Reader}); err != nil {
				return fmt.Errorf("copy part %s: %w", it.Name, err)
			}
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}
	return nil
}

// ctxReader stops reading once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
