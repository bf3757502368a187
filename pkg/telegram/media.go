package telegram

// Media is a file argument: either a new upload or a reference to a file
// the server already knows (a file id or an HTTP URL).
type Media struct {
	ref  string
	file *InputFile
}

// MediaRef refers to an existing file id or URL.
func MediaRef(idOrURL string) Media {
	return Media{ref: idOrURL}
}

// MediaUpload uploads f as a multipart part.
func MediaUpload(f *InputFile) Media {
	return Media{file: f}
}

// IsUpload reports whether the media carries bytes to upload.
func (m Media) IsUpload() bool {
	return m.file != nil
}

func (m Media) validate(field string) error {
	if m.file != nil {
		if m.file.Reader == nil {
			return &ValidationError{Field: field, Reason: "upload has no reader"}
		}
		return requireNonBlank(field+" file name", m.file.Name)
	}
	return requireNonBlank(field, m.ref)
}

func (m Media) add(fields *Fields, name string) {
	if m.file != nil {
		fields.AddFile(name, m.file)
		return
	}
	fields.Add(name, m.ref)
}

func (m Media) close() {
	if m.file != nil {
		_ = m.file.Close()
	}
}
