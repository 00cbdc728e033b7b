package api

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// Form is a multipart/form-data body. Fields and files keep insertion order;
// a name may repeat (e.g. several "images").
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct{ name, value string }

type formFile struct {
	field, filename string
	open            func() (io.ReadCloser, error)
}

func NewForm() *Form { return &Form{} }

// Set appends a text field. Empty values are sent as-is.
func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, formField{name, value})
	return f
}

// SetIf appends a text field only when value is non-empty.
func (f *Form) SetIf(name, value string) *Form {
	if value != "" {
		f.Set(name, value)
	}
	return f
}

// AddFile appends a file part read from path at encode time.
func (f *Form) AddFile(field, path string) *Form {
	f.files = append(f.files, formFile{
		field:    field,
		filename: filepath.Base(path),
		open:     func() (io.ReadCloser, error) { return os.Open(path) },
	})
	return f
}

// AddReader appends a file part with in-memory content.
func (f *Form) AddReader(field, filename string, data []byte) *Form {
	f.files = append(f.files, formFile{
		field:    field,
		filename: filename,
		open:     func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	})
	return f
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", err
		}
	}

	for _, ff := range f.files {
		if err := f.copyFile(w, ff); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func (f *Form) copyFile(w *multipart.Writer, ff formFile) error {
	src, err := ff.open()
	if err != nil {
		return fmt.Errorf("open %s: %w", ff.filename, err)
	}
	defer src.Close()

	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(ff.filename)))
	if ct == "" {
		ct = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, ff.field, ff.filename))
	h.Set("Content-Type", ct)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, src)
	return err
}
