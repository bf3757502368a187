package telegram

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// Field is a single named request value: text, or a file when File is set.
type Field struct {
	Name  string
	Value string
	File  *InputFile
}

// Fields is an ordered, append-only set of request fields.
// Names are not deduplicated; insertion order is sent as-is.
type Fields struct {
	items []Field
}

// NewFields returns an empty field set.
func NewFields() *Fields {
	return &Fields{}
}

// Add appends name=value unconditionally.
func (f *Fields) Add(name, value string) *Fields {
	f.items = append(f.items, Field{Name: name, Value: value})
	return f
}

// AddIf appends name=value when cond holds and value is not blank.
func (f *Fields) AddIf(cond bool, name, value string) *Fields {
	if !cond || strings.TrimSpace(value) == "" {
		return f
	}
	return f.Add(name, value)
}

// AddString appends value when it is not blank.
func (f *Fields) AddString(name, value string) *Fields {
	return f.AddIf(true, name, value)
}

// AddInt appends an integer unconditionally.
func (f *Fields) AddInt(name string, v int64) *Fields {
	return f.Add(name, strconv.FormatInt(v, 10))
}

// AddIntIf appends an integer when cond holds.
func (f *Fields) AddIntIf(cond bool, name string, v int64) *Fields {
	if !cond {
		return f
	}
	return f.AddInt(name, v)
}

// AddFloat appends a float in its shortest exact decimal form.
func (f *Fields) AddFloat(name string, v float64) *Fields {
	return f.Add(name, strconv.FormatFloat(v, 'f', -1, 64))
}

// AddBool appends the token "true" when v is true and nothing otherwise.
func (f *Fields) AddBool(name string, v bool) *Fields {
	if !v {
		return f
	}
	return f.Add(name, "true")
}

// AddJSON appends v as compact JSON. Nil values are skipped.
func (f *Fields) AddJSON(name string, v any) error {
	if isNil(v) {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return &ValidationError{Field: name, Reason: "cannot encode as JSON", Err: err}
	}
	f.Add(name, string(b))
	return nil
}

// AddFile appends a binary part. A nil file is skipped.
func (f *Fields) AddFile(name string, file *InputFile) *Fields {
	if file == nil {
		return f
	}
	f.items = append(f.items, Field{Name: name, File: file})
	return f
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	return len(f.items)
}

// HasFile reports whether any field carries a binary stream.
func (f *Fields) HasFile() bool {
	for _, it := range f.items {
		if it.File != nil {
			return true
		}
	}
	return false
}

// All returns a copy of the fields in insertion order.
func (f *Fields) All() []Field {
	out := make([]Field, len(f.items))
	copy(out, f.items)
	return out
}

// Get returns the first value stored under name.
func (f *Fields) Get(name string) (string, bool) {
	for _, it := range f.items {
		if it.Name == name {
			return it.Value, true
		}
	}
	return "", false
}

// closeFiles releases every file reader that implements io.Closer.
func (f *Fields) closeFiles() {
	for _, it := range f.items {
		if it.File != nil {
			_ = it.File.Close()
		}
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
