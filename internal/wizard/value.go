package wizard

import (
	"strconv"
	"strings"
)

// Kind tags the union of values a form field can hold.
type Kind int

const (
	KindText Kind = iota
	KindBool
	KindFile
)

// Value is one field's value: free text, a checkbox, or a local file path
// standing in for an upload. The zero Value is an empty text field.
type Value struct {
	kind Kind
	text string
	set  bool
}

func Text(s string) Value { return Value{kind: KindText, text: s, set: true} }

func Bool(b bool) Value {
	return Value{kind: KindBool, text: strconv.FormatBool(b), set: true}
}

// File records the path of a file chosen for upload. Choosing a file for a
// field that already has one replaces it.
func File(path string) Value { return Value{kind: KindFile, text: path, set: true} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Text() string {
	if v.kind == KindFile {
		return ""
	}
	return v.text
}

func (v Value) Bool() bool { return v.kind == KindBool && v.text == "true" }

func (v Value) Path() string {
	if v.kind != KindFile {
		return ""
	}
	return v.text
}

// Blank reports whether the value fails a required-non-empty check.
func (v Value) Blank() bool {
	if !v.set {
		return true
	}
	switch v.kind {
	case KindFile:
		return v.text == ""
	case KindBool:
		return v.text != "true"
	default:
		return strings.TrimSpace(v.text) == ""
	}
}

// Fields is the cumulative field map of a wizard: the union of every step's
// fields, populated incrementally and never reset between steps.
type Fields map[string]Value

func (f Fields) Get(name string) Value { return f[name] }

// Split partitions the fields into multipart string values and file parts,
// keyed by field name, for the outbound registration request. Unset fields
// are omitted, matching the original form which skipped null entries.
func (f Fields) Split() (values map[string]string, files map[string]string) {
	values = map[string]string{}
	files = map[string]string{}
	for name, v := range f {
		if !v.set {
			continue
		}
		if v.kind == KindFile {
			if v.text != "" {
				files[name] = v.text
			}
			continue
		}
		values[name] = v.text
	}
	return values, files
}

// Clone returns an independent copy; submission hands the caller a snapshot
// so later edits cannot mutate an in-flight request payload.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
