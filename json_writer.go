package carteira

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a stable field order,
// so persisted documents diff cleanly. Its zero value is ready to use.
type jsonObjectWriter struct {
	buf bytes.Buffer
	err error
}

// Append adds a "name": value pair to the object.
func (w *jsonObjectWriter) Append(name string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field %q: %w", name, err)
		return w
	}
	if w.buf.Len() > 0 {
		w.buf.WriteByte(',')
	}
	fmt.Fprintf(&w.buf, "%q:%s", name, raw)
	return w
}

// Optional adds a "name": value pair only if value is not the empty string.
func (w *jsonObjectWriter) Optional(name, value string) *jsonObjectWriter {
	if value == "" {
		return w
	}
	return w.Append(name, value)
}

// MarshalJSON returns the accumulated fields wrapped in braces.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	var out bytes.Buffer
	out.WriteByte('{')
	out.Write(w.buf.Bytes())
	out.WriteByte('}')
	return out.Bytes(), nil
}
