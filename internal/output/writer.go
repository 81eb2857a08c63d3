package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// ErrReported signals that an error body has already been written to
// the output stream and the process should exit nonzero. It carries no
// message of its own; the document on stdout is the user-facing error.
var ErrReported = errors.New("error body emitted")

// Emitter writes command results to a single stream as JSON. Every
// invocation produces exactly one JSON document: the payload on
// success, {"error": message} on failure.
type Emitter struct {
	out    io.Writer
	pretty bool
	strict bool
}

// NewEmitter creates an Emitter. With pretty set, documents are
// indented with two spaces; otherwise they are compact single lines.
// With strict set, Fail returns ErrReported so the caller can exit
// nonzero; otherwise error bodies keep the zero exit code.
func NewEmitter(out io.Writer, pretty, strict bool) *Emitter {
	return &Emitter{out: out, pretty: pretty, strict: strict}
}

// Result writes the payload document. A nil slice renders as [] so an
// empty result is never printed as null.
func (e *Emitter) Result(v interface{}) error {
	if rv := reflect.ValueOf(v); v == nil || (rv.Kind() == reflect.Slice && rv.IsNil()) {
		v = []interface{}{}
	}

	var (
		data []byte
		err  error
	)
	if e.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if _, err := e.out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// Error writes the uniform error document.
func (e *Emitter) Error(msg string) error {
	return e.Result(map[string]string{"error": msg})
}

// Fail writes the uniform error document and applies the configured
// exit contract.
func (e *Emitter) Fail(msg string) error {
	if err := e.Error(msg); err != nil {
		return err
	}
	if e.strict {
		return ErrReported
	}
	return nil
}
