package application

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/void-bridge/internal/domain"
)

const (
	ShutdownCommand = "__shutdown__"
	RegisterCommand = "register"
)

var errNotObject = errors.New("payload must be a JSON object")

// request is one decoded payload. Numbers stay json.Number so configuration
// fingerprints reflect the literal request text.
type request map[string]any

func parseRequest(line string) (request, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("extra data after JSON value at offset %d", dec.InputOffset())
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, errNotObject
	}

	return request(obj), nil
}

// command returns the command name and whether it was a JSON string. Non-string
// values are rendered as JSON text, "null" when absent.
func (r request) command() (string, bool) {
	raw, ok := r["command"]
	if s, isString := raw.(string); ok && isString {
		return s, true
	}
	return jsonText(raw), false
}

func (r request) config() (domain.ManagerConfig, bool) {
	cfg, ok := r["config"].(map[string]any)
	if !ok {
		return nil, false
	}
	return domain.ManagerConfig(cfg), true
}

// decodeField decodes field name into dst. It reports false when the field is
// absent or null, leaving dst untouched.
func (r request) decodeField(name string, dst any) (bool, error) {
	raw, ok := r[name]
	if !ok || raw == nil {
		return false, nil
	}
	return true, decodeValue(name, raw, dst)
}

// requireStrings returns field name as a list of strings; absent and null are
// both missing.
func (r request) requireStrings(name string) ([]string, error) {
	raw, ok := r[name]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%w %q", domain.ErrMissingField, name)
	}
	return stringList(name, raw)
}

// stringList converts a JSON array to strings. Non-string elements keep their
// JSON text, so an id of 7 becomes "7" and null becomes "null". A null list is
// empty.
func stringList(name string, raw any) ([]string, error) {
	if raw == nil {
		return []string{}, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("decode field %q: expected an array, got %s", name, jsonText(raw))
	}

	list := make([]string, len(items))
	for i, item := range items {
		if s, isString := item.(string); isString {
			list[i] = s
			continue
		}
		list[i] = jsonText(item)
	}
	return list, nil
}

func jsonText(v any) string {
	text, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(text)
}

func decodeValue(name string, raw any, dst any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode field %q: %w", name, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode field %q: %w", name, err)
	}
	return nil
}
