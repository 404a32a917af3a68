package localize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode normalizes a JSON translation table into a Localization. Three
// document shapes are accepted, tried in order, first match wins:
//
//  1. [{"key": K, "value": V}, ...]
//  2. [{"Key": K, "Value": V}, ...]
//  3. {K1: V1, K2: V2, ...}
//
// Member names are matched case-sensitively per shape, keys and values must be
// strings, and extra members in pair objects are ignored. Keys are uppercased
// during normalization; when two entries collide after uppercasing, the later
// one in document order wins. Decoding is all-or-nothing: a single bad element
// fails the whole document, and a document matching no shape yields an error
// wrapping ErrInvalidDocument along with the failure of each attempted shape.
// Both [] and {} decode to an empty table.
func Decode(data []byte) (Localization, error) {
	entries, err := decodeEntries(data)
	if err != nil {
		return Localization{}, err
	}
	return Localization{entries: entries}, nil
}

// UnmarshalJSON implements json.Unmarshaler with the same shape handling as
// Decode, so a Localization can sit directly inside caller-defined structs.
// A JSON null leaves the receiver untouched, per convention.
func (l *Localization) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	entries, err := decodeEntries(data)
	if err != nil {
		return err
	}
	l.entries = entries
	return nil
}

// MarshalJSON encodes the table as a flat object with its canonical uppercased
// keys, the third of the shapes Decode accepts. Keys are emitted in sorted
// order.
func (l Localization) MarshalJSON() ([]byte, error) {
	if l.entries == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(l.entries)
}

// decodeEntries tries each supported shape in order and returns the folded
// entries of the first that decodes.
func decodeEntries(data []byte) (map[string]string, error) {
	entries, errLower := decodePairs(data, "key", "value")
	if errLower == nil {
		return entries, nil
	}
	entries, errUpper := decodePairs(data, "Key", "Value")
	if errUpper == nil {
		return entries, nil
	}
	entries, errObject := decodeObject(data)
	if errObject == nil {
		return entries, nil
	}
	return nil, errors.Join(ErrInvalidDocument,
		fmt.Errorf(`pair list with "key"/"value" members: %w`, errLower),
		fmt.Errorf(`pair list with "Key"/"Value" members: %w`, errUpper),
		fmt.Errorf("flat object: %w", errObject),
	)
}

// decodePairs decodes an array of pair objects, reading the named members
// case-sensitively. encoding/json matches struct fields case-insensitively,
// so elements go through raw maps instead.
func decodePairs(data []byte, keyName, valueName string) (map[string]string, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errors.New("expected an array")
		}
		return nil, err
	}
	if elems == nil {
		return nil, errors.New("expected an array")
	}

	entries := make(map[string]string, len(elems))
	for i, raw := range elems {
		var members map[string]json.RawMessage
		if err := json.Unmarshal(raw, &members); err != nil {
			return nil, fmt.Errorf("element %d is not an object", i)
		}
		key, err := stringMember(members, keyName)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		value, err := stringMember(members, valueName)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		entries[upperKey(key)] = value
	}
	return entries, nil
}

// stringMember extracts the named member as a string. Decoding through a
// pointer distinguishes a JSON null from an empty string; null is rejected.
func stringMember(members map[string]json.RawMessage, name string) (string, error) {
	raw, ok := members[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingField, name)
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidField, name)
	}
	return *s, nil
}

// decodeObject decodes a flat object of string properties. It walks tokens
// rather than unmarshaling into a map so that properties colliding after
// uppercasing fold in document order.
func decodeObject(data []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected an object")
	}

	entries := make(map[string]string)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected property name token %v", tok)
		}
		var value *string
		if err := dec.Decode(&value); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return nil, fmt.Errorf("property %q: %w", key, ErrInvalidField)
			}
			return nil, err
		}
		if value == nil {
			return nil, fmt.Errorf("property %q: %w", key, ErrInvalidField)
		}
		entries[upperKey(key)] = *value
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the table object")
	}
	return entries, nil
}
