package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RawRecord is one loosely-typed record from an upstream bank feed.
// Nothing about its keys or value shapes is guaranteed.
type RawRecord map[string]interface{}

// Get returns the value stored under key. A key holding JSON null is
// reported as absent.
func (r RawRecord) Get(key string) (interface{}, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// SetDefault stores value under key unless a non-null value is already there.
func (r RawRecord) SetDefault(key string, value interface{}) {
	if _, ok := r.Get(key); ok {
		return
	}
	r[key] = value
}

// Clone returns a shallow copy of the record.
func (r RawRecord) Clone() RawRecord {
	if r == nil {
		return nil
	}
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Value implements driver.Valuer interface
func (r RawRecord) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(map[string]interface{}(r))
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(b), nil
}

func (r *RawRecord) Scan(value interface{}) error {
	b, err := scanBytes(value, "RawRecord")
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*r = nil
		return nil
	}
	var m map[string]interface{}
	if err := decodeJSON(b, &m); err != nil {
		return err
	}
	*r = m
	return nil
}

// RawRecords is an ordered list of raw feed records stored as a JSON array.
type RawRecords []RawRecord

// Value implements driver.Valuer interface
func (rs RawRecords) Value() (driver.Value, error) {
	if rs == nil {
		return "[]", nil
	}
	b, err := json.Marshal(rs)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (rs *RawRecords) Scan(value interface{}) error {
	b, err := scanBytes(value, "RawRecords")
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*rs = RawRecords{}
		return nil
	}
	var out RawRecords
	if err := decodeJSON(b, &out); err != nil {
		return err
	}
	if out == nil {
		out = RawRecords{}
	}
	*rs = out
	return nil
}

// DecodeRawRecords parses a JSON array of objects. Numbers are kept as
// json.Number so balances survive without float rounding.
func DecodeRawRecords(data []byte) (RawRecords, error) {
	var out RawRecords
	if err := decodeJSON(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeJSON(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func scanBytes(value interface{}, target string) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("cannot scan %T into %s", value, target)
	}
}
