// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"gopkg.in/yaml.v3"
)

// Encode returns the canonical text form of d, YYYY/MM/DD.
func Encode(d Date) string {
	return d.String()
}

// Decode parses text in any of the formats accepted by ParseFlexible.
// The returned error is a *DecodeError.
func Decode(text string) (Date, error) {
	d, err := ParseFlexible(text)
	if err != nil {
		return Date{}, &DecodeError{Input: text, Err: err}
	}
	return d, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(Encode(d)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	n, err := Decode(string(text))
	if err != nil {
		return err
	}
	*d = n
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return Encode(d), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// MarshalText implements encoding.TextMarshaler using the '<from>:<to>'
// format accepted by Range.Parse.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(Encode(r.start) + ":" + Encode(r.end)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Range) UnmarshalText(text []byte) error {
	if err := r.Parse(string(text)); err != nil {
		return &DecodeError{Input: string(text), Err: err}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Range) MarshalYAML() (any, error) {
	text, _ := r.MarshalText()
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	return r.UnmarshalText([]byte(node.Value))
}

// MarshalText implements encoding.TextMarshaler.
func (s Span) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Span) UnmarshalText(text []byte) error {
	return s.Parse(string(text))
}
