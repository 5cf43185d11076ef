// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "encoding/json"

// Nullable is a patch field over a nullable column. It distinguishes the
// three JSON states a plain pointer cannot: absent (leave the stored
// value), explicit null (clear the stored value), and a concrete value
// (replace the stored value).
type Nullable[T any] struct {
	Present bool
	Value   *T
}

// UnmarshalJSON records that the field appeared in the payload. A JSON
// null leaves Value nil, which Apply turns into a cleared column.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// NullableOf wraps a concrete value.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Present: true, Value: &v}
}

// NullableNull is a present explicit null.
func NullableNull[T any]() Nullable[T] {
	return Nullable[T]{Present: true}
}
