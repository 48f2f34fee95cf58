// SPDX-License-Identifier: MIT

package sdfmesh

import (
	"errors"
	"fmt"
)

// ErrNilField indicates FromSDF3 was called with a nil field.
var ErrNilField = errors.New("sdfmesh: nil signed distance field")

// Operation tags for error wrapping.
const opFromSDF3 = "FromSDF3"

// meshErrorf wraps err with an operation tag; err must be non-nil.
func meshErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
