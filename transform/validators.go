// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/openmath/vector"
)

// validateAxis rejects directions whose length is at or below eps.
func validateAxis(method, name string, v vector.Vec3, eps float64) error {
	if l := v.Length(); !(l > eps) {
		return fmt.Errorf("%s: %s %v has length %g: %w", method, name, v, l, ErrDegenerateAxis)
	}
	return nil
}

// validateExtent rejects an interval [lo,hi] with |hi-lo| <= eps.
func validateExtent(method, name string, lo, hi, eps float64) error {
	if !(math.Abs(hi-lo) > eps) {
		return fmt.Errorf("%s: %s extent [%g,%g]: %w", method, name, lo, hi, ErrDegenerateVolume)
	}
	return nil
}

// validateRatio requires ratio > 0. NaN fails the comparison.
func validateRatio(method string, ratio float64) error {
	if !(ratio > 0) {
		return fmt.Errorf("%s: ratio=%g: %w", method, ratio, ErrBadRatio)
	}
	return nil
}
