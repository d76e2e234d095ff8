// SPDX-License-Identifier: MIT

package scalar

import "errors"

// ErrBadAngle indicates an angle literal that is neither "<n>", "<n>rad" nor "<n>deg".
var ErrBadAngle = errors.New("scalar: malformed angle")
