// SPDX-License-Identifier: EPL-2.0

package algo

import "errors"

var (
	// ErrProcessFailed is returned by a Stage when its unit reports !ok.
	ErrProcessFailed = errors.New("unit process failed")

	// ErrPortMismatch is returned by a Stage whose source cannot feed the unit.
	ErrPortMismatch = errors.New("source does not match unit input port")

	// ErrNilUnit is returned by NewStage when no unit is given.
	ErrNilUnit = errors.New("nil unit")
)
