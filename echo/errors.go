// SPDX-License-Identifier: EPL-2.0

package echo

import "errors"

var (
	ErrNotMono      = errors.New("echo canceller needs mono sources")
	ErrRateMismatch = errors.New("microphone and reference sample rates differ")
)
