// SPDX-License-Identifier: EPL-2.0

package stft

import "errors"

// ErrConfig is returned for a window or hop size that cannot be used: the
// window must be positive and the hop must be in (0, window].
var ErrConfig = errors.New("stft: invalid window geometry")
