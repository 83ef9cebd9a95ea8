// SPDX-License-Identifier: EPL-2.0

package cliptrim

import "errors"

// ErrGainOutOfRange is returned by Export and ExportFile when the gain
// factor lies outside [0, MaxGain]. The underlying processor accepts any
// non-negative gain; the bound here matches the exposed control range.
var ErrGainOutOfRange = errors.New("gain outside the supported range")
