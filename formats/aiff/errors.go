// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the stream is not a FORM/AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates a sample width other than 16, 24 or 32
	ErrUnsupportedBitDepth = errors.New("only 16, 24 and 32-bit AIFF is supported")
)
