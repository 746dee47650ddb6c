// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	// ErrNotMP3 indicates the stream has no decodable MPEG audio frame
	ErrNotMP3 = errors.New("not an MP3 stream")
)
