// SPDX-License-Identifier: MIT

package imagegrid

import (
	"fmt"
	"image"
)

// rectErrorf tags a grid sentinel with the operation and rectangle.
func rectErrorf(op string, r image.Rectangle, err error) error {
	return fmt.Errorf("imagegrid.%s%v: %w", op, r, err)
}
