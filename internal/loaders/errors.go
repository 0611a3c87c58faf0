package loaders

import (
	"errors"
	"fmt"
)

// ErrBatchLoadFailed marks a file whose load was aborted. Files committed
// before the failing one remain intact.
var ErrBatchLoadFailed = errors.New("batch load failed")

func errLoadFailed(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrBatchLoadFailed, path, cause)
}
