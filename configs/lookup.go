package configs

import (
	"errors"
	"fmt"
)

// Lookup is First with an explicit result, for settings whose zero value is meaningful.
func Lookup[T any](loader Loader, path string) (ret T, ok bool, err error) {
	if err := loader.AssignFirst(path, &ret); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return ret, false, nil
		}
		return ret, false, fmt.Errorf("config %s: %w", path, err)
	}
	return ret, true, nil
}
