package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/rewards/internal/model"
)

// Exists проверяет существование кода в реестре.
// Возвращает true если код занят, false если код свободен.
// Ошибку возвращает только при проблемах с хранилищем (не "not found")
func (r *Repository) Exists(ctx context.Context, code model.Code) (bool, error) {
	_, err := r.underlying.Lookup(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return true, nil
}
