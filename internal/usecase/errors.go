package usecase

import "errors"

var (
	ErrEmptyDescription   = errors.New("empty description")
	ErrInvalidDescription = errors.New("description is too long")
	ErrInvalidEmail       = errors.New("invalid customer email")
	ErrInvalidCode        = errors.New("invalid reward code")
	ErrInvalidBatchSize   = errors.New("invalid batch size")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrAlreadyRedeemed    = errors.New("reward already redeemed")
	ErrServiceUnavailable = errors.New("service unavailable")
)
