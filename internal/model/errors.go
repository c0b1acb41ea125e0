package model

import "errors"

var (
	ErrNotFound        = errors.New("code not found")
	ErrAlreadyExists   = errors.New("code already exists")
	ErrAlreadyRedeemed = errors.New("reward already redeemed")
)
