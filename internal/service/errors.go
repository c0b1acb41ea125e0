package service

import "errors"

var (
	// ErrGenerationExhausted возвращается, когда все попытки получить уникальный код исчерпаны
	// (коллизии, ошибки реестра или их сочетание)
	ErrGenerationExhausted = errors.New("unique code generation exhausted")
)
