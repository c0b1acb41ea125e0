package service

import (
	"fmt"

	"github.com/avc-dev/rewards/internal/model"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// codeAlphabet URL-безопасный алфавит; после нормализации в коде остаются только [0-9A-Z]
const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// NanoidGenerator генерирует коды через crypto/rand
type NanoidGenerator struct{}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *NanoidGenerator {
	return &NanoidGenerator{}
}

// GenerateCode генерирует случайный код длины model.CodeLength в верхнем регистре
func (g *NanoidGenerator) GenerateCode() (model.Code, error) {
	raw, err := gonanoid.Generate(codeAlphabet, model.CodeLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	return model.NormalizeCode(raw), nil
}
