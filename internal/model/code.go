package model

import (
	"regexp"
	"strings"
)

// CodeLength длина кода награды
const CodeLength = 8

var codePattern = regexp.MustCompile(`^[0-9A-Z]{8}$`)

// Code короткий код награды, 8 символов [0-9A-Z]
type Code string

func (c Code) String() string {
	return string(c)
}

// Valid проверяет, что код соответствует формату выдаваемых кодов
func (c Code) Valid() bool {
	return codePattern.MatchString(string(c))
}

// NormalizeCode приводит введённый код к каноничному виду (без пробелов, в верхнем регистре)
func NormalizeCode(raw string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(raw)))
}
