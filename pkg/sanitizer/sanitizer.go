package sanitizer

import "strings"

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func lower(s string) string {
	return strings.ToLower(s)
}

func SanitizeName(input string) string {
	return Pipeline{trim, TrimAndNormalize}.Apply(input)
}

func SanitizeEmail(input string) string {
	return Pipeline{trim, lower}.Apply(input)
}
