package lang

import (
	"fmt"
	"strings"
)

// Language is the natural language a commit message is written in
type Language string

const (
	English            Language = "en"
	ChineseSimplified  Language = "zh"
	ChineseTraditional Language = "zh-tw"
	Japanese           Language = "ja"
	Korean             Language = "ko"
	German             Language = "de"
	French             Language = "fr"
	Spanish            Language = "es"
)

var names = map[Language]string{
	English:            "English",
	ChineseSimplified:  "Simplified Chinese",
	ChineseTraditional: "Traditional Chinese",
	Japanese:           "Japanese",
	Korean:             "Korean",
	German:             "German",
	French:             "French",
	Spanish:            "Spanish",
}

// String returns the language code
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the language is supported
func (l Language) IsValid() bool {
	_, ok := names[l]
	return ok
}

// Name returns the English name of the language, suitable for a model instruction
func (l Language) Name() string {
	if name, ok := names[l]; ok {
		return name
	}
	return string(l)
}

// DefaultLanguage returns the default language
func DefaultLanguage() Language {
	return English
}

// Parse converts a language code into a Language.
// Matching is case-insensitive; an empty code yields the default language.
func Parse(code string) (Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return DefaultLanguage(), nil
	}
	l := Language(code)
	if !l.IsValid() {
		return "", fmt.Errorf("unsupported language %q", code)
	}
	return l, nil
}
