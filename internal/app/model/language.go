package model

import (
	"fmt"
	"strings"
)

// Language is the audio language hint sent with a transcription request.
type Language string

const (
	LanguageAuto       Language = "Auto-detect"
	LanguagePortuguese Language = "Portuguese (Brazil)"
	LanguageEnglish    Language = "English (US)"
	LanguageSpanish    Language = "Spanish"
	LanguageFrench     Language = "French"
	LanguageGerman     Language = "German"
	LanguageItalian    Language = "Italian"
	LanguageJapanese   Language = "Japanese"
	LanguageChinese    Language = "Chinese (Mandarin)"
)

// DefaultLanguage is preselected when nothing else is configured.
const DefaultLanguage = LanguagePortuguese

var languageCodes = map[Language]string{
	LanguageAuto:       "auto",
	LanguagePortuguese: "pt-BR",
	LanguageEnglish:    "en-US",
	LanguageSpanish:    "es",
	LanguageFrench:     "fr",
	LanguageGerman:     "de",
	LanguageItalian:    "it",
	LanguageJapanese:   "ja",
	LanguageChinese:    "zh",
}

// Languages returns the selectable languages in display order.
func Languages() []Language {
	return []Language{
		LanguageAuto,
		LanguagePortuguese,
		LanguageEnglish,
		LanguageSpanish,
		LanguageFrench,
		LanguageGerman,
		LanguageItalian,
		LanguageJapanese,
		LanguageChinese,
	}
}

// Code returns the short tag for the language, e.g. "en-US".
func (l Language) Code() string {
	return languageCodes[l]
}

// ISO639 returns the two-letter language code, or "" for auto-detect.
func (l Language) ISO639() string {
	if l == LanguageAuto {
		return ""
	}
	code := l.Code()
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	return code
}

// IsAuto reports whether the language should be detected by the model.
func (l Language) IsAuto() bool {
	return l == LanguageAuto
}

// ParseLanguage accepts a display name or a short code, case-insensitively.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range Languages() {
		if strings.EqualFold(s, string(l)) || strings.EqualFold(s, l.Code()) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", s)
}
