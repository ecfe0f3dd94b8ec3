package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

var supported = language.NewMatcher([]language.Tag{
	language.English, // default
	language.Japanese,
})

// DetectLang resolves the default message language from the process
// locale environment. Unrecognized or missing locales fall back to
// English.
func DetectLang() Lang {
	return langFromLocale(localeFromEnv())
}

// localeFromEnv reads the POSIX locale variables in precedence order.
func localeFromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func langFromLocale(locale string) Lang {
	if locale == "" {
		return LangEnglish
	}

	// Strip encoding and modifier: "ja_JP.UTF-8@mod" -> "ja_JP"
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")

	tag, err := language.Parse(locale)
	if err != nil {
		return LangEnglish
	}

	_, index, _ := supported.Match(tag)
	if index == 1 {
		return LangJapanese
	}
	return LangEnglish
}
