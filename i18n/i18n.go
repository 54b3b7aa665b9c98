package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Text:": {
		"pt": "Texto:",
		"es": "Texto:",
		"ru": "Текст:",
	},
	"Hello!": {
		"pt": "Olá!",
		"es": "¡Hola!",
		"ru": "Привет!",
	},
	"Counter:": {
		"pt": "Contador:",
		"es": "Contador:",
		"ru": "Счётчик:",
	},
	"Stop": {
		"pt": "Parar",
		"es": "Parar",
		"ru": "Стоп",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("UIDEMOS_LANG")); forcedLang != "" {
		log.Printf("UIDEMOS_LANG is set to: '%s'", forcedLang)
		lang = forcedLang
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}
	if len(userLocales) == 0 {
		lang = "en"
		return
	}
	lang = pick(userLocales[0])
	log.Printf("Language set to: %s", lang)
}

func pick(userLocale string) string {
	for _, l := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(userLocale, l) {
			return l
		}
	}
	return "en"
}

// T translates key into the detected language, returning key itself when no
// translation exists.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}

// SetLang overrides the detected language.
func SetLang(l string) {
	lang = l
}
