// Package translate translates report and prompt labels to the user language.
package translate

import (
	"github.com/jeandeaual/go-locale"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when the system locale can not be detected.
const DefaultLocale = "en-US"

// catalog contains the label translations, the key is the English text.
var catalog = map[language.Tag]map[string]string{
	language.Korean: {
		"Binary":                             "이진수",
		"Opcode":                             "연산 코드",
		"Target Address":                     "목표 주소",
		"Calculation":                        "계산",
		"Register A":                         "레지스터 A",
		"Addressing mode":                    "주소 지정 모드",
		"Format":                             "형식",
		"Mnemonic":                           "니모닉",
		"Hex code: ":                         "Hex 코드: ",
		"none (no rule for addressing mode)": "없음 (주소 지정 모드 규칙 없음)",
		"Error":                              "오류",
	},
}

func init() {
	// English is registered first so that it is the fallback of the matcher.
	for key := range catalog[language.Korean] {
		if err := message.SetString(language.English, key, key); err != nil {
			panic(err)
		}
	}
	for tag, entries := range catalog {
		for key, translation := range entries {
			if err := message.SetString(tag, key, translation); err != nil {
				panic(err)
			}
		}
	}
}

// Translator translates labels to a fixed language.
type Translator struct {
	printer *message.Printer
}

// New returns a translator for the best match of the given locales,
// for example "ko-KR" or "en-US".
func New(locales ...string) *Translator {
	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}
	return &Translator{
		printer: message.NewPrinter(message.MatchLanguage(locales...)),
	}
}

// System returns a translator for the locales configured in the operating system.
func System(logger *log.Logger) *Translator {
	locales, err := locale.GetLocales()
	if err != nil {
		logger.Warn("Detecting system locale failed", log.Err(err))
	}
	return New(locales...)
}

// Sprintf formats an en-US Sprintf() format in the translator language.
func (t *Translator) Sprintf(key message.Reference, args ...any) string {
	return t.printer.Sprintf(key, args...)
}
