package util

import (
	"strings"
	"time"

	"github.com/klauspost/lctime"
)

var isoLangCodes = map[string]string{
	"en": "en_US",
	"ru": "ru_RU",
	"uk": "uk_UA",
}

// IetfToIsoLangCode converts a language like "uk" or "uk-UA" to the POSIX locale lctime expects.
func IetfToIsoLangCode(lang string) string {
	base := strings.ToLower(strings.SplitN(strings.ReplaceAll(lang, "_", "-"), "-", 2)[0])
	if code, ok := isoLangCodes[base]; ok {
		return code
	}
	return isoLangCodes["en"]
}

// FormatDateTime renders t in the given IANA zone using the language's weekday and month names.
func FormatDateTime(t time.Time, timeZone, lang string) string {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		loc = time.UTC
	}
	s, err := lctime.StrftimeLoc(IetfToIsoLangCode(lang), "%A, %d %B %Y %H:%M", t.In(loc))
	if err != nil {
		return t.In(loc).Format("Monday, 02 January 2006 15:04")
	}
	return s
}
