package txt

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed translations/*.yaml
var files embed.FS

var (
	catalog = map[string]map[string]string{}
	tags    []language.Tag
	matcher language.Matcher
)

func init() {
	entries, err := files.ReadDir("translations")
	if err != nil {
		panic(err)
	}

	// English goes first so the matcher falls back to it.
	tags = append(tags, language.English)
	for _, entry := range entries {
		b, err := files.ReadFile(path.Join("translations", entry.Name()))
		if err != nil {
			panic(err)
		}

		var messages map[string]string
		if err := yaml.Unmarshal(b, &messages); err != nil {
			panic(fmt.Sprintf("translations/%s: %v", entry.Name(), err))
		}

		lang := strings.TrimSuffix(entry.Name(), ".yaml")
		catalog[lang] = messages
		if lang != "en" {
			tags = append(tags, language.MustParse(lang))
		}
	}
	matcher = language.NewMatcher(tags)
}

// Lang picks the best supported language for the given preferences, e.g. a
// "lang" query parameter followed by an Accept-Language header.
func Lang(preferred ...string) string {
	for _, p := range preferred {
		if p == "" {
			continue
		}
		wanted, _, err := language.ParseAcceptLanguage(p)
		if err != nil || len(wanted) == 0 {
			continue
		}
		_, idx, conf := matcher.Match(wanted...)
		if conf == language.No {
			continue
		}
		base, _ := tags[idx].Base()
		return base.String()
	}
	return "en"
}

// Get returns the message for key in lang, formatted with args.
// Missing translations fall back to English and then to the key itself.
func Get(key, lang string, args ...any) string {
	msg, ok := catalog[lang][key]
	if !ok {
		msg, ok = catalog["en"][key]
	}
	if !ok {
		log.Warn().Str("key", key).Str("lang", lang).Msg("Missing translation")
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
