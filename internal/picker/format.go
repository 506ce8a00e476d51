package picker

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// DefaultLocale is used when the host locale is unset or unsupported.
const DefaultLocale = monday.LocaleEnUS

type mediumLayout struct {
	tag    language.Tag
	locale monday.Locale
	layout string
}

// mediumLayouts holds the medium date style per supported locale: abbreviated
// or numeric month, no time of day.
var mediumLayouts = []mediumLayout{
	{language.AmericanEnglish, monday.LocaleEnUS, "Jan 2, 2006"},
	{language.BritishEnglish, monday.LocaleEnGB, "2 Jan 2006"},
	{language.German, monday.LocaleDeDE, "02.01.2006"},
	{language.French, monday.LocaleFrFR, "2 Jan 2006"},
	{language.Spanish, monday.LocaleEsES, "2 Jan 2006"},
	{language.Italian, monday.LocaleItIT, "2 Jan 2006"},
	{language.Japanese, monday.LocaleJaJP, "2006/01/02"},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(mediumLayouts))
	for i, l := range mediumLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// FormatMedium renders the calendar date of t in the medium style of locale
// (POSIX "en_US.UTF-8" or BCP 47 "en-US"), without a time component.
// Unsupported locales fall back to US English.
func FormatMedium(t time.Time, locale string) string {
	l := resolveLocale(locale)
	return monday.Format(t, l.layout, l.locale)
}

func resolveLocale(raw string) mediumLayout {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	if raw == "" || strings.EqualFold(raw, "C") || strings.EqualFold(raw, "POSIX") {
		return mediumLayouts[0]
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return mediumLayouts[0]
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return mediumLayouts[0]
	}
	return mediumLayouts[idx]
}
