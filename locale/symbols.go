package locale

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Symbols holds the per-locale tables the formatters consult. Patterns use
// Unicode LDML field letters.
type Symbols struct {
	ID     string
	Tag    language.Tag
	Monday monday.Locale

	FirstWeekday           time.Weekday
	MinimumDaysInFirstWeek int

	// Date and time patterns indexed short, medium, long, full.
	DatePatterns [4]string
	TimePatterns [4]string
	// JoinPatterns combine a date part {1} and a time part {0}, indexed by
	// the date style.
	JoinPatterns [4]string

	// Skeletons maps canonical skeletons to localized patterns.
	Skeletons map[string]string
	// TemplateJoin combines date {1} and time {0} resolved from a skeleton.
	TemplateJoin string
	// Hour12 is the locale's preferred hour cycle for the 'j' skeleton field.
	Hour12 bool

	Today     string
	Yesterday string
	Tomorrow  string
}

var enUS = Symbols{
	ID:                     "en_US",
	Tag:                    language.AmericanEnglish,
	Monday:                 monday.LocaleEnUS,
	FirstWeekday:           time.Sunday,
	MinimumDaysInFirstWeek: 1,
	DatePatterns:           [4]string{"M/d/yy", "MMM d, y", "MMMM d, y", "EEEE, MMMM d, y"},
	TimePatterns:           [4]string{"h:mm a", "h:mm:ss a", "h:mm:ss a z", "h:mm:ss a zzzz"},
	JoinPatterns:           [4]string{"{1}, {0}", "{1}, {0}", "{1} 'at' {0}", "{1} 'at' {0}"},
	Skeletons: map[string]string{
		"yMd": "M/d/y", "yM": "M/y", "Md": "M/d",
		"yMMMd": "MMM d, y", "yMMM": "MMM y", "MMMd": "MMM d",
		"yMEd": "E, M/d/y", "MEd": "E, M/d",
		"yMMMEd": "E, MMM d, y", "MMMEd": "E, MMM d", "Ed": "d E",
		"y": "y", "M": "L", "MMM": "LLL", "d": "d", "E": "ccc",
		"hm": "h:mm a", "hms": "h:mm:ss a", "Hm": "HH:mm", "Hms": "HH:mm:ss",
		"h": "h a", "H": "HH", "ms": "mm:ss",
	},
	TemplateJoin: "{1}, {0}",
	Hour12:       true,
	Today:        "Today",
	Yesterday:    "Yesterday",
	Tomorrow:     "Tomorrow",
}

var enGB = Symbols{
	ID:                     "en_GB",
	Tag:                    language.BritishEnglish,
	Monday:                 monday.LocaleEnGB,
	FirstWeekday:           time.Monday,
	MinimumDaysInFirstWeek: 4,
	DatePatterns:           [4]string{"dd/MM/y", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
	TimePatterns:           [4]string{"HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
	JoinPatterns:           [4]string{"{1}, {0}", "{1}, {0}", "{1} 'at' {0}", "{1} 'at' {0}"},
	Skeletons: map[string]string{
		"yMd": "dd/MM/y", "yM": "MM/y", "Md": "dd/MM",
		"yMMMd": "d MMM y", "yMMM": "MMM y", "MMMd": "d MMM",
		"yMEd": "E, dd/MM/y", "MEd": "E dd/MM",
		"yMMMEd": "E, d MMM y", "MMMEd": "E d MMM", "Ed": "E d",
		"y": "y", "M": "L", "MMM": "LLL", "d": "d", "E": "ccc",
		"hm": "h:mm a", "hms": "h:mm:ss a", "Hm": "HH:mm", "Hms": "HH:mm:ss",
		"h": "h a", "H": "HH", "ms": "mm:ss",
	},
	TemplateJoin: "{1}, {0}",
	Today:        "Today",
	Yesterday:    "Yesterday",
	Tomorrow:     "Tomorrow",
}

var frFR = Symbols{
	ID:                     "fr_FR",
	Tag:                    language.MustParse("fr-FR"),
	Monday:                 monday.LocaleFrFR,
	FirstWeekday:           time.Monday,
	MinimumDaysInFirstWeek: 4,
	DatePatterns:           [4]string{"dd/MM/y", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
	TimePatterns:           [4]string{"HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
	JoinPatterns:           [4]string{"{1} {0}", "{1}, {0}", "{1} 'à' {0}", "{1} 'à' {0}"},
	Skeletons: map[string]string{
		"yMd": "dd/MM/y", "yM": "MM/y", "Md": "dd/MM",
		"yMMMd": "d MMM y", "yMMM": "MMM y", "MMMd": "d MMM",
		"yMEd": "E dd/MM/y", "MEd": "E dd/MM",
		"yMMMEd": "E d MMM y", "MMMEd": "E d MMM", "Ed": "E d",
		"y": "y", "M": "L", "MMM": "LLL", "d": "d", "E": "E",
		"hm": "h:mm a", "hms": "h:mm:ss a", "Hm": "HH:mm", "Hms": "HH:mm:ss",
		"h": "h a", "H": "HH 'h'", "ms": "mm:ss",
	},
	TemplateJoin: "{1} {0}",
	Today:        "aujourd’hui",
	Yesterday:    "hier",
	Tomorrow:     "demain",
}

var deDE = Symbols{
	ID:                     "de_DE",
	Tag:                    language.MustParse("de-DE"),
	Monday:                 monday.LocaleDeDE,
	FirstWeekday:           time.Monday,
	MinimumDaysInFirstWeek: 4,
	DatePatterns:           [4]string{"dd.MM.yy", "dd.MM.y", "d. MMMM y", "EEEE, d. MMMM y"},
	TimePatterns:           [4]string{"HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
	JoinPatterns:           [4]string{"{1}, {0}", "{1}, {0}", "{1} 'um' {0}", "{1} 'um' {0}"},
	Skeletons: map[string]string{
		"yMd": "d.M.y", "yM": "M/y", "Md": "d.M.",
		"yMMMd": "d. MMM y", "yMMM": "MMM y", "MMMd": "d. MMM",
		"yMEd": "E, d.M.y", "MEd": "E, d.M.",
		"yMMMEd": "E, d. MMM y", "MMMEd": "E, d. MMM", "Ed": "E, d.",
		"y": "y", "M": "L", "MMM": "LLL", "d": "d", "E": "ccc",
		"hm": "h:mm a", "hms": "h:mm:ss a", "Hm": "HH:mm", "Hms": "HH:mm:ss",
		"h": "h 'Uhr' a", "H": "HH 'Uhr'", "ms": "mm:ss",
	},
	TemplateJoin: "{1}, {0}",
	Today:        "heute",
	Yesterday:    "gestern",
	Tomorrow:     "morgen",
}

var esES = Symbols{
	ID:                     "es_ES",
	Tag:                    language.EuropeanSpanish,
	Monday:                 monday.LocaleEsES,
	FirstWeekday:           time.Monday,
	MinimumDaysInFirstWeek: 4,
	DatePatterns:           [4]string{"d/M/yy", "d MMM y", "d 'de' MMMM 'de' y", "EEEE, d 'de' MMMM 'de' y"},
	TimePatterns:           [4]string{"H:mm", "H:mm:ss", "H:mm:ss z", "H:mm:ss (zzzz)"},
	JoinPatterns:           [4]string{"{1}, {0}", "{1}, {0}", "{1}, {0}", "{1}, {0}"},
	Skeletons: map[string]string{
		"yMd": "d/M/y", "yM": "M/y", "Md": "d/M",
		"yMMMd": "d MMM y", "yMMMMd": "d 'de' MMMM 'de' y",
		"yMMM": "MMM y", "yMMMM": "MMMM 'de' y", "MMMd": "d MMM",
		"yMEd": "EEE, d/M/y", "MEd": "E, d/M",
		"yMMMEd": "EEE, d MMM y", "MMMEd": "E, d MMM", "Ed": "E d",
		"y": "y", "M": "L", "MMM": "LLL", "d": "d", "E": "ccc",
		"hm": "h:mm a", "hms": "h:mm:ss a", "Hm": "H:mm", "Hms": "H:mm:ss",
		"h": "h a", "H": "H", "ms": "mm:ss",
	},
	TemplateJoin: "{1}, {0}",
	Today:        "hoy",
	Yesterday:    "ayer",
	Tomorrow:     "mañana",
}

var jaJP = Symbols{
	ID:                     "ja_JP",
	Tag:                    language.Japanese,
	Monday:                 monday.LocaleJaJP,
	FirstWeekday:           time.Sunday,
	MinimumDaysInFirstWeek: 1,
	DatePatterns:           [4]string{"y/MM/dd", "y/MM/dd", "y年M月d日", "y年M月d日EEEE"},
	TimePatterns:           [4]string{"H:mm", "H:mm:ss", "H:mm:ss z", "H時mm分ss秒 zzzz"},
	JoinPatterns:           [4]string{"{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
	Skeletons: map[string]string{
		"yMd": "y/M/d", "yM": "y/M", "Md": "M/d",
		"yMMMd": "y年M月d日", "yMMM": "y年M月", "MMMd": "M月d日",
		"yMEd": "y/M/d(E)", "MEd": "M/d(E)",
		"yMMMEd": "y年M月d日(E)", "MMMEd": "M月d日(E)", "Ed": "d日(E)",
		"y": "y年", "M": "M月", "MMM": "M月", "d": "d日", "E": "ccc",
		"hm": "aK:mm", "hms": "aK:mm:ss", "Hm": "H:mm", "Hms": "H:mm:ss",
		"h": "aK時", "H": "H時", "ms": "mm:ss",
	},
	TemplateJoin: "{1} {0}",
	Today:        "今日",
	Yesterday:    "昨日",
	Tomorrow:     "明日",
}

var zhCN = Symbols{
	ID:                     "zh_CN",
	Tag:                    language.SimplifiedChinese,
	Monday:                 monday.LocaleZhCN,
	FirstWeekday:           time.Monday,
	MinimumDaysInFirstWeek: 1,
	DatePatterns:           [4]string{"y/M/d", "y年M月d日", "y年M月d日", "y年M月d日EEEE"},
	TimePatterns:           [4]string{"HH:mm", "HH:mm:ss", "z HH:mm:ss", "zzzz HH:mm:ss"},
	JoinPatterns:           [4]string{"{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
	Skeletons: map[string]string{
		"yMd": "y/M/d", "yM": "y年M月", "Md": "M/d",
		"yMMMd": "y年M月d日", "yMMM": "y年M月", "MMMd": "M月d日",
		"yMEd": "y/M/dE", "MEd": "M/dE",
		"yMMMEd": "y年M月d日E", "MMMEd": "M月d日E", "Ed": "d日E",
		"y": "y年", "M": "M月", "MMM": "LLL", "d": "d日", "E": "ccc",
		"hm": "ah:mm", "hms": "ah:mm:ss", "Hm": "HH:mm", "Hms": "HH:mm:ss",
		"h": "ah时", "H": "H时", "ms": "mm:ss",
	},
	TemplateJoin: "{1} {0}",
	Today:        "今天",
	Yesterday:    "昨天",
	Tomorrow:     "明天",
}
