package cli

import "github.com/spf13/pflag"

// German spellings accepted for the long flag names.
var flagAliases = map[string]string{
	"datum":   "date",
	"woche":   "week",
	"kompakt": "compact",
	"tage":    "days",
	"db":      "book",
}

func normalizeFlagAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}
