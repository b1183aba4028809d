package base

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// FlagSet wraps flag.FlagSet with help output in the style of the CLI's
// usage text.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help returns the formatted flag list, suitable for appending to a
// command's Help.
func (f *FlagSet) Help() string {
	var flags []*flag.Flag
	f.VisitAll(func(fl *flag.Flag) {
		flags = append(flags, fl)
	})
	if len(flags) == 0 {
		return ""
	}
	sort.Slice(flags, func(i, j int) bool {
		return flags[i].Name < flags[j].Name
	})

	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	for _, fl := range flags {
		b.WriteString("\n")
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "  -%s=%s\n", fl.Name, fl.DefValue)
		} else {
			fmt.Fprintf(&b, "  -%s\n", fl.Name)
		}
		for _, line := range strings.Split(wordwrap.WrapString(fl.Usage, 70), "\n") {
			fmt.Fprintf(&b, "      %s\n", line)
		}
	}
	return b.String()
}

// IsSet reports whether the named flag was given on the command line.
func (f *FlagSet) IsSet(name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}
