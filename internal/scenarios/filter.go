package scenarios

import (
	"fmt"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`@[\w-]+`)

// Tags returns the @markers embedded in a scenario name, in order of appearance
func Tags(name string) []string {
	return tagPattern.FindAllString(name, -1)
}

// PatternList is a repeatable regex flag value
type PatternList []*regexp.Regexp

func (l PatternList) String() string {
	ss := make([]string, 0, len(l))
	for _, p := range l {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (l *PatternList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	*l = append(*l, rx)
	return nil
}

func (l PatternList) IsDefined() bool {
	return len(l) != 0
}

func (l PatternList) AnyMatch(s string) bool {
	for _, p := range l {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// Filter selects scenarios by tag and by name. A scenario must carry at least one
// of Tags when any are given, match MustMatch when it is defined and match nothing
// in MustNotMatch.
type Filter struct {
	Tags         []string
	MustMatch    PatternList
	MustNotMatch PatternList
}

// Match reports whether s is selected
func (f Filter) Match(s Scenario) bool {
	if len(f.Tags) != 0 && !f.hasTag(s) {
		return false
	}
	return (!f.MustMatch.IsDefined() || f.MustMatch.AnyMatch(s.Name)) &&
		!f.MustNotMatch.AnyMatch(s.Name)
}

func (f Filter) hasTag(s Scenario) bool {
	for _, have := range s.Tags() {
		for _, want := range f.Tags {
			if have == normalizeTag(want) {
				return true
			}
		}
	}
	return false
}

// Apply splits scenarios into those selected and those filtered out, keeping order
func (f Filter) Apply(all []Scenario) (selected, skipped []Scenario) {
	for _, s := range all {
		if f.Match(s) {
			selected = append(selected, s)
		} else {
			skipped = append(skipped, s)
		}
	}
	return selected, skipped
}

// Describe lists the active criteria, one per line. It is empty when everything runs.
func (f Filter) Describe() []string {
	var lines []string
	if len(f.Tags) != 0 {
		tags := make([]string, len(f.Tags))
		for i, t := range f.Tags {
			tags[i] = normalizeTag(t)
		}
		lines = append(lines, "skip any not tagged "+strings.Join(tags, " or "))
	}
	if f.MustMatch.IsDefined() {
		lines = append(lines, "skip any not matching "+f.MustMatch.String())
	}
	if f.MustNotMatch.IsDefined() {
		lines = append(lines, "skip any matching "+f.MustNotMatch.String())
	}
	return lines
}

// normalizeTag accepts tags with or without the leading @
func normalizeTag(tag string) string {
	if strings.HasPrefix(tag, "@") {
		return tag
	}
	return "@" + tag
}
