package scenarios

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	assert.Equal(t, []string{"@master", "@sanity", "@regression"},
		Tags("User registration test @master @sanity @regression"))
	assert.Equal(t, []string{"@master"}, Tags("execute end-to-end test flow @master"))
	assert.Empty(t, Tags("untagged scenario"))
	assert.Equal(t, []string{"@smoke-ci"}, Tags("hyphenated @smoke-ci"))
}

func TestEveryScenarioIsTagged(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range All() {
		assert.NotEmpty(t, s.Tags(), s.Name)
		assert.NotNil(t, s.Run, s.Name)
		assert.False(t, seen[s.Name], "duplicate scenario %q", s.Name)
		seen[s.Name] = true
	}
}

type filterTestParams struct {
	tags        []string
	run         []string
	skip        []string
	name        string
	shouldMatch bool
}

func TestFilterMatch(t *testing.T) {
	const (
		reg  = "User registration test @master @sanity @regression"
		miss = "Search with no matches @regression"
		e2e  = "execute end-to-end test flow @master"
	)
	allParams := []filterTestParams{
		// matches everything by default
		{nil, nil, nil, reg, true},
		{nil, nil, nil, "untagged", true},

		// --tag with or without @
		{[]string{"@sanity"}, nil, nil, reg, true},
		{[]string{"sanity"}, nil, nil, reg, true},
		{[]string{"sanity"}, nil, nil, miss, false},
		{[]string{"sanity", "master"}, nil, nil, e2e, true},
		{[]string{"master"}, nil, nil, "untagged", false},

		// tags match whole markers only
		{[]string{"@mast"}, nil, nil, e2e, false},

		// --run
		{nil, []string{"registration"}, nil, reg, true},
		{nil, []string{"registration"}, nil, e2e, false},
		{nil, []string{"^execute", "no matches"}, nil, miss, true},

		// --skip
		{nil, nil, []string{"end-to-end"}, e2e, false},
		{nil, nil, []string{"end-to-end"}, reg, true},

		// --skip overrides --run and --tag
		{[]string{"master"}, []string{"test"}, []string{"flow"}, e2e, false},
		{[]string{"master"}, []string{"test"}, []string{"flow"}, reg, true},
	}
	for _, params := range allParams {
		f := Filter{Tags: params.tags}
		for _, s := range params.run {
			require.NoError(t, f.MustMatch.Set(s))
		}
		for _, s := range params.skip {
			require.NoError(t, f.MustNotMatch.Set(s))
		}
		t.Run(fmt.Sprintf("tag=%v, run=%s, skip=%s, name=%s", params.tags, f.MustMatch, f.MustNotMatch, params.name), func(t *testing.T) {
			assert.Equal(t, params.shouldMatch, f.Match(Scenario{Name: params.name}))
		})
	}
}

func TestFilterApplyKeepsOrder(t *testing.T) {
	f := Filter{Tags: []string{"regression"}}

	selected, skipped := f.Apply(All())

	var names []string
	for _, s := range selected {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"User registration test @master @sanity @regression",
		"User login test @master @sanity @regression",
		"Product search test @sanity @regression",
		"Search with no matches @regression",
	}, names)
	require.Len(t, skipped, 1)
	assert.Equal(t, "execute end-to-end test flow @master", skipped[0].Name)
}

func TestPatternListRejectsInvalidRegex(t *testing.T) {
	var l PatternList
	assert.Error(t, l.Set("("))
	assert.False(t, l.IsDefined())
}

func TestFilterDescribe(t *testing.T) {
	assert.Empty(t, Filter{}.Describe())

	f := Filter{Tags: []string{"sanity", "@master"}}
	require.NoError(t, f.MustNotMatch.Set("login"))
	assert.Equal(t, []string{
		"skip any not tagged @sanity or @master",
		`skip any matching "login"`,
	}, f.Describe())
}
