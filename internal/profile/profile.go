// Package profile resolves a JobProfile from one of four sources: an inline
// JSON document, a free-text job description, a named YAML template, or the
// built-in generic default. Resolution priority is inline > text > template
// > fallback; template and resource problems degrade to the default rather
// than failing the run.
package profile

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Source labels recorded on the resolved profile.
const (
	SourceInline   = "inline"
	SourceText     = "text"
	SourceTemplate = "template"
	SourceFallback = "fallback"
)

var htmlTagRe = regexp.MustCompile(`(?i)</?[a-z][^>]*>`)

// Options selects the profile source. The first non-empty field in priority
// order wins.
type Options struct {
	Inline        string
	Text          string
	Template      string
	TemplatesPath string
}

// Resolve picks the profile per the priority order. Only the inline path can
// return an error; every other path degrades to Generic.
func Resolve(opts Options, table *skills.AliasTable) (types.JobProfile, error) {
	switch {
	case opts.Inline != "":
		return FromInline(opts.Inline, table)
	case opts.Text != "":
		return FromText(opts.Text, table), nil
	case opts.Template != "":
		return FromTemplate(opts.Template, opts.TemplatesPath, table), nil
	default:
		return Generic(), nil
	}
}

// Generic is the built-in default profile used whenever no usable source is
// supplied. It never fails and keeps a batch running.
func Generic() types.JobProfile {
	return types.JobProfile{
		Name:           "generic",
		Source:         SourceFallback,
		RequiredSkills: map[string]float64{"Communication": 1.0, "Teamwork": 1.0},
		Weights:        defaultWeights(),
	}
}

func defaultWeights() types.ProfileWeights {
	return types.ProfileWeights{RequiredPct: types.DefaultRequiredPct, NicePct: types.DefaultNicePct}
}

// inlineDoc tolerates both weighted-map and plain-list skill fields, plus
// the legacy "skills" key.
type inlineDoc struct {
	Name             string                `json:"name"`
	RequiredSkills   json.RawMessage       `json:"required_skills"`
	Skills           json.RawMessage       `json:"skills"`
	NiceToHaveSkills json.RawMessage       `json:"nice_to_have_skills"`
	Weights          *types.ProfileWeights `json:"weights"`
}

// FromInline parses a short inline JSON profile. Skill fields may be a
// {name: weight} map or a plain list (every listed skill gets weight 1.0).
func FromInline(raw string, table *skills.AliasTable) (types.JobProfile, error) {
	var doc inlineDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return types.JobProfile{}, &InlineError{Message: "invalid JSON", Cause: err}
	}

	required := doc.RequiredSkills
	if required == nil {
		required = doc.Skills
	}
	requiredMap := decodeSkillWeights(required, table)
	if len(requiredMap) == 0 {
		return types.JobProfile{}, &InlineError{Message: "no required skills"}
	}

	p := types.JobProfile{
		Name:             doc.Name,
		Source:           SourceInline,
		RequiredSkills:   requiredMap,
		NiceToHaveSkills: decodeSkillWeights(doc.NiceToHaveSkills, table),
		Weights:          defaultWeights(),
	}
	if p.Name == "" {
		p.Name = "inline"
	}
	if doc.Weights != nil {
		p.Weights = *doc.Weights
	}
	return p, nil
}

// decodeSkillWeights accepts a weight map, a plain list, or a loosely typed
// map with stringly weights. Unparsable weights fall back to 1.0 neutral.
func decodeSkillWeights(raw json.RawMessage, table *skills.AliasTable) map[string]float64 {
	if len(raw) == 0 {
		return nil
	}

	canon := func(name string) string {
		if table != nil {
			return table.Canonical(name)
		}
		return name
	}

	var weighted map[string]float64
	if err := json.Unmarshal(raw, &weighted); err == nil {
		out := make(map[string]float64, len(weighted))
		for name, w := range weighted {
			out[canon(name)] = w
		}
		return out
	}

	var listed []string
	if err := json.Unmarshal(raw, &listed); err == nil {
		out := make(map[string]float64, len(listed))
		for _, name := range listed {
			if name = strings.TrimSpace(name); name != "" {
				out[canon(name)] = 1.0
			}
		}
		return out
	}

	var loose map[string]any
	if err := json.Unmarshal(raw, &loose); err == nil {
		out := make(map[string]float64, len(loose))
		for name, v := range loose {
			out[canon(name)] = looseWeight(v)
		}
		return out
	}
	return nil
}

func looseWeight(v any) float64 {
	switch w := v.(type) {
	case float64:
		return w
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(w), 64); err == nil {
			return f
		}
	}
	return 1.0
}

// FromText mines known skills out of a free-text job description. Markup is
// stripped first when the input looks like HTML (job postings are often
// copied straight from a browser). Every mined skill gets weight 1.0; a
// description yielding no known skills degrades to Generic.
func FromText(text string, table *skills.AliasTable) types.JobProfile {
	if htmlTagRe.MatchString(text) {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(text)); err == nil {
			text = doc.Text()
		}
	}

	mined := skills.Mine(text, table)
	if len(mined) == 0 {
		return Generic()
	}

	required := make(map[string]float64, len(mined))
	for _, s := range mined {
		required[s] = 1.0
	}
	return types.JobProfile{
		Name:           "from_text",
		Source:         SourceText,
		RequiredSkills: required,
		Weights:        defaultWeights(),
	}
}
