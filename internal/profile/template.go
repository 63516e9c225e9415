package profile

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// templateDoc mirrors one entry of the YAML templates file. Skill fields may
// be weighted maps or plain lists.
type templateDoc struct {
	Name             string                `mapstructure:"name"`
	TitleKeywords    []string              `mapstructure:"title_keywords"`
	RequiredSkills   map[string]float64    `mapstructure:"required_skills"`
	Skills           []string              `mapstructure:"skills"`
	NiceToHaveSkills map[string]float64    `mapstructure:"nice_to_have_skills"`
	Weights          *types.ProfileWeights `mapstructure:"weights"`
}

// FromTemplate loads a named profile from the YAML templates file. A missing
// file, unreadable YAML or unknown key degrades to the "generic" template
// entry when present, else to the built-in Generic default. It never fails.
func FromTemplate(key, path string, table *skills.AliasTable) types.JobProfile {
	if path == "" {
		return Generic()
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Generic()
	}

	k := strings.ToLower(strings.TrimSpace(key))
	if !v.IsSet(k) {
		if !v.IsSet("generic") {
			return Generic()
		}
		k = "generic"
	}

	var doc templateDoc
	if err := v.UnmarshalKey(k, &doc); err != nil {
		return Generic()
	}

	required := make(map[string]float64, len(doc.RequiredSkills)+len(doc.Skills))
	for name, w := range doc.RequiredSkills {
		required[canonName(name, table)] = w
	}
	for _, name := range doc.Skills {
		if name = strings.TrimSpace(name); name != "" {
			if _, dup := required[canonName(name, table)]; !dup {
				required[canonName(name, table)] = 1.0
			}
		}
	}
	if len(required) == 0 {
		return Generic()
	}

	nice := make(map[string]float64, len(doc.NiceToHaveSkills))
	for name, w := range doc.NiceToHaveSkills {
		nice[canonName(name, table)] = w
	}
	if len(nice) == 0 {
		nice = nil
	}

	p := types.JobProfile{
		Name:             doc.Name,
		Source:           SourceTemplate,
		TitleKeywords:    doc.TitleKeywords,
		RequiredSkills:   required,
		NiceToHaveSkills: nice,
		Weights:          defaultWeights(),
	}
	if p.Name == "" {
		p.Name = k
	}
	if doc.Weights != nil {
		p.Weights = *doc.Weights
	}
	return p
}

func canonName(name string, table *skills.AliasTable) string {
	if table != nil {
		return table.Canonical(name)
	}
	return name
}
