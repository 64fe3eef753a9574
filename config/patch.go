package config

import (
	"github.com/robmorgan/clave/profile"
	"gopkg.in/yaml.v3"
)

// Patch maps an accent voice (profile.Voice*) to the name of a tick profile.
type Patch map[string]string

// DefaultPatch gives the downbeat the highest and loudest tick, strong beats
// the middle one and ordinary beats the lowest and quietest.
func DefaultPatch() Patch {
	return Patch{
		profile.VoicePrimary:  "high-tick",
		profile.VoiceStrong:   "mid-tick",
		profile.VoiceOrdinary: "low-tick",
	}
}

// accentKeys lets config files use the short accent names.
var accentKeys = map[string]string{
	"primary":  profile.VoicePrimary,
	"strong":   profile.VoiceStrong,
	"ordinary": profile.VoiceOrdinary,
}

// UnmarshalYAML accepts both "primary" and "voice:accent:primary" keys.
func (p *Patch) UnmarshalYAML(value *yaml.Node) error {
	raw := map[string]string{}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if *p == nil {
		*p = Patch{}
	}
	for key, name := range raw {
		if voice, ok := accentKeys[key]; ok {
			key = voice
		}
		(*p)[key] = name
	}
	return nil
}
