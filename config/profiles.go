package config

import "github.com/robmorgan/clave/profile"

func initializeTickProfiles() map[string]profile.Profile {
	out := map[string]profile.Profile{
		"high-tick": {
			Name:      "High tick",
			Frequency: 4000,
			Amplitude: 1.0,
		},
		"mid-tick": {
			Name:      "Mid tick",
			Frequency: 3500,
			Amplitude: 0.4,
		},
		"low-tick": {
			Name:      "Low tick",
			Frequency: 3200,
			Amplitude: 0.3,
		},
		// softer alternatives for quiet practice
		"wood-high": {
			Name:      "Wood block high",
			Frequency: 1800,
			Amplitude: 0.8,
		},
		"wood-low": {
			Name:      "Wood block low",
			Frequency: 1200,
			Amplitude: 0.5,
		},
	}

	return out
}
