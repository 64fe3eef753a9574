package effect

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
	goerrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/clave/rhythm"
)

const EnvelopeNone = "none"

var envelopes = map[string]ease.Function{
	"linear":   ease.Linear,
	"outquad":  ease.OutQuad,
	"outcubic": ease.OutCubic,
	"outquart": ease.OutQuart,
	"outexpo":  ease.OutExpo,
	"inquart":  ease.InQuart,
}

// Envelope shapes the loudness of a tick over its length. The gain at the
// first sample is 1 and falls to 0 at the last sample following the easing
// curve, which removes the click of a sine cut off mid-cycle.
type Envelope struct {
	// The name of the easing curve
	Type string

	fn ease.Function
}

// NewEnvelope looks up the envelope called t. "none" (or "") returns nil,
// meaning ticks are left untouched.
func NewEnvelope(t string) (*Envelope, error) {
	if t == "" || t == EnvelopeNone {
		return nil, nil
	}

	fn, ok := envelopes[t]
	if !ok {
		return nil, goerrors.WithStackTrace(rhythm.InvalidConfigurationError{
			Reason: fmt.Sprintf("unknown envelope %q, expected one of %v", t, Names()),
		})
	}
	return &Envelope{Type: t, fn: fn}, nil
}

// Names lists the accepted envelope names.
func Names() []string {
	out := []string{EnvelopeNone}
	for name := range envelopes {
		out = append(out, name)
	}
	sort.Strings(out[1:])
	return out
}

// Gain returns the envelope gain at progress t in [0,1].
func (e *Envelope) Gain(t float64) float64 {
	return 1 - e.fn(t)
}

// Apply returns a copy of buf with the envelope applied.
func (e *Envelope) Apply(buf []float32) []float32 {
	out := make([]float32, len(buf))
	if len(buf) == 0 {
		return out
	}
	if len(buf) == 1 {
		out[0] = buf[0]
		return out
	}

	last := float64(len(buf) - 1)
	for i, v := range buf {
		out[i] = float32(float64(v) * e.Gain(float64(i)/last))
	}
	return out
}
