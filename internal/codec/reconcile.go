package codec

import "fmt"

// UnknownPolicy decides what happens to an available decoder that is not
// on the allow-list.
type UnknownPolicy string

const (
	// PolicyDisable emits --disable-decoder for every decoder not on the
	// allow-list. This is the default.
	PolicyDisable UnknownPolicy = "disable"
	// PolicyKeep emits no flag for such decoders, leaving them to the
	// build's own defaults (usually enabled).
	PolicyKeep UnknownPolicy = "keep"
)

// ParseUnknownPolicy accepts "disable" or "keep".
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	switch p := UnknownPolicy(Normalize(s)); p {
	case PolicyDisable, PolicyKeep:
		return p, nil
	default:
		return "", fmt.Errorf("invalid unknown-decoder policy %q (use 'disable' or 'keep')", s)
	}
}

// ReconcileDecoders partitions available by membership in wanted, keeping
// the order of available. Wanted decoders the build does not know produce
// no flag. Under PolicyKeep the disable set is always empty.
func ReconcileDecoders(available, wanted *Set, policy UnknownPolicy) (enable, disable FlagSet) {
	enable = FlagSet{}
	disable = FlagSet{}
	for _, n := range available.Names() {
		if wanted.Has(n) {
			enable = append(enable, Flag(ActionEnable, Decoder, n))
			continue
		}
		if policy == PolicyKeep {
			continue
		}
		disable = append(disable, Flag(ActionDisable, Decoder, n))
	}
	return enable, disable
}

// ReconcileEncoders disables every available encoder. The consuming build
// only ever decodes, so there is no enable path.
func ReconcileEncoders(available *Set) FlagSet {
	disable := FlagSet{}
	for _, n := range available.Names() {
		disable = append(disable, Flag(ActionDisable, Encoder, n))
	}
	return disable
}

// Result is the full output of one reconciliation run.
type Result struct {
	EnabledDecoders  FlagSet
	DisabledDecoders FlagSet
	DisabledEncoders FlagSet

	// Missing lists allow-listed decoders absent from the build, in
	// allow-list order. They are reported, never flagged.
	Missing []Name

	AvailableDecoders int
	AvailableEncoders int
}

// Plan runs both reconcilers over already-discovered sets.
func Plan(decoders, wanted, encoders *Set, policy UnknownPolicy) Result {
	enable, disable := ReconcileDecoders(decoders, wanted, policy)
	return Result{
		EnabledDecoders:   enable,
		DisabledDecoders:  disable,
		DisabledEncoders:  ReconcileEncoders(encoders),
		Missing:           wanted.Difference(decoders).Names(),
		AvailableDecoders: decoders.Len(),
		AvailableEncoders: encoders.Len(),
	}
}
