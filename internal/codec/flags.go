package codec

import "strings"

// Action is the configure verb a flag applies to a codec.
type Action string

const (
	ActionEnable  Action = "enable"
	ActionDisable Action = "disable"
)

// Flag formats a single configure flag, e.g. "--disable-encoder=mp2".
func Flag(a Action, c Class, n Name) string {
	return "--" + string(a) + "-" + c.String() + "=" + string(n)
}

// FlagSet is an ordered list of configure flags, one per codec, in the
// order the codecs appeared in the discovery listing.
type FlagSet []string

// String joins the flags with single spaces, ready for interpolation into
// a shell command line. An empty set yields "".
func (f FlagSet) String() string {
	return strings.Join(f, " ")
}

// Codecs strips the "--action-class=" prefix from every flag and returns
// the bare codec names in order.
func (f FlagSet) Codecs() []Name {
	out := make([]Name, 0, len(f))
	for _, flag := range f {
		if i := strings.IndexByte(flag, '='); i >= 0 {
			out = append(out, Name(flag[i+1:]))
		}
	}
	return out
}
