package archive

// Reliability grades how much a source can be trusted.
type Reliability int

// The zero Reliability is unset and never serializes.
const (
	Reliable Reliability = iota + 1 // almost certain
	Likely                          // likely, lacks a definitive proof
	Doubtful                        // lack of evidence, rumoured
	Guess                           // not sourced but backed by some evidence
	Unlikely                        // rumoured against evidence
)

// Origin records where a source comes from. Archived copies of official
// pages keep their original origin.
type Origin int

// The zero Origin is unset and never serializes.
const (
	Official    Origin = iota + 1 // announcement from the main entity
	OfficialExt                   // certified affiliate of the main entity
	External                      // other entity, not affiliated
	Unknown                       // unclassified
	Unsourced                     // no source and probably none exists
)

var reliabilityNames = map[Reliability]string{
	Reliable: "Reliable",
	Likely:   "Likely",
	Doubtful: "Doubtful",
	Guess:    "Guess",
	Unlikely: "Unlikely",
}

var reliabilityByName = map[string]Reliability{
	"Reliable": Reliable,
	"Likely":   Likely,
	"Doubtful": Doubtful,
	"Guess":    Guess,
	"Unlikely": Unlikely,
}

var originNames = map[Origin]string{
	Official:    "Official",
	OfficialExt: "OfficialExt",
	External:    "External",
	Unknown:     "Unknown",
	Unsourced:   "Unsourced",
}

var originByName = map[string]Origin{
	"Official":    Official,
	"OfficialExt": OfficialExt,
	"External":    External,
	"Unknown":     Unknown,
	"Unsourced":   Unsourced,
}

// String returns the serialized name, or "" when r is not a member.
func (r Reliability) String() string {
	return reliabilityNames[r]
}

// Valid reports whether r is one of the declared members.
func (r Reliability) Valid() bool {
	_, ok := reliabilityNames[r]
	return ok
}

// ParseReliability resolves a serialized name. Matching is exact.
func ParseReliability(name string) (Reliability, bool) {
	r, ok := reliabilityByName[name]
	return r, ok
}

// String returns the serialized name, or "" when o is not a member.
func (o Origin) String() string {
	return originNames[o]
}

// Valid reports whether o is one of the declared members.
func (o Origin) Valid() bool {
	_, ok := originNames[o]
	return ok
}

// ParseOrigin resolves a serialized name. Matching is exact.
func ParseOrigin(name string) (Origin, bool) {
	o, ok := originByName[name]
	return o, ok
}
