package model

import "fmt"

// Severity is the badge severity tier of an event kind. Tiers form a total
// order: a greater value is more severe. The zero value is SeverityDefault
// so an unclassified kind naturally falls to the least severe tier.
type Severity int

const (
	SeverityDefault Severity = iota
	SeverityInfo
	SeveritySuccess
	SeverityWarning
	SeverityError
)

var severityNames = map[Severity]string{
	SeverityDefault: "default",
	SeverityInfo:    "info",
	SeveritySuccess: "success",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "default"
}

// MarshalJSON renders the tier name rather than its ordinal so that the
// wire format stays stable if tiers are ever reordered internally.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}
