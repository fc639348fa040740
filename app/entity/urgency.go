package entity

// UrgencyTier orders the known urgency levels from informational to critical.
type UrgencyTier int

const (
	UrgencyLow UrgencyTier = iota
	UrgencyMedium
	UrgencyHigh
	UrgencyCritical
	UrgencyOther
)

var urgencyLabels = map[string]struct {
	tier  UrgencyTier
	label string
}{
	"low":      {UrgencyLow, "Consulta general - Sin prisa"},
	"medium":   {UrgencyMedium, "Importante - Respuesta en 48h"},
	"high":     {UrgencyHigh, "Urgente - Respuesta en 24h"},
	"critical": {UrgencyCritical, "Crítico - Respuesta inmediata"},
}

// Urgency is an urgency code resolved against the fixed table. Unknown codes
// are kept as UrgencyOther and echo the raw code as label.
type Urgency struct {
	Tier UrgencyTier
	code string
}

// ParseUrgency resolves an urgency code. It is total: any string yields a
// usable Urgency.
func ParseUrgency(code string) Urgency {
	if entry, ok := urgencyLabels[code]; ok {
		return Urgency{Tier: entry.tier, code: code}
	}
	return Urgency{Tier: UrgencyOther, code: code}
}

// Code returns the raw submitted code.
func (u Urgency) Code() string { return u.code }

// Label returns the display label, or the raw code for unknown urgencies.
func (u Urgency) Label() string {
	if entry, ok := urgencyLabels[u.code]; ok {
		return entry.label
	}
	return u.code
}

// BadgeClass returns the CSS class selecting one of the four color tiers in
// the HTML body. Unknown codes get no tier class and render unstyled.
func (u Urgency) BadgeClass() string {
	if _, ok := urgencyLabels[u.code]; ok {
		return "urgency-" + u.code
	}
	return ""
}
