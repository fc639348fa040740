package entity

// CategoryKind enumerates the known consultation categories.
type CategoryKind int

const (
	CategoryHelp CategoryKind = iota
	CategoryVolunteer
	CategoryPartnership
	CategoryResearch
	CategoryImplementation
	CategoryFunding
	CategoryTraining
	CategorySupport
	CategoryOther
)

var categoryLabels = map[string]struct {
	kind  CategoryKind
	label string
}{
	"help":           {CategoryHelp, "Solicitar ayuda para jóvenes en riesgo"},
	"volunteer":      {CategoryVolunteer, "Voluntariado y colaboración"},
	"partnership":    {CategoryPartnership, "Alianza con mi organización"},
	"research":       {CategoryResearch, "Colaboración en investigación"},
	"implementation": {CategoryImplementation, "Implementar en mi comunidad"},
	"funding":        {CategoryFunding, "Patrocinio y financiamiento"},
	"training":       {CategoryTraining, "Capacitación y recursos"},
	"support":        {CategorySupport, "Soporte técnico"},
}

// Category is a consultation category code resolved against the fixed table.
// Unknown codes are kept as CategoryOther and echo the raw code as label.
type Category struct {
	Kind CategoryKind
	code string
}

// ParseCategory resolves a category code. It is total: any string yields a
// usable Category.
func ParseCategory(code string) Category {
	if entry, ok := categoryLabels[code]; ok {
		return Category{Kind: entry.kind, code: code}
	}
	return Category{Kind: CategoryOther, code: code}
}

// Code returns the raw submitted code.
func (c Category) Code() string { return c.code }

// Label returns the display label, or the raw code for unknown categories.
func (c Category) Label() string {
	if entry, ok := categoryLabels[c.code]; ok {
		return entry.label
	}
	return c.code
}
