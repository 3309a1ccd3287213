package domain

// Framework is one regulatory framework the model is asked to check a
// document against. The description is prose for the prompt, nothing more;
// the service never interprets regulatory content.
type Framework struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// complianceScope is the fixed set of frameworks every uploaded document is
// assessed against.
var complianceScope = []Framework{
	{
		Name:        "21 CFR Part 820",
		Description: "Quality System Regulation: design controls, production and process controls, CAPA, and device history records.",
	},
	{
		Name:        "21 CFR Part 11",
		Description: "Electronic records and electronic signatures: audit trails, system validations, and record integrity.",
	},
	{
		Name:        "ISO 13485",
		Description: "Quality management systems for medical devices and related regulatory requirements.",
	},
	{
		Name:        "Device classification rules",
		Description: "FDA device classification (Class I, II, III) and the controls each class requires.",
	},
	{
		Name:        "510(k)/PMA submission requirements",
		Description: "Premarket notification and premarket approval pathways, including substantial equivalence and clinical evidence expectations.",
	},
}

// ComplianceScope returns the frameworks in a fresh slice so callers cannot
// mutate the fixed set.
func ComplianceScope() []Framework {
	scope := make([]Framework, len(complianceScope))
	copy(scope, complianceScope)
	return scope
}

// FrameworkNames returns just the framework names, in scope order.
func FrameworkNames() []string {
	names := make([]string, len(complianceScope))
	for i, f := range complianceScope {
		names[i] = f.Name
	}
	return names
}
