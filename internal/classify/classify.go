package classify

import "context"

// Assessment is the automated triage estimate attached to a new complaint.
type Assessment struct {
	SeverityScore       float64
	ConfidenceScore     float64
	DepartmentSuggested string
}

type Classifier interface {
	ClassifyComplaint(ctx context.Context, title, description string) Assessment
}

// Stub returns fixed estimates. Real classification is explicitly out of
// scope; the adapter seam stays so a model-backed implementation can slot in.
type Stub struct{}

func (Stub) ClassifyComplaint(ctx context.Context, title, description string) Assessment {
	return Assessment{
		SeverityScore:       7.5,
		ConfidenceScore:     88.0,
		DepartmentSuggested: "Roads & Bridges",
	}
}
