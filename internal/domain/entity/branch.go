package entity

// HubBranchID identifies the central factory branch that supplies stock to
// every other branch.
const HubBranchID = "FACTORY"

// Branch is static reference data: the factory hub plus the sales branches.
// The set is fixed at build time and not editable at runtime.
type Branch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	GSTIN    string `json:"gstin"`
}

// IsHub reports whether the branch is the central factory.
func (b Branch) IsHub() bool { return b.ID == HubBranchID }
