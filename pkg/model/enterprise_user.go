package model

// EnterpriseUserSchema is the URN of the enterprise User extension. On the
// wire the extension block is a top-level sibling of the core attributes,
// keyed by this literal URN.
const EnterpriseUserSchema = "urn:ietf:params:scim:schemas:extension:enterprise:2.0:User"

// Enterprise User
type EnterpriseUser struct {
	EmployeeNumber string                 `json:"employeeNumber,omitempty"`
	CostCenter     string                 `json:"costCenter,omitempty"`
	Organization   string                 `json:"organization,omitempty"`
	Division       string                 `json:"division,omitempty"`
	Department     string                 `json:"department,omitempty"`
	Manager        *EnterpriseUserManager `json:"manager,omitempty"`
}

// The User's manager. A complex type that optionally allows service
// providers to represent organizational hierarchy by referencing the 'id'
// attribute of another User.
type EnterpriseUserManager struct {
	Value       string `json:"value,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}
