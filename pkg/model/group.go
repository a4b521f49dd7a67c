package model

// GroupSchema is the schema URN every Group resource claims.
const GroupSchema = "urn:ietf:params:scim:schemas:core:2.0:Group"

// Group
type Group struct {
	Schemas     []string      `json:"schemas"`
	ID          string        `json:"id"`
	ExternalID  string        `json:"externalId,omitempty"`
	DisplayName string        `json:"displayName"`
	Members     []GroupMember `json:"members,omitzero"`
	Meta        *Meta         `json:"meta,omitempty"`
}

// A list of members of the Group.
type GroupMember struct {
	Value   string `json:"value,omitempty"`
	Ref     string `json:"$ref,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
}
