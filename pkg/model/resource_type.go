package model

// ResourceTypeSchema is the schema URN of the ResourceType descriptor.
const ResourceTypeSchema = "urn:ietf:params:scim:schemas:core:2.0:ResourceType"

// ResourceType describes an endpoint's resource kind: its name, the
// endpoint it is served under, its base schema and any schema extensions.
type ResourceType struct {
	Schemas          []string          `json:"schemas,omitzero"`
	ID               string            `json:"id,omitempty"`
	Name             string            `json:"name"`
	Description      string            `json:"description,omitempty"`
	Endpoint         string            `json:"endpoint"`
	Schema           string            `json:"schema"`
	SchemaExtensions []SchemaExtension `json:"schemaExtensions,omitzero"`
	Meta             *Meta             `json:"meta,omitempty"`
}

// A schema extension attached to a resource type, e.g. the enterprise User
// extension on the User resource type.
type SchemaExtension struct {
	Schema   string `json:"schema"`
	Required bool   `json:"required"`
}
