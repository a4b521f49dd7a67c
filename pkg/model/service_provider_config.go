package model

// ServiceProviderConfigSchema is the schema URN of the provider capability
// descriptor.
const ServiceProviderConfigSchema = "urn:ietf:params:scim:schemas:core:2.0:ServiceProviderConfig"

// ServiceProviderConfig enumerates the protocol features a service provider
// supports, plus any limits that apply to them.
type ServiceProviderConfig struct {
	Schemas               []string               `json:"schemas,omitzero"`
	DocumentationURI      string                 `json:"documentationUri,omitempty"`
	Patch                 FeatureSupport         `json:"patch"`
	Bulk                  BulkSupport            `json:"bulk"`
	Filter                FilterSupport          `json:"filter"`
	ChangePassword        FeatureSupport         `json:"changePassword"`
	Sort                  FeatureSupport         `json:"sort"`
	Etag                  FeatureSupport         `json:"etag"`
	AuthenticationSchemes []AuthenticationScheme `json:"authenticationSchemes,omitzero"`
	Meta                  *Meta                  `json:"meta,omitempty"`
}

// FeatureSupport is the capability block for features that carry no limits:
// patch, changePassword, sort and etag.
type FeatureSupport struct {
	Supported bool `json:"supported"`
}

// BulkSupport is the bulk capability block and its limits.
type BulkSupport struct {
	Supported      bool `json:"supported"`
	MaxOperations  int  `json:"maxOperations"`
	MaxPayloadSize int  `json:"maxPayloadSize"`
}

// FilterSupport is the filter capability block and its limit.
type FilterSupport struct {
	Supported  bool `json:"supported"`
	MaxResults int  `json:"maxResults"`
}

// An authentication scheme the provider accepts.
type AuthenticationScheme struct {
	Type             string `json:"type,omitempty"`
	Name             string `json:"name,omitempty"`
	Description      string `json:"description,omitempty"`
	SpecURI          string `json:"specUri,omitempty"`
	DocumentationURI string `json:"documentationUri,omitempty"`
	Primary          *bool  `json:"primary,omitempty"`
}
