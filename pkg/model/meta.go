package model

// Meta is the common metadata block attached to every stored resource.
// It is produced by the service provider; clients treat it as read-only.
// Timestamps are carried as opaque strings, the codec does not parse them.
type Meta struct {
	ResourceType string `json:"resourceType,omitempty"`
	Created      string `json:"created,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
	Version      string `json:"version,omitempty"`
	Location     string `json:"location,omitempty"`
}
