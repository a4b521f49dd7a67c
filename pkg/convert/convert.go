// Package convert bridges the typed SCIM models to the resource and
// descriptor types of github.com/elimity-com/scim, so the models can back
// an elimity scim.Server.
package convert

import (
	"encoding/json"
	"time"

	"github.com/elimity-com/scim"
	"github.com/elimity-com/scim/optional"
	"github.com/elimity-com/scim/schema"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/scim-tools/scim2/pkg/model"
)

// Attributes the scim.Resource envelope carries outside the attribute map.
var envelopeAttributes = []string{"schemas", "id", "externalId", "meta"}

// Unmarshal round-trips source through JSON into dest. The struct tags on
// the models make this the attribute-name mapping.
func Unmarshal[S any, D any](source S, dest *D) error {
	data, err := json.Marshal(source)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// UserToResource converts a user into an elimity resource. The envelope
// attributes move onto the resource itself and the password is never echoed
// back.
func UserToResource(meta scim.Meta, user *model.User) (scim.Resource, error) {
	attributes := scim.ResourceAttributes{}

	if err := Unmarshal(user, &attributes); err != nil {
		return scim.Resource{}, errors.Wrap(err, "failed to convert user to attributes")
	}

	for _, attr := range envelopeAttributes {
		delete(attributes, attr)
	}

	delete(attributes, "password")

	eID := optional.String{}
	if user.ExternalID != "" {
		eID = optional.NewString(user.ExternalID)
	}

	return scim.Resource{
		ID:         lo.Ternary(user.ID != "", user.ID, user.UserName),
		ExternalID: eID,
		Attributes: attributes,
		Meta:       meta,
	}, nil
}

// ResourceToUser converts an elimity resource back into a typed user.
func ResourceToUser(resource scim.Resource) (*model.User, error) {
	user := &model.User{}

	if err := Unmarshal(resource.Attributes, user); err != nil {
		return nil, errors.Wrap(err, "failed to convert attributes to user")
	}

	user.ID = resource.ID
	if resource.ExternalID.Present() {
		user.ExternalID = resource.ExternalID.Value()
	}

	if user.Schemas == nil {
		user.Schemas = []string{model.UserSchema}
		if user.EnterpriseUser != nil {
			user.Schemas = append(user.Schemas, model.EnterpriseUserSchema)
		}
	}

	return user, nil
}

// GroupToResource converts a group into an elimity resource.
func GroupToResource(meta scim.Meta, group *model.Group) (scim.Resource, error) {
	attributes := scim.ResourceAttributes{}

	if err := Unmarshal(group, &attributes); err != nil {
		return scim.Resource{}, errors.Wrap(err, "failed to convert group to attributes")
	}

	for _, attr := range envelopeAttributes {
		delete(attributes, attr)
	}

	eID := optional.String{}
	if group.ExternalID != "" {
		eID = optional.NewString(group.ExternalID)
	}

	return scim.Resource{
		ID:         lo.Ternary(group.ID != "", group.ID, group.DisplayName),
		ExternalID: eID,
		Attributes: attributes,
		Meta:       meta,
	}, nil
}

// ResourceToGroup converts an elimity resource back into a typed group.
func ResourceToGroup(resource scim.Resource) (*model.Group, error) {
	group := &model.Group{}

	if err := Unmarshal(resource.Attributes, group); err != nil {
		return nil, errors.Wrap(err, "failed to convert attributes to group")
	}

	group.ID = resource.ID
	if resource.ExternalID.Present() {
		group.ExternalID = resource.ExternalID.Value()
	}

	if group.Schemas == nil {
		group.Schemas = []string{model.GroupSchema}
	}

	return group, nil
}

// MetaToResource converts the opaque metadata block into elimity's parsed
// form. Timestamps that do not parse as RFC 3339 are dropped rather than
// invented.
func MetaToResource(meta *model.Meta) scim.Meta {
	if meta == nil {
		return scim.Meta{}
	}

	result := scim.Meta{Version: meta.Version}

	if created, err := time.Parse(time.RFC3339, meta.Created); err == nil {
		result.Created = &created
	}

	if lastModified, err := time.Parse(time.RFC3339, meta.LastModified); err == nil {
		result.LastModified = &lastModified
	}

	return result
}

// MetaFromResource renders elimity metadata back into the wire-form block.
func MetaFromResource(resourceType, location string, meta scim.Meta) *model.Meta {
	result := &model.Meta{
		ResourceType: resourceType,
		Version:      meta.Version,
		Location:     location,
	}

	if meta.Created != nil {
		result.Created = meta.Created.UTC().Format(time.RFC3339)
	}

	if meta.LastModified != nil {
		result.LastModified = meta.LastModified.UTC().Format(time.RFC3339)
	}

	return result
}

// UserResourceType is the /Users resource type descriptor, enterprise
// extension included.
func UserResourceType(handler scim.ResourceHandler) scim.ResourceType {
	return scim.ResourceType{
		ID:          optional.NewString("User"),
		Name:        "User",
		Endpoint:    "/Users",
		Description: optional.NewString("User Account"),
		Schema:      schema.CoreUserSchema(),
		SchemaExtensions: []scim.SchemaExtension{
			{Schema: schema.ExtensionEnterpriseUser()},
		},
		Handler: handler,
	}
}

// GroupResourceType is the /Groups resource type descriptor.
func GroupResourceType(handler scim.ResourceHandler) scim.ResourceType {
	return scim.ResourceType{
		ID:          optional.NewString("Group"),
		Name:        "Group",
		Endpoint:    "/Groups",
		Description: optional.NewString("Group"),
		Schema:      schema.CoreGroupSchema(),
		Handler:     handler,
	}
}

// ServiceProviderConfig maps the typed capability descriptor onto elimity's
// server configuration. elimity only models patch and filter support plus
// the authentication schemes; the remaining capability blocks have no
// counterpart there.
func ServiceProviderConfig(config *model.ServiceProviderConfig) scim.ServiceProviderConfig {
	result := scim.ServiceProviderConfig{
		SupportPatch:     config.Patch.Supported,
		SupportFiltering: config.Filter.Supported,
	}

	if config.DocumentationURI != "" {
		result.DocumentationURI = optional.NewString(config.DocumentationURI)
	}

	if config.Filter.Supported {
		result.MaxResults = config.Filter.MaxResults
	}

	for _, s := range config.AuthenticationSchemes {
		scheme := scim.AuthenticationScheme{
			Type:        authenticationType(s.Type),
			Name:        s.Name,
			Description: s.Description,
			Primary:     s.Primary != nil && *s.Primary,
		}

		if s.SpecURI != "" {
			scheme.SpecURI = optional.NewString(s.SpecURI)
		}

		if s.DocumentationURI != "" {
			scheme.DocumentationURI = optional.NewString(s.DocumentationURI)
		}

		result.AuthenticationSchemes = append(result.AuthenticationSchemes, scheme)
	}

	return result
}

func authenticationType(value string) scim.AuthenticationType {
	switch value {
	case "oauth":
		return scim.AuthenticationTypeOauth
	case "oauth2":
		return scim.AuthenticationTypeOauth2
	case "oauthbearertoken":
		return scim.AuthenticationTypeOauthBearerToken
	case "httpdigest":
		return scim.AuthenticationTypeHTTPDigest
	default:
		return scim.AuthenticationTypeHTTPBasic
	}
}
