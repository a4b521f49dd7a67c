package scim2

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/scim-tools/scim2/pkg/model"
)

func toJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", SerializationError(err)
	}

	return string(data), nil
}

// decode unmarshals input into a fresh T. The input must be a single JSON
// document; trailing content is a failure. Strict mode rejects unknown keys;
// the default tolerates them so a provider adding optional attributes does
// not break clients.
func decode[T any](input string, strict bool) (*T, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	if strict {
		dec.DisallowUnknownFields()
	}

	out := new(T)
	if err := dec.Decode(out); err != nil {
		return nil, DeserializationError(err)
	}

	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return nil, DeserializationError(errors.New("unexpected content after JSON document"))
	}

	return out, nil
}

// missingAttr reports a required attribute that is absent or null in the
// input document. Decode failures name attributes by their wire spelling.
func missingAttr(name string) error {
	return DeserializationError(errors.Errorf("missing required attribute %q", name))
}

// presentKeys re-reads the document into a pointer-field view of its
// required attributes, so an absent or null key is distinguishable from a
// present-but-empty value. The document has already decoded once, so the
// second pass cannot fail on shape.
func presentKeys[T any](input string) (*T, error) {
	keys := new(T)
	if err := json.Unmarshal([]byte(input), keys); err != nil {
		return nil, DeserializationError(err)
	}

	return keys, nil
}

// UserToJSON renders the user in its canonical wire form.
func UserToJSON(user *model.User) (string, error) {
	return toJSON(user)
}

// UserFromJSON parses a User resource, tolerating unknown keys.
func UserFromJSON(input string) (*model.User, error) {
	return userFromJSON(input, false)
}

// UserFromJSONStrict parses a User resource, rejecting unknown keys.
func UserFromJSONStrict(input string) (*model.User, error) {
	return userFromJSON(input, true)
}

func userFromJSON(input string, strict bool) (*model.User, error) {
	user, err := decode[model.User](input, strict)
	if err != nil {
		return nil, err
	}

	keys, err := presentKeys[struct {
		UserName *string `json:"userName"`
	}](input)
	if err != nil {
		return nil, err
	}

	if user.Schemas == nil {
		return nil, missingAttr("schemas")
	}

	if keys.UserName == nil {
		return nil, missingAttr("userName")
	}

	return user, nil
}

// GroupToJSON renders the group in its canonical wire form.
func GroupToJSON(group *model.Group) (string, error) {
	return toJSON(group)
}

// GroupFromJSON parses a Group resource, tolerating unknown keys.
func GroupFromJSON(input string) (*model.Group, error) {
	return groupFromJSON(input, false)
}

// GroupFromJSONStrict parses a Group resource, rejecting unknown keys.
func GroupFromJSONStrict(input string) (*model.Group, error) {
	return groupFromJSON(input, true)
}

func groupFromJSON(input string, strict bool) (*model.Group, error) {
	group, err := decode[model.Group](input, strict)
	if err != nil {
		return nil, err
	}

	keys, err := presentKeys[struct {
		ID          *string `json:"id"`
		DisplayName *string `json:"displayName"`
	}](input)
	if err != nil {
		return nil, err
	}

	if group.Schemas == nil {
		return nil, missingAttr("schemas")
	}

	if keys.ID == nil {
		return nil, missingAttr("id")
	}

	if keys.DisplayName == nil {
		return nil, missingAttr("displayName")
	}

	return group, nil
}

// ResourceTypeToJSON renders the resource type in its canonical wire form.
func ResourceTypeToJSON(resourceType *model.ResourceType) (string, error) {
	return toJSON(resourceType)
}

// ResourceTypeFromJSON parses a ResourceType descriptor, tolerating unknown
// keys.
func ResourceTypeFromJSON(input string) (*model.ResourceType, error) {
	return resourceTypeFromJSON(input, false)
}

// ResourceTypeFromJSONStrict parses a ResourceType descriptor, rejecting
// unknown keys.
func ResourceTypeFromJSONStrict(input string) (*model.ResourceType, error) {
	return resourceTypeFromJSON(input, true)
}

func resourceTypeFromJSON(input string, strict bool) (*model.ResourceType, error) {
	resourceType, err := decode[model.ResourceType](input, strict)
	if err != nil {
		return nil, err
	}

	keys, err := presentKeys[struct {
		Name     *string `json:"name"`
		Endpoint *string `json:"endpoint"`
		Schema   *string `json:"schema"`
	}](input)
	if err != nil {
		return nil, err
	}

	if keys.Name == nil {
		return nil, missingAttr("name")
	}

	if keys.Endpoint == nil {
		return nil, missingAttr("endpoint")
	}

	if keys.Schema == nil {
		return nil, missingAttr("schema")
	}

	return resourceType, nil
}

// ServiceProviderConfigToJSON renders the capability descriptor in its
// canonical wire form.
func ServiceProviderConfigToJSON(config *model.ServiceProviderConfig) (string, error) {
	return toJSON(config)
}

// ServiceProviderConfigFromJSON parses a ServiceProviderConfig descriptor,
// tolerating unknown keys. All six capability blocks must be present;
// whether each advertises support is left to
// ValidateServiceProviderConfig.
func ServiceProviderConfigFromJSON(input string) (*model.ServiceProviderConfig, error) {
	return serviceProviderConfigFromJSON(input, false)
}

// ServiceProviderConfigFromJSONStrict parses a ServiceProviderConfig
// descriptor, rejecting unknown keys.
func ServiceProviderConfigFromJSONStrict(input string) (*model.ServiceProviderConfig, error) {
	return serviceProviderConfigFromJSON(input, true)
}

func serviceProviderConfigFromJSON(input string, strict bool) (*model.ServiceProviderConfig, error) {
	config, err := decode[model.ServiceProviderConfig](input, strict)
	if err != nil {
		return nil, err
	}

	keys, err := presentKeys[struct {
		Patch          *model.FeatureSupport `json:"patch"`
		Bulk           *model.BulkSupport    `json:"bulk"`
		Filter         *model.FilterSupport  `json:"filter"`
		ChangePassword *model.FeatureSupport `json:"changePassword"`
		Sort           *model.FeatureSupport `json:"sort"`
		Etag           *model.FeatureSupport `json:"etag"`
	}](input)
	if err != nil {
		return nil, err
	}

	if keys.Patch == nil {
		return nil, missingAttr("patch")
	}

	if keys.Bulk == nil {
		return nil, missingAttr("bulk")
	}

	if keys.Filter == nil {
		return nil, missingAttr("filter")
	}

	if keys.ChangePassword == nil {
		return nil, missingAttr("changePassword")
	}

	if keys.Sort == nil {
		return nil, missingAttr("sort")
	}

	if keys.Etag == nil {
		return nil, missingAttr("etag")
	}

	return config, nil
}

// EnterpriseUserToJSON renders the extension block in its canonical wire
// form, i.e. the value that sits under the extension URN key.
func EnterpriseUserToJSON(enterpriseUser *model.EnterpriseUser) (string, error) {
	return toJSON(enterpriseUser)
}

// EnterpriseUserFromJSON parses an enterprise extension block, tolerating
// unknown keys. Every attribute of the extension is optional on the wire.
func EnterpriseUserFromJSON(input string) (*model.EnterpriseUser, error) {
	return decode[model.EnterpriseUser](input, false)
}

// EnterpriseUserFromJSONStrict parses an enterprise extension block,
// rejecting unknown keys.
func EnterpriseUserFromJSONStrict(input string) (*model.EnterpriseUser, error) {
	return decode[model.EnterpriseUser](input, true)
}
