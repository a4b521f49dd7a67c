package scim2

import "github.com/scim-tools/scim2/pkg/model"

// The validators are purely structural: they confirm required attributes
// are present and report the first violation in declaration order. Value
// formats (email syntax, URIs, language tags, timestamps) are not checked,
// the schema is deliberately flexible there.

// ValidateUser checks the attributes SCIM requires on a User.
func ValidateUser(user *model.User) error {
	if len(user.Schemas) == 0 {
		return MissingRequiredField("schemas")
	}

	if user.UserName == "" {
		return MissingRequiredField("user_name")
	}

	return nil
}

// ValidateGroup checks the attributes SCIM requires on a Group.
func ValidateGroup(group *model.Group) error {
	if len(group.Schemas) == 0 {
		return MissingRequiredField("schemas")
	}

	if group.ID == "" {
		return MissingRequiredField("id")
	}

	if group.DisplayName == "" {
		return MissingRequiredField("display_name")
	}

	return nil
}

// ValidateResourceType checks the attributes SCIM requires on a
// ResourceType descriptor.
func ValidateResourceType(resourceType *model.ResourceType) error {
	if resourceType.Name == "" {
		return MissingRequiredField("name")
	}

	if resourceType.Endpoint == "" {
		return MissingRequiredField("endpoint")
	}

	if resourceType.Schema == "" {
		return MissingRequiredField("schema")
	}

	return nil
}

// ValidateServiceProviderConfig checks that each capability block advertises
// supported = true, in declaration order. A block advertised as unsupported
// is reported the same way as a missing one.
func ValidateServiceProviderConfig(config *model.ServiceProviderConfig) error {
	if !config.Patch.Supported {
		return MissingRequiredField("patch")
	}

	if !config.Bulk.Supported {
		return MissingRequiredField("bulk")
	}

	if !config.Filter.Supported {
		return MissingRequiredField("filter")
	}

	if !config.ChangePassword.Supported {
		return MissingRequiredField("change_password")
	}

	if !config.Sort.Supported {
		return MissingRequiredField("sort")
	}

	if !config.Etag.Supported {
		return MissingRequiredField("etag")
	}

	return nil
}

// ValidateEnterpriseUser checks that every attribute of the enterprise
// extension block is populated.
func ValidateEnterpriseUser(enterpriseUser *model.EnterpriseUser) error {
	if enterpriseUser.EmployeeNumber == "" {
		return MissingRequiredField("employee_number")
	}

	if enterpriseUser.CostCenter == "" {
		return MissingRequiredField("cost_center")
	}

	if enterpriseUser.Organization == "" {
		return MissingRequiredField("organization")
	}

	if enterpriseUser.Division == "" {
		return MissingRequiredField("division")
	}

	if enterpriseUser.Department == "" {
		return MissingRequiredField("department")
	}

	if enterpriseUser.Manager == nil {
		return MissingRequiredField("manager")
	}

	return nil
}
