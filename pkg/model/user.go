package model

// UserSchema is the schema URN every User resource claims.
const UserSchema = "urn:ietf:params:scim:schemas:core:2.0:User"

// User Account
type User struct {
	Schemas           []string              `json:"schemas"`
	ID                string                `json:"id,omitempty"`
	ExternalID        string                `json:"externalId,omitempty"`
	UserName          string                `json:"userName"`
	Name              *UserName             `json:"name,omitempty"`
	DisplayName       string                `json:"displayName,omitempty"`
	NickName          string                `json:"nickName,omitempty"`
	ProfileURL        string                `json:"profileUrl,omitempty"`
	Title             string                `json:"title,omitempty"`
	UserType          string                `json:"userType,omitempty"`
	PreferredLanguage string                `json:"preferredLanguage,omitempty"`
	Locale            string                `json:"locale,omitempty"`
	Timezone          string                `json:"timezone,omitempty"`
	Active            *bool                 `json:"active,omitempty"`
	Password          string                `json:"password,omitempty"`
	Emails            []UserEmail           `json:"emails,omitzero"`
	Addresses         []UserAddress         `json:"addresses,omitzero"`
	PhoneNumbers      []UserPhoneNumber     `json:"phoneNumbers,omitzero"`
	Ims               []UserIm              `json:"ims,omitzero"`
	Photos            []UserPhoto           `json:"photos,omitzero"`
	Groups            []UserGroup           `json:"groups,omitzero"`
	Entitlements      []UserEntitlement     `json:"entitlements,omitzero"`
	Roles             []UserRole            `json:"roles,omitzero"`
	X509Certificates  []UserX509Certificate `json:"x509Certificates,omitzero"`
	Meta              *Meta                 `json:"meta,omitempty"`

	EnterpriseUser *EnterpriseUser `json:"urn:ietf:params:scim:schemas:extension:enterprise:2.0:User,omitempty"`
}

// The components of the user's real name. Providers MAY return just the full
// name as a single string in the formatted sub-attribute, or they MAY return
// just the individual component attributes, or both.
type UserName struct {
	Formatted       string `json:"formatted,omitempty"`
	FamilyName      string `json:"familyName,omitempty"`
	GivenName       string `json:"givenName,omitempty"`
	MiddleName      string `json:"middleName,omitempty"`
	HonorificPrefix string `json:"honorificPrefix,omitempty"`
	HonorificSuffix string `json:"honorificSuffix,omitempty"`
}

// Email addresses for the user. Canonical type values of 'work', 'home',
// and 'other'.
type UserEmail struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary *bool  `json:"primary,omitempty"`
}

// A physical mailing address for this User. Canonical type values of 'work',
// 'home', and 'other'.
type UserAddress struct {
	Formatted     string `json:"formatted,omitempty"`
	StreetAddress string `json:"streetAddress,omitempty"`
	Locality      string `json:"locality,omitempty"`
	Region        string `json:"region,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Country       string `json:"country,omitempty"`
	Type          string `json:"type,omitempty"`
}

// Phone numbers for the User. Canonical type values of 'work', 'home',
// 'mobile', 'fax', 'pager', and 'other'.
type UserPhoneNumber struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary *bool  `json:"primary,omitempty"`
}

// Instant messaging addresses for the User.
type UserIm struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary *bool  `json:"primary,omitempty"`
}

// URLs of photos of the User.
type UserPhoto struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary *bool  `json:"primary,omitempty"`
}

// A list of groups to which the user belongs, either through direct
// membership, through nested groups, or dynamically calculated.
type UserGroup struct {
	Value   string `json:"value,omitempty"`
	Ref     string `json:"$ref,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
}

// A list of entitlements for the User that represent a thing the User has.
type UserEntitlement struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary *bool  `json:"primary,omitempty"`
}

// A list of roles for the User that collectively represent who the User is,
// e.g., 'Student', 'Faculty'.
type UserRole struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary *bool  `json:"primary,omitempty"`
}

// A list of certificates issued to the User.
type UserX509Certificate struct {
	Value   string `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary *bool  `json:"primary,omitempty"`
}
