// Package scim2 is a typed object model and JSON codec for SCIM 2.0
// (RFC 7643 / RFC 7644) resources: User, Group, ResourceType,
// ServiceProviderConfig and the enterprise User extension.
//
// For each resource kind the package exposes three operations: a structural
// validator reporting the first missing required attribute, an encoder to
// the canonical wire form, and a decoder from it. Encoding omits absent
// optional attributes; decoding treats null and absent identically and
// tolerates unknown keys (a *Strict variant rejects them).
//
//	user, err := scim2.UserFromJSON(payload)
//	if err != nil {
//		return err
//	}
//	if err := scim2.ValidateUser(user); err != nil {
//		return err
//	}
//
// Transport, persistence, PATCH and filter parsing are out of scope; the
// pkg/convert package bridges the models to github.com/elimity-com/scim for
// callers embedding them in a SCIM server.
package scim2
