// Package schemas carries the JSON Schema documents that gate generated
// artifacts.
package schemas

import _ "embed"

// RolePageSchema is the schema for SEO role-page copy produced by the
// generator.
//
//go:embed role_page.schema.json
var RolePageSchema string
