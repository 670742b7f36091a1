// Package model defines domain types for a business plan session.
package model

// Profile is the single business-profile record of a session.
type Profile struct {
	Name        string
	Description string
	Mission     string
	Vision      string
}

// ProfileField identifies one of the four editable profile fields.
type ProfileField int

const (
	FieldName ProfileField = iota
	FieldDescription
	FieldMission
	FieldVision
)

// ProfileFields lists the fields in display and export order.
var ProfileFields = []ProfileField{FieldName, FieldDescription, FieldMission, FieldVision}

// Label returns the export label for the field.
func (f ProfileField) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldDescription:
		return "Description"
	case FieldMission:
		return "Mission"
	case FieldVision:
		return "Vision"
	default:
		return ""
	}
}

// Get returns the value of field f.
func (p Profile) Get(f ProfileField) string {
	switch f {
	case FieldName:
		return p.Name
	case FieldDescription:
		return p.Description
	case FieldMission:
		return p.Mission
	case FieldVision:
		return p.Vision
	default:
		return ""
	}
}

// Set overwrites field f. Unknown fields are ignored.
func (p *Profile) Set(f ProfileField, value string) {
	switch f {
	case FieldName:
		p.Name = value
	case FieldDescription:
		p.Description = value
	case FieldMission:
		p.Mission = value
	case FieldVision:
		p.Vision = value
	}
}
