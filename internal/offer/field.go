package offer

// Field names one editable field of a Draft, in form order.
type Field int

const (
	FieldImg Field = iota
	FieldTitle
	FieldCode
	FieldDescription
)

// Fields lists the editable fields in the order the form shows them.
func Fields() []Field {
	return []Field{FieldImg, FieldTitle, FieldCode, FieldDescription}
}

// String returns the wire name of the field.
func (f Field) String() string {
	switch f {
	case FieldImg:
		return "img"
	case FieldTitle:
		return "title"
	case FieldCode:
		return "code"
	case FieldDescription:
		return "description"
	default:
		return "unknown"
	}
}

// Placeholder is the hint shown in an empty form input.
func (f Field) Placeholder() string {
	switch f {
	case FieldImg:
		return "Image URL"
	case FieldTitle:
		return "Offer Title"
	case FieldCode:
		return "Offer Code"
	case FieldDescription:
		return "Description"
	default:
		return ""
	}
}
