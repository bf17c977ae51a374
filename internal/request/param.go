// Package request turns the named arguments of a tool call into the
// attribute values sent to the accounting API.
//
// Each operation declares its parameters up front. Whether an argument
// reaches the request is decided per parameter by its Presence rule, never
// inferred from the Go zero value: a caller that omits "proforma" and a
// caller that passes proforma=false can mean different things.
package request

// Kind is the expected type of an argument.
type Kind int

const (
	String Kind = iota
	Date
	Integer
	Number
	Bool
	StringList
	Lines
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Date:
		return "date (YYYY-MM-DD)"
	case Integer:
		return "integer"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	case StringList:
		return "array of strings"
	case Lines:
		return "array of line objects"
	default:
		return "unknown"
	}
}

// Presence decides when a supplied argument is forwarded.
type Presence int

const (
	// OmitEmpty drops absent, null and empty values ("", false, 0, []).
	// Used for text and date filters.
	OmitEmpty Presence = iota
	// OmitAbsent drops only absent and null values; false, 0 and "" are sent.
	OmitAbsent
	// OmitDefault drops absent, null and values equal to Param.Default.
	OmitDefault
	// Always sends the argument, falling back to Param.Default when absent.
	Always
)

// Param declares one named argument of an operation.
type Param struct {
	Name string
	// Field is the remote attribute the argument is written to. Empty means Name.
	Field       string
	Kind        Kind
	Required    bool
	Presence    Presence
	Default     any
	Description string
	// Map rewrites the coerced value before it is stored, e.g. proforma=true
	// into document_type="proforma".
	Map func(any) any
}

// Target returns the remote attribute name.
func (p Param) Target() string {
	if p.Field != "" {
		return p.Field
	}
	return p.Name
}
