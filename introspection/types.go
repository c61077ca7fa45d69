package introspection

// Type kinds as they appear in introspection JSON.
const (
	ScalarKind      = "SCALAR"
	ObjectKind      = "OBJECT"
	InterfaceKind   = "INTERFACE"
	UnionKind       = "UNION"
	EnumKind        = "ENUM"
	InputObjectKind = "INPUT_OBJECT"
	ListKind        = "LIST"
	NonNullKind     = "NON_NULL"
)

// Schema is the __schema introspection payload. The root operation type
// references are carried for callers but not consumed by rendering.
type Schema struct {
	QueryType        *TypeRef    `json:"queryType"`
	MutationType     *TypeRef    `json:"mutationType"`
	SubscriptionType *TypeRef    `json:"subscriptionType"`
	Types            []Type      `json:"types"`
	Directives       []Directive `json:"directives"`
}

// Type is a full type definition. Fields not applicable to a given kind are
// left at their zero values.
type Type struct {
	Kind          string       `json:"kind"`
	Name          string       `json:"name"`
	Description   *string      `json:"description"`
	Fields        []Field      `json:"fields"`
	InputFields   []InputValue `json:"inputFields"`
	Interfaces    []TypeRef    `json:"interfaces"`
	EnumValues    []EnumValue  `json:"enumValues"`
	PossibleTypes []TypeRef    `json:"possibleTypes"`
}

// Field is a field of an OBJECT or INTERFACE type.
type Field struct {
	Name              string       `json:"name"`
	Description       *string      `json:"description"`
	Args              []InputValue `json:"args"`
	Type              TypeRef      `json:"type"`
	IsDeprecated      bool         `json:"isDeprecated"`
	DeprecationReason *string      `json:"deprecationReason"`
}

// InputValue is a field argument or an input object field. DefaultValue,
// when present, is pre-formatted GraphQL literal text.
type InputValue struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Type         TypeRef `json:"type"`
	DefaultValue *string `json:"defaultValue"`
}

// EnumValue is a value of an ENUM type.
type EnumValue struct {
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	IsDeprecated      bool    `json:"isDeprecated"`
	DeprecationReason *string `json:"deprecationReason"`
}

// TypeRef is a type reference, possibly wrapped in NON_NULL or LIST. A
// well-formed chain is finite and terminates in a named node.
type TypeRef struct {
	Kind   string   `json:"kind"`
	Name   *string  `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// Named returns the innermost type name of the reference chain.
func (t *TypeRef) Named() string {
	if t.Name != nil {
		return *t.Name
	}
	if t.OfType != nil {
		return t.OfType.Named()
	}
	return ""
}

// Directive is a directive definition.
type Directive struct {
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	Locations   []string     `json:"locations"`
	Args        []InputValue `json:"args"`
}
