package pricing

// ServiceDescriptor identifies a priceable service family and the
// dimensions along which its prices vary.
type ServiceDescriptor struct {
	Code           string   `json:"code"`
	AttributeNames []string `json:"attributeNames"`
}

// Filter is an exact-match constraint on one product attribute. The
// catalog backend only supports equality matching, so there is no
// operator field.
type Filter struct {
	Field string
	Value string
}

// Product is one raw pricing record from the catalog. Its internal
// schema is opaque to this package and passed through to the caller
// as-is.
type Product map[string]interface{}
