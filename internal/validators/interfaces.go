package validators

import "context"

// Validator checks domain objects against their field policies.
// The optional fields list restricts validation to a subset of fields;
// when empty, every field of the object is validated.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
