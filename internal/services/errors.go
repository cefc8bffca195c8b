package services

// ErrorKind classifies a service failure. The transport maps each kind to
// a status code with a pure lookup.
type ErrorKind int

const (
	// KindValidation covers missing or invalid fields.
	KindValidation ErrorKind = iota
	// KindNotFound covers lookups with no entity at the key.
	KindNotFound
	// KindConflict covers duplicate productId inserts.
	KindConflict
	// KindPersistence covers an unreachable or failed backing store.
	KindPersistence
)

// ServiceError is the typed failure every service operation returns.
// Raw persistence errors never cross the handler boundary; Cause carries
// the internal detail for development-mode responses only.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Details []string
	Cause   error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func newValidationError(details []string) *ServiceError {
	return &ServiceError{Kind: KindValidation, Message: "Validation failed", Details: details}
}

func newBadRequestError(message string) *ServiceError {
	return &ServiceError{Kind: KindValidation, Message: message}
}

func newNotFoundError(id string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: "Product with id '" + id + "' not found"}
}

func newConflictError(id string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: "Product with id '" + id + "' already exists"}
}

func newPersistenceError(cause error) *ServiceError {
	return &ServiceError{Kind: KindPersistence, Message: "Internal server error", Cause: cause}
}
