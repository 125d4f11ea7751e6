// Package errs provides the standardized error taxonomy for the service.
//
// Each error kind follows the same pattern: a sentinel error variable
// (e.g. ErrObjectNotFound), a struct type carrying error details, constructor
// functions with and without a cause, an Error() method for formatting and an
// Unwrap() method so callers can classify errors with errors.Is.
//
// The kinds map onto the API failure semantics:
//   - ObjectNotFoundError: a referenced entity id does not exist
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError:
//     invalid arguments, mismatched references, malformed input
//   - IllegalStateError: a precondition violation on an otherwise valid request
//     (e.g. unapproved worker, proof attached outside the in-progress state)
//   - VersionIsInvalidError: a concurrent mutation lost an optimistic-lock
//     race; callers may retry
package errs
