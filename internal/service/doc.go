// Package service contains the HBnB use cases. Its Facade coordinates the
// user, place, review and amenity repositories defined in internal/store and
// owns every rule that spans more than one of them: owners and authors must
// exist, review lists stay in sync with reviews, emails are unique, and
// deletes cascade.
//
// All writes are serialized by a single facade-wide lock; reads go straight
// to the repositories. Each successful mutation emits an events.EntityEvent.
//
// Errors are wrapped with fmt.Errorf("failed to ...: %w") so callers can use
// errors.Is against domain.ErrValidation, store.ErrNotFound (and its
// entity-specific wraps) and store.ErrDuplicate.
package service
