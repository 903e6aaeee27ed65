// Package events provides entity lifecycle events and a small in-process
// dispatcher.
//
// The service layer emits an EntityEvent after every committed create, update
// or delete. Handlers registered with the emitter (for example the audit log
// handler wired in cmd/server) observe those changes without the service
// knowing about them.
//
// The primary components are:
// - EntityEvent: a committed change to one user, place, review or amenity
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
