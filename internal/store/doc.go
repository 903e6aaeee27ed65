// Package store defines the repository contract and the error taxonomy shared
// by every storage implementation. Business rules in the service layer depend
// only on these interfaces, never on a concrete backend.
package store
