// Package memory provides in-process implementations of the repository
// interfaces defined in the internal/store package. Data lives only as long
// as the process; a restart discards everything.
package memory
