// Package api handles incoming HTTP requests for the HBnB resources (users,
// places, reviews and amenities): routing, request decoding and validation,
// and response formatting. It is a thin adapter over service.Facade.
//
// Errors are translated by MapErrorToStatusCode and GetSafeErrorMessage so
// clients only ever see sanitized messages: validation failures become 400,
// missing entities 404, duplicate emails 409 and everything else 500.
package api
