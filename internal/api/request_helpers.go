package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hbnb/hbnb-api/internal/api/shared"
	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/platform/logger"
)

// getPathUUID extracts a UUID from the URL path parameters.
//
// Returns:
//   - (uuid.UUID, nil): The parsed UUID if valid
//   - (uuid.Nil, error): a *domain.ValidationError wrapping domain.ErrInvalidID
//     if the parameter is missing, malformed or the nil UUID
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	return domain.ParseID(paramName, chi.URLParam(r, paramName))
}

// handlePathUUID extracts a UUID path parameter. An identifier that cannot
// name any entity is reported as notFound (for example store.ErrPlaceNotFound),
// so a malformed id behaves exactly like an unknown one.
//
// Returns:
//   - (id, true): the parsed UUID
//   - (uuid.Nil, false): an error response has already been written
func handlePathUUID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	notFound error,
	log *slog.Logger,
) (uuid.UUID, bool) {
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}

	id, err := getPathUUID(r, paramName)
	if err != nil {
		log.Debug("invalid path identifier",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(notFound))
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into req and validates it.
// It writes a 400 response and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

// parseBodyIDs parses identifiers sent in a request body. Malformed ids are
// a client error (400), unlike malformed path ids.
func parseBodyIDs(field string, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := domain.ParseID(field, s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
