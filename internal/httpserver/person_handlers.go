package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"travelmate/internal/service"
)

// @Summary      List persons
// @Tags         persons
// @Produce      json
// @Success      200  {array}   domain.Person
// @Failure      500  {object}  errorResponse
// @Router       /person [get]
func handleListPersons(personSvc *service.PersonService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		persons, err := personSvc.ListPersons(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, persons)
	}
}

// @Summary      Get a person
// @Tags         persons
// @Produce      json
// @Param        id   path      string  true  "Person ID"
// @Success      200  {object}  domain.Person
// @Failure      404  {object}  errorResponse
// @Router       /person/{id} [get]
func handleGetPerson(personSvc *service.PersonService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := personSvc.GetPerson(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// @Summary      Get a person with all profile records
// @Description  Person with address, preferences, interests, verification and chat ids
// @Tags         persons
// @Produce      json
// @Param        id   path      string  true  "Person ID"
// @Success      200  {object}  domain.PersonDetails
// @Failure      404  {object}  errorResponse
// @Router       /person/{id}/details [get]
func handleGetPersonDetails(personSvc *service.PersonService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := personSvc.GetPersonDetails(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// @Summary      Create a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        input body personCreateRequest true "Person"
// @Success      201  {object}  domain.Person
// @Failure      400  {object}  errorResponse
// @Router       /person [post]
func handleCreatePerson(personSvc *service.PersonService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req personCreateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := validateRequest(req); err != nil {
			writeError(w, r, log, err)
			return
		}

		p, err := personSvc.CreatePerson(r.Context(), req.toInput())
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

// @Summary      Update a person
// @Description  Merge update: omitted fields keep their stored value
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Person ID"
// @Param        input body  personUpdateRequest  true  "Fields to change"
// @Success      200  {object}  domain.Person
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /person/{id} [put]
func handleUpdatePerson(personSvc *service.PersonService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req personUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := validateRequest(req); err != nil {
			writeError(w, r, log, err)
			return
		}

		p, err := personSvc.UpdatePerson(r.Context(), chi.URLParam(r, "id"), req.toInput())
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// @Summary      Delete a person
// @Description  Removes the person with its profile records, messages and chats left with one member
// @Tags         persons
// @Produce      json
// @Param        id   path      string  true  "Person ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /person/{id} [delete]
func handleDeletePerson(personSvc *service.PersonService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := personSvc.DeletePerson(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "person deleted"})
	}
}
