package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BlueSkyGuardian/tabibapp/interfaces"
	"github.com/BlueSkyGuardian/tabibapp/logging"
	"github.com/BlueSkyGuardian/tabibapp/search"
)

// SearchMedicines searches by name, composition or therapeutic class.
func SearchMedicines(engine *search.Engine, validator interfaces.DataValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := chi.URLParam(r, "query")
		if err := validator.ValidateInput(query); err != nil {
			logging.Warn("Unusual user input", "query", query, "error", err)
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		results := engine.QuickSearch(query, search.QuickSearchLimit)
		if len(results) == 0 {
			RespondWithError(w, http.StatusNotFound, "No medicines found")
			return
		}

		RespondWithJSON(w, http.StatusOK, results)
	}
}

// FindMedicineByName returns the single record whose commercial name
// matches exactly.
func FindMedicineByName(engine *search.Engine, validator interfaces.DataValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if err := validator.ValidateInput(name); err != nil {
			logging.Warn("Unusual user input", "name", name, "error", err)
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		med := engine.ByName(name)
		if med == nil {
			RespondWithError(w, http.StatusNotFound, "Medicine not found")
			return
		}

		RespondWithJSON(w, http.StatusOK, med)
	}
}

// FindMedicinesByClass returns commercialized records of a therapeutic class.
func FindMedicinesByClass(engine *search.Engine, validator interfaces.DataValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		class := chi.URLParam(r, "class")
		if err := validator.ValidateInput(class); err != nil {
			logging.Warn("Unusual user input", "class", class, "error", err)
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		results := engine.ByTherapeuticClass(class, search.ClassSearchLimit)
		if len(results) == 0 {
			RespondWithError(w, http.StatusNotFound, "No medicines found for this class")
			return
		}

		RespondWithJSON(w, http.StatusOK, results)
	}
}

// HealthCheck serves the /health endpoint.
func HealthCheck(checker interfaces.HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, data, httpStatus := checker.HealthCheck()

		response := map[string]any{"status": status}
		for k, v := range data {
			response[k] = v
		}

		RespondWithJSON(w, httpStatus, response)
	}
}
