package handler

import (
	"net/http"

	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/experimenting"
)

func ListABTests(service experimenting.Experimenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		tests, err := service.List(r.Context(), userClaims)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar testes A/B")
			return
		}

		writeJSON(w, http.StatusOK, tests)
	}
}

func CreateABTest(service experimenting.Experimenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		var test domain.ABTest
		if !decodeBody(w, r, &test) {
			return
		}

		created, err := service.Create(r.Context(), userClaims, &test)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar teste A/B")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetABTest(service experimenting.Experimenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		test, err := service.Get(r.Context(), userClaims, param(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar teste A/B")
			return
		}

		writeJSON(w, http.StatusOK, test)
	}
}

func AddABTestVariation(service experimenting.Experimenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		var variation domain.ABTestVariation
		if !decodeBody(w, r, &variation) {
			return
		}

		created, err := service.AddVariation(r.Context(), userClaims, param(r, "id"), &variation)
		if err != nil {
			writeServiceError(w, err, "Erro ao adicionar variação")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// GetABTestResults aplica o teste z de duas proporções entre as variações
func GetABTestResults(service experimenting.Experimenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		result, err := service.Results(r.Context(), userClaims, param(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular resultado do teste A/B")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
