package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/records", handler.GetTeamRecords)
	mux.HandleFunc("GET /v1/teams/{teamID}/records/raw", handler.GetTeamRecordsRaw)
}

func registerChartRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/charts/preview", handler.PreviewChart)
	mux.HandleFunc("POST /v1/charts", handler.CreateChart)
	mux.HandleFunc("GET /v1/charts", handler.ListCharts)
	mux.HandleFunc("GET /v1/charts/{chartID}", handler.GetChart)
	mux.HandleFunc("PUT /v1/charts/{chartID}", handler.UpdateChart)
	mux.HandleFunc("DELETE /v1/charts/{chartID}", handler.DeleteChart)
	mux.HandleFunc("GET /v1/charts/{chartID}/data", handler.GetChartData)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalRefreshToken string) {
	mux.Handle("POST /v1/internal/refresh", RequireInternalRefreshToken(internalRefreshToken, http.HandlerFunc(handler.RunRefresh)))
}
