package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"hit-reports/internal/reports"

	"github.com/go-chi/chi/v5"
)

type getReportHandler struct {
	facade *reports.Facade
}

func NewGetReportHandler(facade *reports.Facade) AppHttpHandler {
	return &getReportHandler{facade: facade}
}

// Handle processes GET /reports/{name} requests. The host is taken from the
// "host" query parameter, falling back to the request's own host; the raw
// query string is forwarded to the provider as an ordered parameter list.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	name := chi.URLParam(r, "name")
	query := parseOrderedQuery(r.URL.RawQuery)

	host := ""
	for _, param := range query {
		if param.Key == "host" {
			host = param.Value
			break
		}
	}
	if host == "" {
		host = r.Host
		if idx := strings.LastIndex(host, ":"); idx >= 0 {
			host = host[:idx]
		}
	}

	report, svcErr := h.facade.Get(r.Context(), name, host, query)
	if svcErr != nil {
		return svcErr
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(report)
}

// parseOrderedQuery splits a raw query string preserving parameter order,
// which url.Values would lose.
func parseOrderedQuery(rawQuery string) []reports.QueryParam {
	var params []reports.QueryParam
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			decodedKey = key
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			decodedValue = value
		}
		params = append(params, reports.QueryParam{Key: decodedKey, Value: decodedValue})
	}
	return params
}
