package mock

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/viant/storefront/schema"
)

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, &schema.Detail{Detail: detail})
}

// readJSON decodes the request body into target, writing 400 on failure
func readJSON(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request body")
		return false
	}
	return true
}

// pathID parses the {id} path segment, writing 404 on failure
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return 0, false
	}
	return id, true
}

func total(price schema.Decimal, qty int) schema.Decimal {
	return schema.NewDecimal(price.Float() * float64(qty))
}
