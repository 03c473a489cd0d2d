package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// studentIDFromRequest parses the {student_id} route variable.
func studentIDFromRequest(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["student_id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse student id [%s]: %w", raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid student id [%d]", id)
	}
	return id, nil
}
