package controller

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// newStudentRequest builds a request routed with the given student_id variable.
func newStudentRequest(method, target, studentID string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	r = r.WithContext(domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler)))
	return mux.SetURLVars(r, map[string]string{"student_id": studentID})
}
