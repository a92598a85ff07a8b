// Package respond renders RFC 9457 problem details for responses produced
// outside Huma's operation pipeline: router-level 404/405 fallbacks, panic
// recovery, and redirects. Content negotiation between problem+json and
// problem+cbor mirrors the formats the API itself serves.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/devconnect/profile-api/internal/platform/logging"
)

const (
	schemaPath       = "/schemas/ErrorModel.json"
	contentTypeJSON  = "application/problem+json"
	contentTypeCBOR  = "application/problem+cbor"
	msgNotFound      = "resource not found"
	msgInternalError = "internal server error"
)

// problem is the wire shape for problem-details bodies. The $schema field is
// a JSON-only concern and is omitted from CBOR output.
type problem struct {
	Schema string `json:"$schema,omitempty" cbor:"-"`
	Title  string `json:"title,omitempty"   cbor:"title,omitempty"`
	Status int    `json:"status,omitempty"  cbor:"status,omitempty"`
	Detail string `json:"detail,omitempty"  cbor:"detail,omitempty"`
}

// NotFoundHandler emits a problem-details 404 for unmatched routes.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, http.StatusNotFound, msgNotFound)
	}
}

// MethodNotAllowedHandler emits a problem-details 405 including an Allow header
// listing the methods the matched route does support.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		detail := fmt.Sprintf("method %s is not allowed for this resource", r.Method)
		writeProblem(w, r, http.StatusMethodNotAllowed, detail)
	}
}

// Recoverer converts panics into problem-details 500 responses. A panic with
// http.ErrAbortHandler is re-raised so the server aborts the connection as the
// standard library intends. If the handler already started writing a response,
// the partial response is left as-is because the status line is unrecoverable.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && err == http.ErrAbortHandler {
					panic(rec)
				}
				applog.LogError(r.Context(), "panic recovered", fmt.Errorf("%v", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				if !rw.wroteHeader {
					writeProblem(rw, r, http.StatusInternalServerError, msgInternalError)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// WriteRedirect writes a redirect response with the given status and Location.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string, status int) {
	w.Header().Set("Location", location)
	w.WriteHeader(status)
}

// Status304NotModified returns a bodyless 304 for conditional request handlers.
func Status304NotModified() huma.StatusError {
	return &noBodyStatusError{status: http.StatusNotModified, message: "Not Modified"}
}

// noBodyStatusError is a StatusError for statuses that must not carry a body.
type noBodyStatusError struct {
	status  int
	message string
}

func (e *noBodyStatusError) Error() string {
	if e.message != "" {
		return e.message
	}
	return http.StatusText(e.status)
}

func (e *noBodyStatusError) GetStatus() int {
	return e.status
}

// responseWriter tracks whether a response has been started so the Recoverer
// knows when a 500 can still be written.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	p := problem{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}

	w.Header().Set("Link", "<"+schemaPath+`>; rel="describedBy"`)

	if acceptsCBOR(r.Header.Get("Accept")) {
		body, err := cbor.Marshal(p)
		if err != nil {
			applog.LogError(r.Context(), "failed to marshal problem cbor", err)
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", contentTypeCBOR)
		w.WriteHeader(status)
		_, _ = w.Write(body)
		return
	}

	p.Schema = schemaPath
	body, err := json.Marshal(p)
	if err != nil {
		applog.LogError(r.Context(), "failed to marshal problem json", err)
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// acceptsCBOR implements RFC 9110 section 12.5.1 proactive negotiation for the
// two formats this API serves. Quality values rank first; media-type
// specificity breaks ties. JSON wins exact ties and is the default when the
// header is empty, lists only wildcards, or lists nothing acceptable.
func acceptsCBOR(accept string) bool {
	const (
		formatJSON = iota
		formatCBOR
	)

	bestFormat := formatJSON
	bestQ := -1.0
	bestSpecificity := -1

	for part := range strings.SplitSeq(accept, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		fields := strings.Split(part, ";")
		mediaType := strings.ToLower(strings.TrimSpace(fields[0]))

		q := 1.0
		for _, param := range fields[1:] {
			param = strings.TrimSpace(param)
			if val, ok := strings.CutPrefix(param, "q="); ok {
				if parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
					q = parsed
				}
				break
			}
		}
		if q <= 0 {
			continue
		}

		var format, specificity int
		switch mediaType {
		case "application/problem+cbor":
			format, specificity = formatCBOR, 3
		case "application/cbor":
			format, specificity = formatCBOR, 2
		case "application/problem+json":
			format, specificity = formatJSON, 3
		case "application/json":
			format, specificity = formatJSON, 2
		case "application/*":
			format, specificity = formatJSON, 1
		case "*/*":
			format, specificity = formatJSON, 0
		default:
			continue
		}

		if q > bestQ || (q == bestQ && specificity > bestSpecificity) {
			bestFormat = format
			bestQ = q
			bestSpecificity = specificity
		}
	}

	return bestFormat == formatCBOR
}

// allowedMethods inspects chi's routing context to discover allowed methods.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		} else {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
