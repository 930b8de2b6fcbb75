package tshttp

import (
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-types-go/types"
)

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

// NewHandler returns the timestamp validation API.
func NewHandler(options ...HandlerOption) http.Handler {
	service := &httpService{codec: types.TimestampType{}}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}

	r := chi.NewRouter()

	r.Use(withLogging(service.log))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Method("GET", "/healthz", service.health())
	r.Method("POST", "/timestamps/decode", service.decodeTimestamp())

	return WithTelemetry(r, "ts-http")
}

type httpService struct {
	log   *zerolog.Logger
	codec types.TimestampType
}

type decodeRequest struct {
	Timestamp any `json:"timestamp"`
}

type decodeResponse struct {
	Timestamp types.Timestamp `json:"timestamp"`
	Unix      int64           `json:"unix"`
	UnixNano  int64           `json:"unixNano"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (service *httpService) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}

func (service *httpService) decodeTimestamp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-type")
		mediaType, _, err := mime.ParseMediaType(contentType)
		if mediaType != "application/json" || err != nil {
			failed(w, r, http.StatusUnsupportedMediaType, "unsupported_content_type", "expected application/json")
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			failed(w, r, http.StatusBadRequest, "invalid_request", "invalid request body")
			return
		}

		var request decodeRequest
		if err := json.UnmarshalContext(r.Context(), body, &request); err != nil {
			service.log.Info().Err(err).Msg("failed to unmarshal decode request")
			failed(w, r, http.StatusBadRequest, "invalid_request", "invalid request body")
			return
		}

		decoded, err := service.codec.Decode(request.Timestamp)
		if err != nil {
			service.log.Info().Err(err).Interface("input", request.Timestamp).Msg("rejected timestamp")
			if types.IsFormatError(err) {
				failed(w, r, http.StatusUnprocessableEntity, "invalid_timestamp", err.Error())
			} else {
				failed(w, r, http.StatusInternalServerError, "internal", "failed to decode timestamp")
			}
			return
		}

		render.JSON(w, r, decodeResponse{
			Timestamp: types.TimestampFromTime(decoded),
			Unix:      decoded.Unix(),
			UnixNano:  decoded.UnixNano(),
		})
	}
}

func failed(w http.ResponseWriter, r *http.Request, status int, code string, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: code, Message: message})
}
