package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/cors"
	"teinei.dev/flip/pipeline"
	"teinei.dev/flip/types"
)

const maxBodySize = 1 << 20

type Request struct {
	Pipeline pipeline.Pipeline
}

type toggleBody struct {
	Tid       string          `json:"tid"`
	Text      string          `json:"text"`
	Direction types.Direction `json:"direction"`
}

// NewHandler serves POST /toggle behind a permissive CORS policy.
func NewHandler(ppln pipeline.Pipeline) http.Handler {
	req := &Request{Pipeline: ppln}
	mux := http.NewServeMux()
	mux.HandleFunc("/toggle", req.ProcessData)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

// ProcessData accepts either a JSON body or raw text.
func (req *Request) ProcessData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	logger := makeRequestLogger(r)

	if r.Method != http.MethodPost {
		logger.Err(nil).Int("status", http.StatusMethodNotAllowed).Msg("Only 'POST' method is allowed here")
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}

	msg, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not read request body")
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	body, err := parseBody(r.Header.Get("Content-Type"), msg)
	if err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not parse request body")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Direction != "" && !body.Direction.IsValid() {
		logger.Warn().Str("direction", string(body.Direction)).Int("status", http.StatusBadRequest).Msg("Unknown direction")
		http.Error(w, fmt.Sprintf("%v: %q", types.WrongDirectionError, body.Direction), http.StatusBadRequest)
		return
	}

	request := pipeline.Request{
		Tid:       body.Tid,
		Text:      body.Text,
		Direction: body.Direction,
	}
	if request.Tid == "" {
		request.Tid = "api"
	}
	logger.Info().Str("tid", request.Tid).Msg("Starting pipeline for request from API")
	resp, ok := <-req.Pipeline(request)
	if !ok {
		logger.Error().Int("status", http.StatusInternalServerError).Msg("Pipeline returned no response")
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(resp))
	logger.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}

func parseBody(contentType string, msg []byte) (toggleBody, error) {
	if !strings.HasPrefix(contentType, "application/json") {
		return toggleBody{Text: string(msg)}, nil
	}
	var body toggleBody
	if err := json.Unmarshal(msg, &body); err != nil {
		return toggleBody{}, err
	}
	return body, nil
}
