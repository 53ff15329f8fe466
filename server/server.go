// Package server exposes chord lookups over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
	"github.com/rs/cors"
)

const maxRequestBodySize = 1 << 20

// Store holds the table the handlers read. Replacing it swaps in a whole new
// table, tables themselves are never changed.
type Store struct {
	table atomic.Pointer[chord.Table]
}

func NewStore(t *chord.Table) *Store {
	s := &Store{}
	s.table.Store(t)
	return s
}

func (s *Store) Table() *chord.Table {
	return s.table.Load()
}

func (s *Store) Swap(t *chord.Table) {
	s.table.Store(t)
}

type Server struct {
	store   *Store
	logger  *slog.Logger
	origins []string
}

func New(store *Store, logger *slog.Logger, origins []string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: store, logger: logger, origins: origins}
}

// Handler returns the routed handler:
//
//	GET  /chords/{source}?tonic=
//	GET  /chords/{source}/midi?tonic=&arpeggio=
//	GET  /names?aliases=
//	GET  /name/{name}
//	POST /names/parse
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords/{source}", s.handleChord).Methods(http.MethodGet)
	router.HandleFunc("/chords/{source}/midi", s.handleChordMidi).Methods(http.MethodGet)
	router.HandleFunc("/names", s.handleNames).Methods(http.MethodGet)
	router.HandleFunc("/name/{name}", s.handleName).Methods(http.MethodGet)
	router.HandleFunc("/names/parse", s.handleParse).Methods(http.MethodPost)
	router.Use(s.logRequests)

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(router)
}

func (s *Server) handleChord(w http.ResponseWriter, r *http.Request) {
	source := mux.Vars(r)["source"]
	tonic := r.URL.Query().Get("tonic")
	notes := s.store.Table().Chord(source, tonic)
	writeJSON(w, http.StatusOK, model.ChordResponse{Source: source, Tonic: tonic, Notes: nonNil(notes)})
}

func (s *Server) handleChordMidi(w http.ResponseWriter, r *http.Request) {
	source := mux.Vars(r)["source"]
	q := r.URL.Query()
	tonic := q.Get("tonic")
	if tonic == "" {
		writeError(w, http.StatusBadRequest, "tonic is required for midi output")
		return
	}

	notes := s.store.Table().Chord(source, tonic)
	if len(notes) == 0 {
		writeError(w, http.StatusNotFound, "unknown chord: "+source)
		return
	}
	keys, err := midi.Keys(notes, constants.DefaultOctave)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := midi.DefaultOptions()
	opts.Arpeggio, _ = strconv.ParseBool(q.Get("arpeggio"))

	var buf bytes.Buffer
	if err := midi.WriteChord(&buf, keys, opts); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) handleNames(w http.ResponseWriter, r *http.Request) {
	aliases, _ := strconv.ParseBool(r.URL.Query().Get("aliases"))
	names := s.store.Table().Names(aliases)
	writeJSON(w, http.StatusOK, model.NamesResponse{Names: nonNil(names)})
}

func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	notes := s.store.Table().FromName(name)
	writeJSON(w, http.StatusOK, model.NameResponse{Name: name, Notes: nonNil(notes)})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read request body: "+err.Error())
		return
	}

	var input model.ParseRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}

	table := s.store.Table()
	res := make([]model.NameResponse, 0, len(input.Names))
	for _, name := range input.Names {
		res = append(res, model.NameResponse{Name: name, Notes: nonNil(table.FromName(name))})
	}
	writeJSON(w, http.StatusOK, res)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			slog.String("id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// empty results encode as [] rather than null
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
