package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/claude/daymark/internal/storage"
	"github.com/go-chi/chi/v5"
)

// The sync store holds small opaque JSON documents keyed per client, so
// different frontends can share state without the server knowing their
// schema.

const maxSyncValueBytes = 256 << 10 // 256 KiB per document

func (s *Server) handleListSyncKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := s.db.ListSyncKeys(r.Context(), defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if keys == nil {
		keys = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"keys": keys})
}

func (s *Server) handleGetSyncEntry(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	entry, err := s.db.GetSyncEntry(r.Context(), defaultUserID, key)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "key not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handlePutSyncEntry(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSyncValueBytes+1))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}
	if len(body) > maxSyncValueBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "document too large"})
		return
	}
	if !json.Valid(body) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "value must be valid JSON"})
		return
	}

	if err := s.db.PutSyncEntry(r.Context(), defaultUserID, key, body); err != nil {
		s.log.Error("sync put failed", "key", key, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "stored", "key": key})
}

func (s *Server) handleDeleteSyncEntry(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	err := s.db.DeleteSyncEntry(r.Context(), defaultUserID, key)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "key not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
