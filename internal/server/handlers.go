// ABOUTME: HTTP handlers for upload, chat, and character listing
// ABOUTME: Upload accepts a multipart file or a url form field
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// maxUploadBytes bounds uploaded file size (50 MB).
const maxUploadBytes = 50 << 20

type chatRequest struct {
	Character string `json:"character"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Character Chat API"})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		// Fall back to regular form encoding for url-only uploads
		if err := r.ParseForm(); err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	text, err := s.extractText(r)
	if err != nil {
		s.logger.Error("extraction failed", zap.Error(err))
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if text == "" {
		s.respondError(w, http.StatusBadRequest, "provide a file or a url")
		return
	}

	result, err := s.engine.Upload(r.Context(), text)
	if err != nil {
		s.logger.Error("upload failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

// extractText pulls document text from the multipart file if present,
// otherwise from the url form field. Returns empty text when neither is
// given.
func (s *Server) extractText(r *http.Request) (string, error) {
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			return "", err
		}
		return s.extractor.ExtractFile(header.Filename, content)
	}

	if url := strings.TrimSpace(r.FormValue("url")); url != "" {
		return s.extractor.ExtractURL(r.Context(), url)
	}
	return "", nil
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Character == "" || req.Message == "" {
		s.respondError(w, http.StatusBadRequest, "character and message are required")
		return
	}

	reply, err := s.engine.Chat(r.Context(), req.Character, req.Message)
	if err != nil {
		s.logger.Error("chat failed", zap.Error(err), zap.String("character", req.Character))
		s.respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	characters := s.engine.Characters()
	if characters == nil {
		characters = []string{}
	}
	s.respondJSON(w, http.StatusOK, map[string][]string{"characters": characters})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
