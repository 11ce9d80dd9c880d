// Package handlers provides HTTP request handlers for the tabib API
// endpoints: the consultation assistant, direct catalog lookups, health
// checks and response formatting with input validation.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/BlueSkyGuardian/tabibapp/assistant"
	"github.com/BlueSkyGuardian/tabibapp/logging"
)

// internalErrorPrefix marks server-side faults in the consultation reply so
// the client can render them inside the chat like any other answer.
const internalErrorPrefix = "❌ خطأ في الخادم الداخلي: "

// Responder runs one consultation round trip. Satisfied by *assistant.Assistant.
type Responder interface {
	Respond(ctx context.Context, req assistant.Request) (assistant.Result, error)
}

// AssistantResponse is the consultation reply envelope.
type AssistantResponse struct {
	Result     string `json:"result"`
	ResponseID string `json:"responseId,omitempty"`
	ThreadID   string `json:"threadId,omitempty"`
}

// HandleAssistant serves POST /assistant. The request is a multipart form:
// a "messages" field with the conversation as JSON, an optional
// "previousResponseId" and an optional "image" file.
func HandleAssistant(responder Responder, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBody)

		// Parts above 10MB spill to disk instead of staying in memory
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			logging.Warn("Failed to parse consultation form", "error", err)
			RespondWithJSON(w, http.StatusBadRequest, AssistantResponse{
				Result: internalErrorPrefix + "نموذج الاستشارة غير صالح",
			})
			return
		}

		var turns []assistant.Turn
		if err := json.Unmarshal([]byte(r.FormValue("messages")), &turns); err != nil {
			logging.Warn("Malformed conversation payload", "error", err)
			RespondWithJSON(w, http.StatusInternalServerError, AssistantResponse{
				Result: internalErrorPrefix + "تعذر قراءة سجل المحادثة",
			})
			return
		}
		if len(turns) == 0 {
			RespondWithJSON(w, http.StatusBadRequest, AssistantResponse{
				Result: internalErrorPrefix + "لم يتم إرسال أي رسالة",
			})
			return
		}

		req := assistant.Request{
			Turns:              turns,
			Image:              readImage(r),
			PreviousResponseID: r.FormValue("previousResponseId"),
		}

		result, err := responder.Respond(r.Context(), req)
		if err != nil {
			var fault *assistant.Fault
			msg := internalErrorPrefix + "حدث خطأ غير متوقع"
			if errors.As(err, &fault) {
				msg = fault.Notice
			}
			logging.Error("Consultation failed", "error", err)
			RespondWithJSON(w, http.StatusInternalServerError, AssistantResponse{
				Result: msg,
			})
			return
		}

		RespondWithJSON(w, http.StatusOK, AssistantResponse{
			Result:     result.Answer,
			ResponseID: result.ResponseID,
			// Mirrors responseId, older frontends read this field
			ThreadID: result.ResponseID,
		})
	}
}

// readImage extracts the optional uploaded photo. The upload is staged in a
// temp file so oversized in-memory parts get flushed to disk by the
// multipart reader first, then read back and removed. Any failure degrades
// to a text-only consultation instead of rejecting the request.
func readImage(r *http.Request) *assistant.ImageAttachment {
	file, header, err := r.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			logging.Warn("Failed to read uploaded image", "error", err)
		}
		return nil
	}
	defer file.Close()

	tempPath := filepath.Join(os.TempDir(), "tabib-upload-"+uuid.NewString())
	temp, err := os.Create(tempPath)
	if err != nil {
		logging.Warn("Failed to stage uploaded image", "error", err)
		return nil
	}
	defer os.Remove(tempPath)

	_, copyErr := io.Copy(temp, file)
	closeErr := temp.Close()
	if copyErr != nil || closeErr != nil {
		logging.Warn("Failed to stage uploaded image", "copy_error", copyErr, "close_error", closeErr)
		return nil
	}

	data, err := os.ReadFile(tempPath)
	if err != nil {
		logging.Warn("Failed to read staged image", "error", err)
		return nil
	}

	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		logging.Warn("Rejected non-image upload", "content_type", mimeType)
		return nil
	}

	return &assistant.ImageAttachment{MimeType: mimeType, Data: data}
}
