package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/teamhaven/haven/internal/domain"
	"github.com/teamhaven/haven/internal/service"
	"github.com/teamhaven/haven/pkg/httpx"
)

// RecordsHandler serves the encrypted evidence endpoints. All routes require
// an authenticated user; each record is only ever visible to its owner.
type RecordsHandler struct {
	RecordService *service.RecordService
}

type recordResponse struct {
	ID          int64  `json:"id"`
	Kind        string `json:"kind"`
	ContentType string `json:"contentType"`
	RecordedAt  string `json:"recordedAt"`
	CreatedAt   string `json:"createdAt"`
}

func toRecordResponse(rec domain.Record) recordResponse {
	return recordResponse{
		ID:          rec.ID,
		Kind:        string(rec.Kind),
		ContentType: rec.ContentType,
		RecordedAt:  rec.RecordedAt.UTC().Format(time.RFC3339),
		CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type uploadResponse struct {
	ID int64 `json:"id"`
}

// HandleUploadPicture godoc
//
//	@Summary		Upload an encrypted picture
//	@Description	Multipart form with fields: file, recordPassword, recordedAt
//	@Description	(RFC 3339). The payload is sealed with a key derived from
//	@Description	recordPassword; the server cannot read it back without it.
//	@Tags			Records
//	@Accept			mpfd
//	@Produce		json
//	@Success		201	{object}	uploadResponse
//	@Failure		400	{object}	messageResponse
//	@Failure		413	{object}	messageResponse
//	@Security		BearerAuth
//	@Router			/v1/records/pictures [post].
func (h *RecordsHandler) HandleUploadPicture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	if err := r.ParseMultipartForm(service.MaxRecordSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	recordPassword := r.FormValue("recordPassword")
	if recordPassword == "" {
		writeMessage(w, http.StatusBadRequest, "recordPassword is required")
		return
	}
	recordedAt, err := parseRecordedAt(r.FormValue("recordedAt"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "recordedAt must be an RFC 3339 timestamp")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	id, err := h.RecordService.UploadPicture(ctx, userID, file, contentType, recordPassword, recordedAt)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, uploadResponse{ID: id})
}

type uploadDiaryRequest struct {
	Text           string `json:"text"`
	RecordPassword string `json:"recordPassword"`
	RecordedAt     string `json:"recordedAt"`
}

// HandleUploadDiary godoc
//
//	@Summary		Upload an encrypted diary entry
//	@Tags			Records
//	@Accept			json
//	@Produce		json
//	@Param			request	body	uploadDiaryRequest	true	"diary entry"
//	@Success		201	{object}	uploadResponse
//	@Failure		400	{object}	messageResponse
//	@Security		BearerAuth
//	@Router			/v1/records/diaries [post].
func (h *RecordsHandler) HandleUploadDiary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	var req uploadDiaryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}
	if req.Text == "" {
		writeMessage(w, http.StatusBadRequest, "text is required")
		return
	}
	if req.RecordPassword == "" {
		writeMessage(w, http.StatusBadRequest, "recordPassword is required")
		return
	}
	recordedAt, err := parseRecordedAt(req.RecordedAt)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "recordedAt must be an RFC 3339 timestamp")
		return
	}

	id, err := h.RecordService.UploadDiary(ctx, userID, req.Text, req.RecordPassword, recordedAt)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, uploadResponse{ID: id})
}

// HandleList godoc
//
//	@Summary		List the caller's records
//	@Tags			Records
//	@Produce		json
//	@Success		200	{array}	recordResponse
//	@Security		BearerAuth
//	@Router			/v1/records [get].
func (h *RecordsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	records, err := h.RecordService.List(ctx, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordResponse(rec))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type openRecordRequest struct {
	RecordPassword string `json:"recordPassword"`
}

// HandleOpen godoc
//
//	@Summary		Decrypt and return a record's content
//	@Description	Responds with the original payload bytes under the content
//	@Description	type captured at upload. A wrong record password is a 400;
//	@Description	records owned by someone else look like a 404.
//	@Tags			Records
//	@Accept			json
//	@Param			id		path	int					true	"record id"
//	@Param			request	body	openRecordRequest	true	"record password"
//	@Success		200
//	@Failure		400	{object}	messageResponse
//	@Failure		404	{object}	messageResponse
//	@Security		BearerAuth
//	@Router			/v1/records/{id}/open [post].
func (h *RecordsHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	recordID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	var req openRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}
	if req.RecordPassword == "" {
		writeMessage(w, http.StatusBadRequest, "recordPassword is required")
		return
	}

	rec, content, err := h.RecordService.OpenRecord(ctx, userID, recordID, req.RecordPassword)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", rec.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func parseRecordedAt(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339, raw)
}
