package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/meetscribe/internal/meeting"
	"github.com/nguyentantai21042004/meetscribe/internal/pipeline"
)

// multipartOverhead is allowed on top of the file limit for form boundaries and fields.
const multipartOverhead = 1 << 20

type processResponse struct {
	pipeline.Result
	MeetingID string `json:"meeting_id,omitempty"`
}

type summarizeRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

func (s *implServer) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Meeting transcription and summarization API"})
}

func (s *implServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *implServer) handleProcess(c *gin.Context) {
	data, filename, ok := s.readUpload(c)
	if !ok {
		return
	}
	if !s.acquire(c) {
		return
	}
	defer s.sem.release()

	ctx := c.Request.Context()
	res, err := s.pipeline.Run(ctx, data, filename)
	if err != nil {
		s.writeError(c, err)
		return
	}

	resp := processResponse{Result: res}
	if s.meetings != nil {
		m := &meeting.Meeting{
			Title:       strings.TrimSpace(c.PostForm("title")),
			SourceFile:  filename,
			Transcript:  res.Transcript,
			Summary:     res.Summary,
			ActionItems: make([]meeting.ActionItem, 0, len(res.ActionItems)),
			CreatedAt:   time.Now().UTC(),
		}
		if m.Title == "" {
			m.Title = strings.TrimSuffix(filename, filepath.Ext(filename))
		}
		for _, item := range res.ActionItems {
			m.ActionItems = append(m.ActionItems, meeting.ActionItem{Description: item, Status: meeting.StatusPending})
		}
		if err := s.meetings.Save(ctx, m); err != nil {
			s.logger.Warn(ctx, "Failed to save meeting for %s: %v", filename, err)
		} else {
			resp.MeetingID = m.ID
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *implServer) handleTranscribe(c *gin.Context) {
	data, filename, ok := s.readUpload(c)
	if !ok {
		return
	}
	if !s.acquire(c) {
		return
	}
	defer s.sem.release()

	transcript, err := s.pipeline.Transcribe(c.Request.Context(), data, filename)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transcript": transcript})
}

func (s *implServer) handleSummarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, codeInvalidRequest, "request body must be JSON with a non-empty \"transcript\"")
		return
	}
	if !s.acquire(c) {
		return
	}
	defer s.sem.release()

	res, err := s.pipeline.Summarize(c.Request.Context(), req.Transcript)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *implServer) handleListMeetings(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			abort(c, http.StatusBadRequest, codeInvalidRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	meetings, err := s.meetings.List(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error(c.Request.Context(), "List meetings: %v", err)
		abort(c, http.StatusInternalServerError, codeInternal, "failed to list meetings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

func (s *implServer) handleGetMeeting(c *gin.Context) {
	m, err := s.meetings.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, meeting.ErrNotFound) {
		abort(c, http.StatusNotFound, codeNotFound, "meeting not found")
		return
	}
	if err != nil {
		s.logger.Error(c.Request.Context(), "Get meeting: %v", err)
		abort(c, http.StatusInternalServerError, codeInternal, "failed to load meeting")
		return
	}
	c.JSON(http.StatusOK, m)
}

// readUpload reads the multipart "file" field, enforcing the size limit.
// On failure the response has already been written.
func (s *implServer) readUpload(c *gin.Context) ([]byte, string, bool) {
	limit := s.opts.MaxUploadBytes
	tooLarge := fmt.Sprintf("File too large. Maximum size is %s", humanize.IBytes(uint64(limit)))

	if limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			abort(c, http.StatusRequestEntityTooLarge, codeTooLarge, tooLarge)
			return nil, "", false
		}
		abort(c, http.StatusBadRequest, codeInvalidRequest, "multipart field \"file\" is required")
		return nil, "", false
	}
	if limit > 0 && header.Size > limit {
		abort(c, http.StatusRequestEntityTooLarge, codeTooLarge, tooLarge)
		return nil, "", false
	}

	f, err := header.Open()
	if err != nil {
		abort(c, http.StatusInternalServerError, codeInternal, "unable to open uploaded file")
		return nil, "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		abort(c, http.StatusInternalServerError, codeInternal, "failed to read uploaded file")
		return nil, "", false
	}

	s.logger.Debug(c.Request.Context(), "Upload %s: %s, detected %s",
		header.Filename, humanize.IBytes(uint64(len(data))), mimetype.Detect(data).String())
	return data, filepath.Base(header.Filename), true
}

// acquire takes a pipeline slot, answering 503 if the client gives up first.
func (s *implServer) acquire(c *gin.Context) bool {
	if err := s.sem.acquire(c.Request.Context()); err != nil {
		abort(c, http.StatusServiceUnavailable, codeBusy, "server busy, try again later")
		return false
	}
	return true
}
