package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"mime/multipart"
	"testing"

	"github.com/gin-gonic/gin"

	"transcriptai/internal/ai"
	"transcriptai/internal/app"
	"transcriptai/internal/model"
)

type fakeStore struct {
	transcripts map[string]*model.Transcript
	created     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{transcripts: map[string]*model.Transcript{}}
}

func (s *fakeStore) Create(t *model.Transcript) error {
	s.created++
	if t.ID == "" {
		t.ID = fmt.Sprintf("t-%d", s.created)
	}
	clone := *t
	s.transcripts[t.ID] = &clone
	return nil
}

func (s *fakeStore) GetByID(id string) (*model.Transcript, error) {
	t, ok := s.transcripts[id]
	if !ok {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (s *fakeStore) UpdateSummary(id, summaryText string) error {
	t, ok := s.transcripts[id]
	if !ok {
		return errors.New("missing row")
	}
	t.SummaryText = summaryText
	return nil
}

type fakeCompleter struct {
	reply string
	err   error
	calls int
}

func (c *fakeCompleter) Complete(context.Context, ai.ChatConfig, []ai.ChatMessage) (string, error) {
	c.calls++
	return c.reply, c.err
}

type fakeMailer struct {
	err        error
	sends      int
	recipients []string
}

func (m *fakeMailer) Send(_ context.Context, recipients []string, _, _ string) error {
	m.sends++
	m.recipients = recipients
	return m.err
}

func newTestRouter(store *fakeStore, completer *fakeCompleter, mailer *fakeMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := app.NewSummaryService(
		store,
		completer,
		mailer,
		nil,
		nil,
		ai.ChatConfig{BaseURL: "http://llm.test", APIKey: "k", Model: "m"},
		func(summaryText string) string { return "<html>" + summaryText + "</html>" },
		nil,
	)

	tmpl := template.Must(template.New("home.html").Parse(`<p class="error">{{ .error }}</p>`))
	template.Must(tmpl.New("summary.html").Parse(`<div>{{ .transcript.OriginalText }}</div><div>{{ .transcript.SummaryText }}</div>`))

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	homeHandler := NewHomeHandler(svc, nil)
	summaryHandler := NewSummaryHandler(svc, nil)

	router.GET("/", homeHandler.Page)
	router.POST("/", homeHandler.Upload)
	router.Any("/summary/*path", summaryHandler.Dispatch)

	return router
}

func multipartUpload(t *testing.T, fileContent []byte, prompt string, includeFile bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if includeFile {
		part, err := writer.CreateFormFile("transcript", "meeting.txt")
		if err != nil {
			t.Fatalf("create form file failed: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("write form file failed: %v", err)
		}
	}
	if err := writer.WriteField("prompt", prompt); err != nil {
		t.Fatalf("write prompt field failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer failed: %v", err)
	}

	return &buf, writer.FormDataContentType()
}
