package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"transcriptai/internal/ai"
	"transcriptai/internal/model"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrGeneration         = errors.New("summary generation failed")
)

const shareSubject = "Your AI-Generated Summary"

// TranscriptStore is the persistence surface the service needs. GetByID
// returns (nil, nil) when the id does not resolve.
type TranscriptStore interface {
	Create(transcript *model.Transcript) error
	GetByID(id string) (*model.Transcript, error)
	UpdateSummary(id, summaryText string) error
}

// Completer issues one synchronous chat-completions call.
type Completer interface {
	Complete(ctx context.Context, cfg ai.ChatConfig, messages []ai.ChatMessage) (string, error)
}

// Mailer sends one HTML email to a list of recipients.
type Mailer interface {
	Send(ctx context.Context, recipients []string, subject, htmlBody string) error
}

// TranscriptCache caches transcripts for the view page. All methods are
// best-effort from the service's point of view.
type TranscriptCache interface {
	Get(ctx context.Context, id string) (*model.Transcript, bool, error)
	Set(ctx context.Context, transcript *model.Transcript) error
	Delete(ctx context.Context, id string) error
}

// SharePublisher enqueues a share event for asynchronous persistence.
type SharePublisher interface {
	Publish(ctx context.Context, log model.ShareLog) error
}

type SummaryService struct {
	store     TranscriptStore
	llmClient Completer
	mailer    Mailer
	cache     TranscriptCache
	publisher SharePublisher
	llmConfig ai.ChatConfig
	buildHTML func(summaryText string) string
	logger    *zap.Logger
}

func NewSummaryService(
	store TranscriptStore,
	llmClient Completer,
	mailer Mailer,
	cache TranscriptCache,
	publisher SharePublisher,
	llmConfig ai.ChatConfig,
	buildHTML func(summaryText string) string,
	logger *zap.Logger,
) *SummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryService{
		store:     store,
		llmClient: llmClient,
		mailer:    mailer,
		cache:     cache,
		publisher: publisher,
		llmConfig: llmConfig,
		buildHTML: buildHTML,
		logger:    logger,
	}
}

// Generate builds the combined prompt and issues one completion call. The
// returned text is the first choice's content, untouched apart from
// whitespace trimming.
func (s *SummaryService) Generate(ctx context.Context, transcriptText, instruction string) (string, error) {
	prompt := buildPrompt(transcriptText, instruction)

	messages := []ai.ChatMessage{
		{Role: "user", Content: prompt},
	}
	summary, err := s.llmClient.Complete(ctx, s.llmConfig, messages)
	if err != nil {
		s.logger.Error("summary generation failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return strings.TrimSpace(summary), nil
}

// CreateFromUpload generates a summary for the decoded upload and persists a
// new transcript. No record is created when generation fails.
func (s *SummaryService) CreateFromUpload(ctx context.Context, originalText, instruction string) (*model.Transcript, error) {
	if originalText == "" {
		return nil, ErrInvalidInput
	}

	summary, err := s.Generate(ctx, originalText, instruction)
	if err != nil {
		return nil, err
	}

	transcript := &model.Transcript{
		OriginalText: originalText,
		SummaryText:  summary,
	}
	if err := s.store.Create(transcript); err != nil {
		return nil, err
	}

	s.logger.Info("transcript created",
		zap.String("transcript_id", transcript.ID),
		zap.Int("original_bytes", len(originalText)),
	)
	return transcript, nil
}

func (s *SummaryService) Get(ctx context.Context, id string) (*model.Transcript, error) {
	if id == "" {
		return nil, ErrTranscriptNotFound
	}

	if s.cache != nil {
		if cached, hit, err := s.cache.Get(ctx, id); err == nil && hit {
			return cached, nil
		}
	}

	transcript, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transcript == nil {
		return nil, ErrTranscriptNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, transcript); err != nil {
			s.logger.Warn("transcript cache set failed", zap.Error(err))
		}
	}
	return transcript, nil
}

// UpdateSummary overwrites the summary text in place. Last write wins;
// concurrent updates against the same id are not coordinated.
func (s *SummaryService) UpdateSummary(ctx context.Context, id, summaryText string) error {
	transcript, err := s.store.GetByID(id)
	if err != nil {
		return err
	}
	if transcript == nil {
		return ErrTranscriptNotFound
	}

	if err := s.store.UpdateSummary(id, summaryText); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			s.logger.Warn("transcript cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}

// Share emails the current summary to a comma-separated recipient list and
// returns the trimmed addresses the mail was sent to. Addresses are passed
// through to the transport without validation.
func (s *SummaryService) Share(ctx context.Context, id, recipientsRaw string) ([]string, error) {
	transcript, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transcript == nil {
		return nil, ErrTranscriptNotFound
	}

	recipients := splitRecipients(recipientsRaw)
	if len(recipients) == 0 {
		return nil, ErrInvalidInput
	}

	htmlBody := s.buildHTML(transcript.SummaryText)
	if err := s.mailer.Send(ctx, recipients, shareSubject, htmlBody); err != nil {
		s.logger.Error("share email failed",
			zap.String("transcript_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	if s.publisher != nil {
		event := model.ShareLog{
			TranscriptID: id,
			Recipients:   strings.Join(recipients, ","),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("share event publish failed", zap.Error(err))
		}
	}

	s.logger.Info("summary shared",
		zap.String("transcript_id", id),
		zap.Int("recipient_count", len(recipients)),
	)
	return recipients, nil
}

func buildPrompt(transcriptText, instruction string) string {
	var sb strings.Builder
	sb.WriteString("**Instruction:**\n")
	sb.WriteString(instruction)
	sb.WriteString("\n\n**Transcript:**\n---\n")
	sb.WriteString(transcriptText)
	sb.WriteString("\n---\n\nPlease provide a response based on the instruction above.")
	return sb.String()
}

func splitRecipients(raw string) []string {
	var recipients []string
	for _, part := range strings.Split(raw, ",") {
		addr := strings.TrimSpace(part)
		if addr == "" {
			continue
		}
		recipients = append(recipients, addr)
	}
	return recipients
}
