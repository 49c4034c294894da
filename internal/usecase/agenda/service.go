package agenda

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/agendacraft/internal/domain/entities"
	"github.com/johnquangdev/agendacraft/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/agendacraft/internal/usecase/errors"
	"github.com/johnquangdev/agendacraft/pkg/extractor"
	"github.com/johnquangdev/agendacraft/pkg/reqcontext"
)

// Messages shown to the user through Session.LastError
const (
	MessageUnsupportedFileType = "Unsupported file type. Please upload .docx or .md files."
	MessageExtractionFailed    = "Failed to process file. Please try again."
	MessageGenerationFailed    = "Failed to generate agenda. Please check your document and try again."
)

// Error codes stored on failed generation records
const (
	codeUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
	codeExtractionFailed    = "EXTRACTION_FAILED"
	codeGenerationFailed    = "AGENDA_GENERATION_FAILED"
	codeSessionSaveFailed   = "INTEGRATION_CACHE_FAILED"
)

// A session left busy longer than this is treated as idle, which recovers
// from a process that stopped mid-generation while using a shared store.
const defaultStaleAfter = 5 * time.Minute

const lockStripes = 64

// Generator produces the raw JSON agenda for a document
type Generator interface {
	GenerateAgenda(ctx context.Context, documentText string) (string, error)
}

// DocumentRenderer renders an agenda as a Word document
type DocumentRenderer interface {
	RenderDocx(agenda *entities.MeetingAgenda) ([]byte, error)
}

// Service drives the agenda session state machine:
// idle -> uploading -> processing -> displaying -> idle (reset).
// Every failure returns the session to idle with LastError set.
type Service struct {
	sessions        repositories.SessionRepository
	generations     repositories.GenerationRepository
	archive         repositories.DocumentArchive
	generator       Generator
	renderer        DocumentRenderer
	parser          *Parser
	defaultDuration int
	staleAfter      time.Duration
	logger          *zap.Logger
	now             func() time.Time

	inflight sync.Map // uuid.UUID -> struct{}
	locks    [lockStripes]sync.Mutex
}

// NewService creates a new agenda service. generations and archive may be nil.
func NewService(
	sessions repositories.SessionRepository,
	generations repositories.GenerationRepository,
	archive repositories.DocumentArchive,
	generator Generator,
	renderer DocumentRenderer,
	defaultDuration int,
	logger *zap.Logger,
) *Service {
	if defaultDuration < 1 || defaultDuration > entities.MaxTotalDuration {
		defaultDuration = entities.DefaultTotalDuration
	}
	return &Service{
		sessions:        sessions,
		generations:     generations,
		archive:         archive,
		generator:       generator,
		renderer:        renderer,
		parser:          NewParser(),
		defaultDuration: defaultDuration,
		staleAfter:      defaultStaleAfter,
		logger:          logger,
		now:             time.Now,
	}
}

// Current returns the session, or a fresh idle one when none is stored
func (s *Service) Current(ctx context.Context, sessionID uuid.UUID) (*entities.Session, error) {
	return s.load(ctx, sessionID)
}

// Upload extracts the document text, asks the model for an agenda and displays it.
// Uploads are accepted only from idle. Unsupported files never reach the model.
func (s *Service) Upload(ctx context.Context, sessionID uuid.UUID, fileName string, data []byte) (*entities.Session, error) {
	if _, busy := s.inflight.LoadOrStore(sessionID, struct{}{}); busy {
		return nil, usecaseErrors.ErrGenerationInProgress
	}
	defer s.inflight.Delete(sessionID)

	if _, err := s.update(ctx, sessionID, func(sess *entities.Session) error {
		switch {
		case sess.IsBusy() && !s.isStale(sess):
			return usecaseErrors.ErrGenerationInProgress
		case sess.State == entities.SessionStateDisplaying:
			return usecaseErrors.ErrAgendaAlreadyDisplayed
		}
		sess.MarkUploading(fileName)
		return nil
	}); err != nil {
		return nil, err
	}

	started := s.now()
	record := entities.NewGenerationRecord(sessionID, fileName, extractor.Extension(fileName))

	fileType, err := extractor.Detect(fileName)
	if err != nil {
		record.MarkFailed(codeUnsupportedFileType, s.now().Sub(started))
		s.audit(ctx, record)
		return nil, s.fail(ctx, sessionID, MessageUnsupportedFileType,
			fmt.Errorf("%w: %s", usecaseErrors.ErrUnsupportedFileType, fileName))
	}
	record.FileType = string(fileType)

	text, err := extractor.Extract(fileName, data)
	if err != nil {
		record.MarkFailed(codeExtractionFailed, s.now().Sub(started))
		s.audit(ctx, record)
		return nil, s.fail(ctx, sessionID, MessageExtractionFailed,
			fmt.Errorf("%w: %v", usecaseErrors.ErrExtractionFailed, err))
	}
	record.TextLength = len(text)

	if key := s.archiveSource(ctx, sessionID, fileName, data); key != "" {
		record.SourceObject = &key
	}

	if _, err := s.update(ctx, sessionID, func(sess *entities.Session) error {
		sess.MarkProcessing()
		return nil
	}); err != nil {
		record.MarkFailed(codeSessionSaveFailed, s.now().Sub(started))
		s.audit(ctx, record)
		return nil, s.fail(ctx, sessionID, MessageGenerationFailed, err)
	}

	if s.logger != nil {
		s.logger.Info("🧠 Generating agenda",
			append(reqcontext.Fields(ctx),
				zap.String("file_name", fileName),
				zap.String("file_type", string(fileType)),
				zap.Int("text_length", len(text)),
			)...,
		)
	}

	draft, err := s.generate(ctx, text)
	if err != nil {
		record.MarkFailed(codeGenerationFailed, s.now().Sub(started))
		s.audit(ctx, record)
		return nil, s.fail(ctx, sessionID, MessageGenerationFailed, err)
	}

	// the model call already succeeded, so a disconnected client still gets its agenda stored
	session, err := s.update(context.WithoutCancel(ctx), sessionID, func(sess *entities.Session) error {
		sess.MarkDisplaying(draft.ToAgenda(sess.TotalDuration))
		return nil
	})
	if err != nil {
		record.MarkFailed(codeSessionSaveFailed, s.now().Sub(started))
		s.audit(ctx, record)
		return nil, s.fail(ctx, sessionID, MessageGenerationFailed, err)
	}

	record.MarkSucceeded(session.Agenda, s.now().Sub(started))
	s.audit(ctx, record)

	if s.logger != nil {
		s.logger.Info("✅ Agenda generated",
			append(reqcontext.Fields(ctx),
				zap.String("title", session.Agenda.Title),
				zap.Int("item_count", len(session.Agenda.Items)),
				zap.Float64("percentage_sum", record.PercentageSum),
				zap.Int64("latency_ms", record.LatencyMs),
			)...,
		)
	}

	return session, nil
}

// SetTotalDuration stores the meeting length, clamped to [1, MaxTotalDuration]
func (s *Service) SetTotalDuration(ctx context.Context, sessionID uuid.UUID, minutes int) (*entities.Session, error) {
	switch {
	case minutes < 1:
		minutes = 1
	case minutes > entities.MaxTotalDuration:
		minutes = entities.MaxTotalDuration
	}
	return s.update(ctx, sessionID, func(sess *entities.Session) error {
		sess.SetTotalDuration(minutes)
		return nil
	})
}

// ExportText renders the displayed agenda in the clipboard format
func (s *Service) ExportText(ctx context.Context, sessionID uuid.UUID) (string, error) {
	agenda, err := s.displayedAgenda(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return FormatText(agenda), nil
}

// ExportDocx renders the displayed agenda as a Word document.
// The title is taken from the same snapshot so the attachment name always matches its content.
func (s *Service) ExportDocx(ctx context.Context, sessionID uuid.UUID) (doc []byte, title string, err error) {
	agenda, err := s.displayedAgenda(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	if s.renderer == nil {
		return nil, "", fmt.Errorf("%w: docx", usecaseErrors.ErrUnsupportedExport)
	}
	doc, err = s.renderer.RenderDocx(agenda)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render docx: %w", err)
	}
	return doc, agenda.Title, nil
}

// Reset drops the agenda and returns to idle. The total duration is kept.
func (s *Service) Reset(ctx context.Context, sessionID uuid.UUID) (*entities.Session, error) {
	if _, busy := s.inflight.Load(sessionID); busy {
		return nil, usecaseErrors.ErrGenerationInProgress
	}
	return s.update(ctx, sessionID, func(sess *entities.Session) error {
		if sess.IsBusy() && !s.isStale(sess) {
			return usecaseErrors.ErrGenerationInProgress
		}
		sess.Reset()
		return nil
	})
}

// Generations lists the audit records of one session, newest first
func (s *Service) Generations(ctx context.Context, sessionID uuid.UUID, limit int) ([]*entities.GenerationRecord, error) {
	if s.generations == nil {
		return []*entities.GenerationRecord{}, nil
	}
	records, err := s.generations.ListBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	return records, nil
}

// Generation returns one audit record. Records of other sessions are reported as not found.
func (s *Service) Generation(ctx context.Context, sessionID, id uuid.UUID) (*entities.GenerationRecord, error) {
	if s.generations == nil {
		return nil, usecaseErrors.ErrNotFound
	}
	record, err := s.generations.FindByID(ctx, id)
	if errors.Is(err, entities.ErrGenerationRecordNotFound) {
		return nil, usecaseErrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find generation: %w", err)
	}
	if record.SessionID != sessionID {
		return nil, usecaseErrors.ErrNotFound
	}
	return record, nil
}

func (s *Service) generate(ctx context.Context, text string) (*entities.AgendaDraft, error) {
	raw, err := s.generator.GenerateAgenda(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrGenerationFailed, err)
	}
	return s.parser.ParseAgendaDraft(raw)
}

func (s *Service) displayedAgenda(ctx context.Context, sessionID uuid.UUID) (*entities.MeetingAgenda, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != entities.SessionStateDisplaying || sess.Agenda == nil {
		return nil, usecaseErrors.ErrAgendaNotFound
	}
	return sess.Agenda, nil
}

// fail returns the session to idle with a user message and hands back cause
func (s *Service) fail(ctx context.Context, sessionID uuid.UUID, message string, cause error) error {
	if s.logger != nil {
		s.logger.Warn("❌ Agenda upload failed",
			append(reqcontext.Fields(ctx), zap.Error(cause))...,
		)
	}

	if _, err := s.update(context.WithoutCancel(ctx), sessionID, func(sess *entities.Session) error {
		sess.MarkFailed(message)
		return nil
	}); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func (s *Service) archiveSource(ctx context.Context, sessionID uuid.UUID, fileName string, data []byte) string {
	if s.archive == nil {
		return ""
	}

	key, err := s.archive.Archive(ctx, sessionID, fileName, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Failed to archive source document",
				append(reqcontext.Fields(ctx), zap.String("file_name", fileName), zap.Error(err))...,
			)
		}
		return ""
	}
	return key
}

// audit stores the record; failures are logged and never reach the caller
func (s *Service) audit(ctx context.Context, record *entities.GenerationRecord) {
	if s.generations == nil {
		return
	}

	if err := s.generations.Create(context.WithoutCancel(ctx), record); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to store generation record",
			append(reqcontext.Fields(ctx), zap.String("record_id", record.ID.String()), zap.Error(err))...,
		)
	}
}

func (s *Service) load(ctx context.Context, sessionID uuid.UUID) (*entities.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, entities.ErrSessionNotFound) {
		return entities.NewSession(sessionID, s.defaultDuration), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return sess, nil
}

// update runs a read-modify-write on the session under its lock stripe.
// Nothing is saved when fn returns an error.
func (s *Service) update(ctx context.Context, sessionID uuid.UUID, fn func(*entities.Session) error) (*entities.Session, error) {
	mu := &s.locks[sessionID[len(sessionID)-1]%lockStripes]
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

func (s *Service) isStale(sess *entities.Session) bool {
	return s.now().Sub(sess.UpdatedAt) > s.staleAfter
}
