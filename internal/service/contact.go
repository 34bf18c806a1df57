package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nahl/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ContactStatus values reported to the caller.
const (
	// ContactSaved means the message is on disk; the relay was skipped or failed.
	ContactSaved = "saved"
	// ContactSent means the message is on disk and the relay succeeded.
	ContactSent = "sent"
)

// ContactRequest is a contact-form submission body.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactMessage is the persisted (and relayed) record.
type ContactMessage struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	ReceivedAt string `json:"received_at"`
}

// ContactResult reports the outcome of a submission. Status is always
// "saved" or "sent"; a relay failure is degraded to a note, never an error,
// because the record is already durable by the time the relay runs.
type ContactResult struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// Mailer relays a contact message to the site owner. Implementations decide
// transport; nil means no relay is configured.
type Mailer interface {
	Send(ctx context.Context, msg *ContactMessage) error
}

// ContactService validates, persists and optionally relays contact messages.
type ContactService struct {
	dir    string
	mailer Mailer
	logger *slog.Logger
}

// NewContactService creates a contact service writing to dir. mailer may be
// nil when SMTP is not configured.
func NewContactService(dir string, mailer Mailer, logger *slog.Logger) *ContactService {
	return &ContactService{
		dir:    dir,
		mailer: mailer,
		logger: logger,
	}
}

// Submit validates the request, persists it as a timestamped JSON file, and
// attempts the email relay when one is configured.
func (s *ContactService) Submit(ctx context.Context, req *ContactRequest) (*ContactResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Message, validation.Required),
	); err != nil {
		// Email syntax is intentionally not validated; only presence is.
		return nil, &domain.ValidationError{Message: "name, email and message are required"}
	}

	now := time.Now().UTC()
	msg := &ContactMessage{
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
		ReceivedAt: now.Format("2006-01-02T15:04:05Z"),
	}

	if err := s.persist(msg, now); err != nil {
		return nil, err
	}

	if s.mailer == nil {
		return &ContactResult{Status: ContactSaved}, nil
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("contact relay failed",
			"from", msg.Email,
			"error", err,
		)
		return &ContactResult{
			Status: ContactSaved,
			Note:   "message saved but email relay failed",
		}, nil
	}

	s.logger.Info("contact relayed", "from", msg.Email)
	return &ContactResult{Status: ContactSent}, nil
}

// persist writes the message before any relay attempt. The filename keeps
// the second-granularity receipt timestamp readable and appends a short
// random suffix so two messages in the same second cannot overwrite each
// other.
func (s *ContactService) persist(msg *ContactMessage, now time.Time) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create messages dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.json", now.Format("20060102T150405Z"), uuid.NewString()[:8])
	path := filepath.Join(s.dir, name)

	data, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	s.logger.Info("contact saved", "file", name)
	return nil
}
