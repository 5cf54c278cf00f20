package usecases

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"go.uber.org/zap"

	"solene-digital.backend/internal/domain/entities"
	domainerrors "solene-digital.backend/internal/domain/errors"
	"solene-digital.backend/pkg/logger"
)

const (
	NotificationAdmin        = "admin"
	NotificationConfirmation = "confirmation"

	confirmationSubject = "We've received your message - Solène Digital"
)

//go:embed templates/*.html
var templatesFS embed.FS

var emailTemplates = template.Must(
	template.New("email").
		Funcs(template.FuncMap{"nl2br": nl2br}).
		ParseFS(templatesFS, "templates/*.html"),
)

// nl2br escapes s and turns line breaks into <br>.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// Mailer sends a single email.
type Mailer interface {
	Send(ctx context.Context, email entities.Email) error
}

type notificationMetrics interface {
	NotificationResult(kind string, err error)
}

// ContactNotifier emails the studio and the submitter about a new contact.
type ContactNotifier struct {
	mailer     Mailer
	adminEmail string
	metrics    notificationMetrics
}

func NewContactNotifier(mailer Mailer, adminEmail string, metrics notificationMetrics) *ContactNotifier {
	return &ContactNotifier{
		mailer:     mailer,
		adminEmail: strings.TrimSpace(adminEmail),
		metrics:    metrics,
	}
}

// Notify sends the admin notification and the client confirmation. The two
// sends are independent; failures are logged and returned joined.
func (n *ContactNotifier) Notify(ctx context.Context, contact *entities.Contact) error {
	var errs []error

	if n.adminEmail == "" {
		logger.Warn(ctx, "ADMIN_EMAIL not set, skipping admin notification", zap.Int64("contact_id", contact.ID))
	} else {
		email, err := renderEmail("admin_notification.html", n.adminEmail, "New Contact Submission from "+contact.Name, contact)
		if err == nil {
			err = n.mailer.Send(ctx, email)
		}
		errs = append(errs, n.record(ctx, NotificationAdmin, contact, err))
	}

	email, err := renderEmail("client_confirmation.html", contact.Email, confirmationSubject, contact)
	if err == nil {
		err = n.mailer.Send(ctx, email)
	}
	errs = append(errs, n.record(ctx, NotificationConfirmation, contact, err))

	return errors.Join(errs...)
}

func (n *ContactNotifier) record(ctx context.Context, kind string, contact *entities.Contact, err error) error {
	if n.metrics != nil {
		n.metrics.NotificationResult(kind, err)
	}
	if err == nil {
		return nil
	}
	logger.Error(ctx, "Failed to send contact notification",
		zap.String("kind", kind),
		zap.Int64("contact_id", contact.ID),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %s: %w", domainerrors.ErrNotification, kind, err)
}

func renderEmail(name, to, subject string, contact *entities.Contact) (entities.Email, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, contact); err != nil {
		return entities.Email{}, fmt.Errorf("render %s: %w", name, err)
	}
	return entities.Email{To: to, Subject: subject, HTML: buf.String()}, nil
}
