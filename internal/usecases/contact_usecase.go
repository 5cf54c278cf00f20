package usecases

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"solene-digital.backend/internal/domain/entities"
	"solene-digital.backend/internal/domain/repositories"
	"solene-digital.backend/pkg/logger"
)

// Notifier reacts to a stored contact submission.
type Notifier interface {
	Notify(ctx context.Context, contact *entities.Contact) error
}

type contactMetrics interface {
	ContactCreated()
}

// ContactUsecase stores contact submissions and dispatches notifications
// in the background.
type ContactUsecase struct {
	contacts      repositories.ContactRepository
	notifier      Notifier
	notifyTimeout time.Duration
	metrics       contactMetrics
	wg            sync.WaitGroup
}

func NewContactUsecase(
	contacts repositories.ContactRepository,
	notifier Notifier,
	notifyTimeout time.Duration,
	metrics contactMetrics,
) *ContactUsecase {
	return &ContactUsecase{
		contacts:      contacts,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		metrics:       metrics,
	}
}

// Submit persists a validated submission. The notification runs after the
// write and its outcome never reaches the caller.
func (u *ContactUsecase) Submit(ctx context.Context, input entities.ContactInput) (*entities.Contact, error) {
	contact, err := u.contacts.CreateContact(ctx, input)
	if err != nil {
		return nil, err
	}
	if u.metrics != nil {
		u.metrics.ContactCreated()
	}
	logger.Info(ctx, "Contact submission stored", zap.Int64("contact_id", contact.ID))

	u.dispatch(ctx, contact)
	return contact, nil
}

func (u *ContactUsecase) dispatch(ctx context.Context, contact *entities.Contact) {
	if u.notifier == nil {
		return
	}
	notifyCtx := context.WithoutCancel(ctx)

	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Error(notifyCtx, "Contact notification panicked", zap.Any("panic", r))
			}
		}()

		c := notifyCtx
		if u.notifyTimeout > 0 {
			var cancel context.CancelFunc
			c, cancel = context.WithTimeout(notifyCtx, u.notifyTimeout)
			defer cancel()
		}
		// errors are already logged by the notifier
		_ = u.notifier.Notify(c, contact)
	}()
}

// Wait blocks until every dispatched notification has finished.
func (u *ContactUsecase) Wait() {
	u.wg.Wait()
}
