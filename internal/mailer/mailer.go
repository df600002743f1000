package mailer

import (
	"fmt"

	"hrm-backend/config"
	"hrm-backend/internal/model"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Notifier sends out-of-band notifications. Implementations must not make
// delivery failures fatal to the calling operation.
type Notifier interface {
	LeaveDecided(toEmail string, leave *model.Leave) error
}

type mailNotifier struct {
	cfg config.Config
}

func New(cfg config.Config) Notifier {
	if !cfg.MailEnabled {
		return &noopNotifier{}
	}
	return &mailNotifier{cfg: cfg}
}

func (m *mailNotifier) LeaveDecided(toEmail string, leave *model.Leave) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MailFrom)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Your leave request has been %s", leave.Status))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your %s leave from %s to %s has been %s.",
		leave.LeaveType,
		leave.StartDate.Format("2006-01-02"),
		leave.EndDate.Format("2006-01-02"),
		leave.Status,
	))

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
	if err := d.DialAndSend(msg); err != nil {
		logrus.WithError(err).WithField("to", toEmail).Warn("leave notification mail failed")
		return err
	}
	return nil
}

type noopNotifier struct{}

func (n *noopNotifier) LeaveDecided(string, *model.Leave) error { return nil }
