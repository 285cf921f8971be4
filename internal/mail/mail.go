package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"storefront-be/internal/config"
	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

// Sender delivers transactional email.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type smtpSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPSender(cfg *config.Config) Sender {
	if cfg.MailHost == "" {
		logger.L().Warn("mail host is empty; outgoing email will fail")
	}

	return &smtpSender{
		host:     cfg.MailHost,
		port:     cfg.MailPort,
		username: cfg.MailUser,
		password: cfg.MailPassword,
		from:     cfg.MailFrom,
	}
}

func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("to", to),
		zap.String("subject", subject),
	)

	message := []byte("From: " + s.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody + "\r\n")

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, message); err != nil {
		log.Error("failed to send email", zap.Error(err))
		return err
	}

	log.Info("email sent")
	return nil
}
