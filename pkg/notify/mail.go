package notify

import (
	"fmt"

	"github.com/cortesdelisboa/barbershop-api/internal/config"
	"gopkg.in/gomail.v2"
)

// MailNotifier envia as notificações por e-mail para a gerência via SMTP
type MailNotifier struct {
	cfg config.Mail
}

func NewMailNotifier(cfg config.Mail) *MailNotifier {
	return &MailNotifier{cfg: cfg}
}

func (n *MailNotifier) Notify(severity Severity, title, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.To)

	subject := title
	if severity == SeverityError {
		subject = fmt.Sprintf("[ERRO] %s", title)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", message)

	d := gomail.NewDialer(n.cfg.SMTPHost, n.cfg.SMTPPort, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar e-mail de notificação: %w", err)
	}

	return nil
}

// FromConfig escolhe o notificador conforme a configuração de e-mail
func FromConfig(cfg config.Mail) Notifier {
	if cfg.Enabled {
		return NewMailNotifier(cfg)
	}
	return NewLogNotifier()
}
