package notify

import (
	"github.com/sirupsen/logrus"
)

// Severity indica a gravidade de uma notificação
type Severity string

const (
	SeverityNormal Severity = "normal"
	SeverityError  Severity = "error"
)

// Notifier é o destino das notificações de feedback ao usuário
// (ação concluída, falha de exportação, alerta de estoque baixo).
type Notifier interface {
	Notify(severity Severity, title, message string) error
}

// LogNotifier escreve as notificações no log da aplicação.
// É o destino padrão quando o envio de e-mail está desabilitado.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(severity Severity, title, message string) error {
	entry := logrus.WithFields(logrus.Fields{
		"severity": severity,
		"title":    title,
	})

	if severity == SeverityError {
		entry.Error(message)
	} else {
		entry.Info(message)
	}

	return nil
}
