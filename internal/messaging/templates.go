package messaging

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/storage"
)

type Kind string

const (
	KindConfirmation Kind = "confirmation"
	KindReminder     Kind = "reminder"
	KindCancellation Kind = "cancellation"
	KindThanks       Kind = "thanks"
	KindWinBack      Kind = "winback"
)

var Kinds = []Kind{
	KindConfirmation,
	KindReminder,
	KindCancellation,
	KindThanks,
	KindWinBack,
}

func ParseKind(raw string) (Kind, error) {
	k := Kind(raw)
	if _, ok := defaults[k]; !ok {
		return "", httperr.ErrBusinessf(httperr.CodeInvalidTemplateKind, raw)
	}
	return k, nil
}

// Key is the storage key of the override for k.
func (k Kind) Key() string {
	return "msg_" + string(k)
}

var defaults = map[Kind]string{
	KindConfirmation: `Olá {name}! ✂️

Seu agendamento foi confirmado:
📅 Data: {date}
⏰ Horário: {time}
💈 Serviço: {service}
💰 Valor: R$ {amount}

Nos vemos em breve! 😊`,

	KindReminder: `Olá {name}! 🔔

Lembrete: Amanhã você tem agendamento às {time}!
💈 {service}

Qualquer imprevisto, avise com antecedência! 😊`,

	KindCancellation: `Olá {name},

Seu agendamento foi cancelado:
📅 {date} às {time}
💈 {service}

Para reagendar, entre em contato! 📞`,

	KindThanks: `Olá {name}! 😊

Obrigado por escolher nossos serviços!
Esperamos que tenha gostado do seu {service}! ✨

Até a próxima! 💈`,

	KindWinBack: `Olá {name}! 👋

Sentimos sua falta! 😊
Que tal agendar um horário? Estamos esperando por você! 💈✂️

Entre em contato para marcar seu horário! 📅`,
}

func DefaultTemplate(k Kind) string {
	return defaults[k]
}

// Templates reads and writes the per-kind overrides.
type Templates struct {
	store storage.Store
	log   *zap.SugaredLogger
}

func NewTemplates(store storage.Store, log *zap.SugaredLogger) *Templates {
	return &Templates{store: store, log: log}
}

// Get returns the override, or the default when there is none (or it cannot be read).
func (t *Templates) Get(ctx context.Context, k Kind) string {
	raw, ok, err := t.store.Get(ctx, k.Key())
	if err != nil {
		t.log.Errorw("failed to read template", "kind", k, "error", err)
		return DefaultTemplate(k)
	}
	if !ok || raw == "" {
		return DefaultTemplate(k)
	}
	return raw
}

// All returns the effective template of every kind.
func (t *Templates) All(ctx context.Context) map[Kind]string {
	out := make(map[Kind]string, len(Kinds))
	for _, k := range Kinds {
		out[k] = t.Get(ctx, k)
	}
	return out
}

func (t *Templates) Set(ctx context.Context, k Kind, text string) error {
	if err := t.store.Set(ctx, k.Key(), text); err != nil {
		return fmt.Errorf("save template %s: %w", k, err)
	}
	return nil
}

// Reset drops the override so the default applies again.
func (t *Templates) Reset(ctx context.Context, k Kind) error {
	if err := t.store.Delete(ctx, k.Key()); err != nil {
		return fmt.Errorf("reset template %s: %w", k, err)
	}
	return nil
}
