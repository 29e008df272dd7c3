// Package timezone concentra as conversões de data e hora da aplicação.
// Todas as funções consideram o fuso configurado em TIME_ZONE.
package timezone

import (
	"fmt"
	"strings"
	"time"
)

const DefaultLayout = "2006-01-02 15:04:05"

var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	DefaultLayout,
	"2006-01-02 15:04",
	time.DateOnly,
	"02/01/2006",
}

type Clock struct {
	loc *time.Location
	now func() time.Time
}

type Option func(*Clock)

// WithNow substitui a fonte de tempo, usado em testes
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

func New(loc *time.Location, opts ...Option) *Clock {
	if loc == nil {
		loc = time.UTC
	}

	c := &Clock{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today retorna a meia-noite de hoje no fuso configurado
func (c *Clock) Today() time.Time {
	return c.StartOfDay(c.Now())
}

// MakeAware interpreta o relógio de parede de t no fuso configurado.
// Útil para valores lidos de colunas timestamp sem fuso.
func (c *Clock) MakeAware(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), c.loc)
}

// MakeNaive converte t para o fuso configurado e devolve o relógio de parede em UTC
func (c *Clock) MakeNaive(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.UTC)
}

func (c *Clock) StartOfDay(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
}

func (c *Clock) EndOfDay(t time.Time) time.Time {
	return c.StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DaysAgo retorna a data (meia-noite) de n dias atrás
func (c *Clock) DaysAgo(n int) time.Time {
	return c.Today().AddDate(0, 0, -n)
}

func (c *Clock) DaysFromNow(n int) time.Time {
	return c.Today().AddDate(0, 0, n)
}

func (c *Clock) DatetimeAgo(d time.Duration) time.Time {
	return c.Now().Add(-d)
}

func (c *Clock) DatetimeFromNow(d time.Duration) time.Time {
	return c.Now().Add(d)
}

// ParseDate aceita datas e datas com hora nos formatos mais comuns.
// Valores sem fuso são interpretados no fuso configurado.
func (c *Clock) ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("timezone: data vazia")
	}

	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, value, c.loc); err == nil {
			return t.In(c.loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("timezone: formato de data não reconhecido: %q", value)
}

func (c *Clock) FormatDateTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if layout == "" {
		layout = DefaultLayout
	}
	return t.In(c.loc).Format(layout)
}

func (c *Clock) IsPast(t time.Time) bool {
	return t.Before(c.now())
}

func (c *Clock) IsFuture(t time.Time) bool {
	return t.After(c.now())
}

// UserLocation resolve o fuso de um usuário, com fallback para o fuso da aplicação
func (c *Clock) UserLocation(name *string) *time.Location {
	if name == nil || *name == "" {
		return c.loc
	}

	loc, err := time.LoadLocation(*name)
	if err != nil {
		return c.loc
	}
	return loc
}

func (c *Clock) ToUserTimezone(t time.Time, name *string) time.Time {
	return t.In(c.UserLocation(name))
}
