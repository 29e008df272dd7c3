package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/advision-api/pkg/utils"
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformYouTube   Platform = "youtube"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTikTok    Platform = "tiktok"
	PlatformGoogle    Platform = "google"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformYouTube, PlatformLinkedIn, PlatformTikTok, PlatformGoogle:
		return true
	}
	return false
}

type Campaign struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Platform    Platform        `json:"platform"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AccessibleBy indica se o usuário pode ver e alterar a campanha
func (c *Campaign) AccessibleBy(actor *Claims) bool {
	return actor.UserRole == RoleAdmin || c.UserID == actor.UserID
}

// DurationDays retorna a duração total da campanha em dias, incluindo o último dia
func (c *Campaign) DurationDays() int {
	days := calendarDaysBetween(c.StartDate, c.EndDate) + 1
	if days < 1 {
		return 1
	}
	return days
}

// ElapsedDays retorna quantos dias da campanha já se passaram até ref.
// A comparação é feita por data de calendário no fuso de ref, já que as colunas
// DATE voltam do banco como meia-noite UTC.
func (c *Campaign) ElapsedDays(ref time.Time) int {
	elapsed := calendarDaysBetween(c.StartDate, ref)
	if elapsed < 0 {
		return 0
	}
	return min(elapsed, c.DurationDays()-1) + 1
}

// calendarDaysBetween conta os dias entre as datas de calendário de from e to,
// cada uma lida no próprio fuso
func calendarDaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

type CampaignRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Platform    *Platform        `json:"platform"`
	Budget      *decimal.Decimal `json:"budget"`
	StartDate   *string          `json:"start_date"`
	EndDate     *string          `json:"end_date"`
	IsActive    *bool            `json:"is_active"`
}

type Tone string

const (
	TonePersuasive Tone = "persuasive"
	ToneWitty      Tone = "witty"
	ToneCasual     Tone = "casual"
	ToneFormal     Tone = "formal"
)

type AdContent struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Text        string    `json:"text"`
	Tone        Tone      `json:"tone"`
	Platform    Platform  `json:"platform"`
	Views       int64     `json:"views"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	CreatedAt   time.Time `json:"created_at"`
}

// CTR em percentual
func (a *AdContent) CTR() float64 {
	return utils.Percent(a.Clicks, a.Views)
}

type ImageAsset struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	URL         string    `json:"url"`
	StorageKey  string    `json:"storage_key"`
	Prompt      string    `json:"prompt"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type Comment struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	UserID     string    `json:"user_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

