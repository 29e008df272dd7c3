package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CampaignRow é a linha de uma campanha no relatório
type CampaignRow struct {
	CampaignID     string          `json:"campaign_id"`
	Title          string          `json:"title"`
	Platform       domain.Platform `json:"platform"`
	Impressions    int64           `json:"impressions"`
	Clicks         int64           `json:"clicks"`
	Conversions    int64           `json:"conversions"`
	Spend          decimal.Decimal `json:"spend"`
	CTR            float64         `json:"ctr"`
	ConversionRate float64         `json:"conversion_rate"`
	CPC            float64         `json:"cpc"`
}

func newCampaignRow(campaign *domain.Campaign, rows []*domain.DailyAnalytics) CampaignRow {
	row := CampaignRow{
		CampaignID: campaign.ID,
		Title:      campaign.Title,
		Platform:   campaign.Platform,
		Spend:      decimal.Zero,
	}
	for _, r := range rows {
		row.Impressions += r.Impressions
		row.Clicks += r.Clicks
		row.Conversions += r.Conversions
		row.Spend = row.Spend.Add(r.Spend)
	}
	row.Spend = row.Spend.Round(2)
	row.CTR = percent(row.Clicks, row.Impressions)
	row.ConversionRate = percent(row.Conversions, row.Clicks)
	if row.Clicks > 0 {
		row.CPC = utils.RoundWithTwoDecimalPlace(row.Spend.InexactFloat64() / float64(row.Clicks))
	}
	return row
}

// document é o conteúdo completo de um relatório gerado
type document struct {
	Name        string        `json:"name"`
	PeriodStart string        `json:"period_start"`
	PeriodEnd   string        `json:"period_end"`
	GeneratedAt time.Time     `json:"generated_at"`
	Totals      CampaignRow   `json:"totals"`
	Campaigns   []CampaignRow `json:"campaigns"`
}

func newDocument(name string, start, end, now time.Time, rows []CampaignRow) *document {
	totals := CampaignRow{Title: "TOTAL", Spend: decimal.Zero}
	for _, r := range rows {
		totals.Impressions += r.Impressions
		totals.Clicks += r.Clicks
		totals.Conversions += r.Conversions
		totals.Spend = totals.Spend.Add(r.Spend)
	}
	totals.CTR = percent(totals.Clicks, totals.Impressions)
	totals.ConversionRate = percent(totals.Conversions, totals.Clicks)
	if totals.Clicks > 0 {
		totals.CPC = utils.RoundWithTwoDecimalPlace(totals.Spend.InexactFloat64() / float64(totals.Clicks))
	}

	return &document{
		Name:        name,
		PeriodStart: start.Format(time.DateOnly),
		PeriodEnd:   end.Format(time.DateOnly),
		GeneratedAt: now,
		Totals:      totals,
		Campaigns:   rows,
	}
}

// summary é o resumo gravado junto com o registro do relatório
func (d *document) summary() map[string]any {
	return map[string]any{
		"campaigns":         len(d.Campaigns),
		"total_impressions": d.Totals.Impressions,
		"total_clicks":      d.Totals.Clicks,
		"total_conversions": d.Totals.Conversions,
		"total_spend":       d.Totals.Spend.StringFixed(2),
		"avg_ctr":           d.Totals.CTR,
	}
}

// render serializa o documento. Retorna o conteúdo, o content type e a extensão.
// pdf sai como CSV e email como JSON, anexados ao registro do relatório.
func render(format domain.ReportFormat, doc *document) ([]byte, string, string, error) {
	switch format {
	case domain.FormatCSV, domain.FormatPDF:
		data, err := renderCSV(doc)
		return data, "text/csv", "csv", err
	case domain.FormatJSON, domain.FormatEmail:
		data, err := json.MarshalIndent(doc, "", "  ")
		return data, "application/json", "json", err
	}
	return nil, "", "", fmt.Errorf("formato não suportado: %q", format)
}

func renderCSV(doc *document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"campaign_id", "title", "platform", "impressions", "clicks", "conversions", "spend", "ctr", "conversion_rate", "cpc"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range append(doc.Campaigns, doc.Totals) {
		record := []string{
			r.CampaignID,
			r.Title,
			string(r.Platform),
			strconv.FormatInt(r.Impressions, 10),
			strconv.FormatInt(r.Clicks, 10),
			strconv.FormatInt(r.Conversions, 10),
			r.Spend.StringFixed(2),
			strconv.FormatFloat(r.CTR, 'f', 2, 64),
			strconv.FormatFloat(r.ConversionRate, 'f', 2, 64),
			strconv.FormatFloat(r.CPC, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func percent(part, total int64) float64 {
	return utils.RoundWithTwoDecimalPlace(utils.Percent(part, total))
}

// growth retorna a variação percentual de previous para current
func growth(current, previous float64) float64 {
	return utils.RoundWithTwoDecimalPlace(utils.Growth(current, previous))
}
