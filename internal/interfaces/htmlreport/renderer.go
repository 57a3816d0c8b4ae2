// Package htmlreport turns a built report into the static documents the
// operator opens: an HTML page and a JSON sidecar.
package htmlreport

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strconv"

	"github.com/bytedance/sonic"

	"github.com/dkachur/poker-nights/internal/domain/report"
)

//go:embed template.html
var reportTemplate string

const dateLayout = "02.01.2006"

type Renderer struct {
	currency string
	tmpl     *template.Template
}

func NewRenderer(currency string) (*Renderer, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}

	return &Renderer{
		currency: currency,
		tmpl:     tmpl,
	}, nil
}

type templateData struct {
	report.Report

	FromLabel           string
	ToLabel             string
	Currency            string
	AveragePlayersLabel string
	LongestLabel        string
	AverageLabel        string
}

// RenderHTML substitutes the report's fields into the fixed template.
// Aggregates without data render as an explicit "no data" marker.
func (r *Renderer) RenderHTML(rep report.Report) ([]byte, error) {
	data := templateData{
		Report:              rep,
		FromLabel:           rep.From.Format(dateLayout),
		ToLabel:             rep.To.Format(dateLayout),
		Currency:            r.currency,
		AveragePlayersLabel: countLabel(rep.AveragePlayersCount, ""),
		LongestLabel:        countLabel(rep.LongestMatchMinutes, " minutes"),
		AverageLabel:        countLabel(rep.AverageMatchMinutes, " minutes"),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute report template: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderJSON serializes the report for machine consumption.
func (r *Renderer) RenderJSON(rep report.Report) ([]byte, error) {
	out, err := sonic.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	return out, nil
}

func countLabel(v *int64, suffix string) string {
	if v == nil {
		return "no data"
	}
	return strconv.FormatInt(*v, 10) + suffix
}
