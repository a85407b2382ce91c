package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/russross/blackfriday/v2"

	"courtside/internal/models"
)

const (
	positiveColor = "#4CAF50"
	negativeColor = "#F44336"
)

type headlineRow struct {
	Title          string
	Summary        string
	SentimentText  string
	SentimentColor string
}

type gameRow struct {
	AwayTeam string
	HomeTeam string
	Score    string
	Status   string
}

type emailData struct {
	BriefingHTML template.HTML
	Headlines    []headlineRow
	Games        []gameRow
}

// renderHTML produces the dark-themed HTML body.
func renderHTML(result models.PipelineResult) (string, error) {
	data := emailData{
		BriefingHTML: briefingHTML(result.Briefing),
		Headlines:    headlineRows(result.Headlines),
		Games:        gameRows(result.Games),
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return buf.String(), nil
}

// briefingHTML renders the briefing's markdown (paragraphs, emphasis) into
// HTML. The narrative is our own pipeline output, not untrusted user input.
func briefingHTML(briefing string) template.HTML {
	rendered := blackfriday.Run([]byte(briefing), blackfriday.WithNoExtensions())
	return template.HTML(rendered)
}

func headlineRows(headlines []models.Headline) []headlineRow {
	rows := make([]headlineRow, 0, len(headlines))
	for _, h := range headlines {
		color := positiveColor
		text := fmt.Sprintf("+%.2f", h.Sentiment)
		if h.Sentiment < 0 {
			color = negativeColor
			text = fmt.Sprintf("%.2f", h.Sentiment)
		}

		summary := h.Summary
		if summary == "" {
			summary = h.Description
		}

		rows = append(rows, headlineRow{
			Title:          h.Title,
			Summary:        summary,
			SentimentText:  text,
			SentimentColor: color,
		})
	}
	return rows
}

func gameRows(games []models.Game) []gameRow {
	rows := make([]gameRow, 0, len(games))
	for _, g := range games {
		score := "TBD"
		if g.Started {
			score = fmt.Sprintf("%d - %d", g.AwayScore, g.HomeScore)
		}
		rows = append(rows, gameRow{
			AwayTeam: g.AwayTeam,
			HomeTeam: g.HomeTeam,
			Score:    score,
			Status:   g.StatusText,
		})
	}
	return rows
}

// renderText produces the plain-text alternative part.
func renderText(result models.PipelineResult) string {
	var sb strings.Builder

	sb.WriteString("NBA Executive Pregame Briefing\n\n")
	sb.WriteString(result.Briefing)
	sb.WriteString("\n\nTop News Headlines:\n")
	if len(result.Headlines) == 0 {
		sb.WriteString("\nNo headlines available.\n")
	}
	for _, h := range result.Headlines {
		sb.WriteString(fmt.Sprintf("\n- %s (Sentiment: %.2f)\n", h.Title, h.Sentiment))
	}

	sb.WriteString("\nToday's Games:\n")
	if len(result.Games) == 0 {
		sb.WriteString("\nNo games scheduled for today.\n")
	}
	for _, g := range result.Games {
		sb.WriteString(fmt.Sprintf("\n%s @ %s - %s\n", g.AwayTeam, g.HomeTeam, g.StatusText))
	}

	return sb.String()
}

var emailTemplate = template.Must(template.New("briefing").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>NBA Executive Pregame Briefing</title>
</head>
<body style="margin: 0; padding: 0; background-color: #1a1a1a; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;">
    <div style="max-width: 800px; margin: 0 auto; padding: 20px; background-color: #1a1a1a;">
        <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; border-radius: 8px 8px 0 0; margin-bottom: 20px;">
            <h1 style="margin: 0; color: #ffffff; font-size: 28px; font-weight: 600;">Courtside Dispatch</h1>
            <p style="margin: 10px 0 0 0; color: #e0e0e0; font-size: 14px;">Executive Pregame Briefing</p>
        </div>
        <div style="background-color: #242424; padding: 30px; border-radius: 0 0 8px 8px; box-shadow: 0 4px 6px rgba(0,0,0,0.3);">
            <div style="margin-bottom: 30px;">
                <h2 style="color: #e0e0e0; font-size: 22px; margin-bottom: 15px; border-bottom: 2px solid #444; padding-bottom: 10px;">Executive Briefing</h2>
                <div style="color: #e0e0e0; line-height: 1.8;">{{.BriefingHTML}}</div>
            </div>
            <div style="margin-bottom: 30px;">
                <h2 style="color: #e0e0e0; font-size: 22px; margin-bottom: 15px; border-bottom: 2px solid #444; padding-bottom: 10px;">Top News Headlines</h2>
                {{if .Headlines}}
                <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
                    <thead>
                        <tr style="background-color: #2a2a2a;">
                            <th style="padding: 12px; text-align: left; border-bottom: 2px solid #444; color: #e0e0e0;">Headline</th>
                            <th style="padding: 12px; text-align: left; border-bottom: 2px solid #444; color: #e0e0e0;">Summary</th>
                            <th style="padding: 12px; text-align: center; border-bottom: 2px solid #444; color: #e0e0e0; width: 100px;">Sentiment</th>
                        </tr>
                    </thead>
                    <tbody>
                        {{range .Headlines}}
                        <tr style="border-bottom: 1px solid #333;">
                            <td style="padding: 10px; color: #e0e0e0; font-weight: 500;">{{.Title}}</td>
                            <td style="padding: 10px; color: #b0b0b0; font-size: 0.9em; line-height: 1.6;">{{.Summary}}</td>
                            <td style="padding: 10px; text-align: center; background-color: {{.SentimentColor}}; color: white; font-weight: bold; border-radius: 4px;">{{.SentimentText}}</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
                {{else}}
                <p style="color: #b0b0b0; font-style: italic;">No headlines available.</p>
                {{end}}
            </div>
            <div>
                <h2 style="color: #e0e0e0; font-size: 22px; margin-bottom: 15px; border-bottom: 2px solid #444; padding-bottom: 10px;">Today's Games</h2>
                {{if .Games}}
                <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
                    <thead>
                        <tr style="background-color: #2a2a2a;">
                            <th style="padding: 12px; text-align: left; border-bottom: 2px solid #444; color: #e0e0e0;">Away Team</th>
                            <th style="padding: 12px; text-align: left; border-bottom: 2px solid #444; color: #e0e0e0;">Home Team</th>
                            <th style="padding: 12px; text-align: center; border-bottom: 2px solid #444; color: #e0e0e0;">Score</th>
                            <th style="padding: 12px; text-align: center; border-bottom: 2px solid #444; color: #e0e0e0;">Status</th>
                        </tr>
                    </thead>
                    <tbody>
                        {{range .Games}}
                        <tr style="border-bottom: 1px solid #333;">
                            <td style="padding: 10px; color: #e0e0e0;">{{.AwayTeam}}</td>
                            <td style="padding: 10px; color: #e0e0e0;">{{.HomeTeam}}</td>
                            <td style="padding: 10px; text-align: center; color: #e0e0e0; font-weight: bold;">{{.Score}}</td>
                            <td style="padding: 10px; text-align: center; color: #b0b0b0;">{{.Status}}</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
                {{else}}
                <p style="color: #b0b0b0; font-style: italic;">No games scheduled for today.</p>
                {{end}}
            </div>
        </div>
        <div style="text-align: center; margin-top: 20px; padding: 20px; color: #b0b0b0; font-size: 12px;">
            <p style="margin: 0;">Courtside Dispatch | Generated automatically</p>
            <p style="margin: 5px 0 0 0;">This is an automated briefing. Data sourced from ESPN and the NBA scoreboard feed.</p>
        </div>
    </div>
</body>
</html>
`))
