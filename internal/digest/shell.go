package digest

import (
	"html/template"
	"strings"
	"time"
)

// shellTemplate wraps the generated digest content in the full mail document:
// header with the run date, an advisory note, and the application-tips footer.
var shellTemplate = template.Must(template.New("shell").Parse(`<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<style>
body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; }
.container { max-width: 700px; margin: 20px auto; background: #ffffff; border-radius: 6px; overflow: hidden; }
.header { background-color: #1a73e8; color: white; padding: 20px; text-align: center; }
.note { background-color: #fff3cd; padding: 15px; margin: 20px; border-radius: 4px; }
.scholarship { margin: 20px; padding: 15px; border: 1px solid #e0e0e0; border-radius: 4px; }
.deadline { color: #d93025; font-weight: bold; }
.amount { color: #188038; font-weight: bold; }
.footer { background-color: #f8f9fa; padding: 15px; text-align: center; font-size: 0.85em; color: #5f6368; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>🎓 Scholarship Updates</h1>
    <p>{{.Date}}</p>
  </div>
  <div class="note">
    <strong>Important:</strong> This update includes both currently available and newly added scholarship opportunities.
  </div>
  {{.Content}}
  <div class="note">
    <h3>📝 Important Tips:</h3>
    <ul>
      <li>Always verify deadlines on official websites</li>
      <li>Keep academic transcripts, income and category certificates, photographs, bank details, and Aadhar card ready</li>
      <li>Set reminders for approaching deadlines</li>
      <li>Start applications early to avoid last-minute issues</li>
    </ul>
  </div>
  <div class="footer">
    <p>To unsubscribe from these updates, please reply with 'UNSUBSCRIBE'</p>
    <p>Scholarship information is collected from official sources. Always verify details on official websites.</p>
    <p>Last updated: {{.Timestamp}}</p>
  </div>
</div>
</body>
</html>
`))

type shellData struct {
	Date      string
	Timestamp string
	// Content comes from the formatter, which is asked for HTML; it is
	// embedded as-is rather than escaped.
	Content template.HTML
}

func renderShell(content string) (string, error) {
	now := time.Now()
	var b strings.Builder
	err := shellTemplate.Execute(&b, shellData{
		Date:      now.Format("02 January 2006"),
		Timestamp: now.Format("02 January 2006 03:04 PM"),
		Content:   template.HTML(content),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
