package usecase

// emailTemplate renders the HTML variant of the summary email. Layout: header
// banner, statistics block, one <p> per summary paragraph, topic tags (the
// whole section omitted when there are no topics), fixed CTA footer.
const emailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>LinkedIn Feed Summary - {{.FormattedDate}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; background-color: #f3f2ef; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; }
        .header { background-color: #0a66c2; color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; font-weight: 600; }
        .header p { margin: 10px 0 0 0; opacity: 0.9; }
        .content { padding: 30px; }
        .summary-section { margin-bottom: 30px; }
        .summary-section h2 { color: #0a66c2; font-size: 18px; margin-bottom: 15px; border-bottom: 2px solid #e1e5e9; padding-bottom: 8px; }
        .summary-text { background-color: #f8f9fa; padding: 20px; border-radius: 8px; border-left: 4px solid #0a66c2; }
        .topics-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(150px, 1fr)); gap: 10px; margin-top: 15px; }
        .topic-tag { background-color: #e7f3ff; color: #0a66c2; padding: 8px 12px; border-radius: 20px; text-align: center; font-size: 14px; font-weight: 500; }
        .stats { background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(120px, 1fr)); gap: 15px; text-align: center; }
        .stat-number { font-size: 24px; font-weight: bold; color: #0a66c2; display: block; }
        .stat-label { font-size: 12px; color: #666; text-transform: uppercase; letter-spacing: 0.5px; }
        .footer { background-color: #f8f9fa; padding: 20px; text-align: center; border-top: 1px solid #e1e5e9; }
        .footer p { margin: 5px 0; font-size: 14px; color: #666; }
        .footer a { color: #0a66c2; text-decoration: none; }
        .cta-button { display: inline-block; background-color: #0a66c2; color: white; padding: 12px 24px; border-radius: 6px; text-decoration: none; font-weight: 500; margin: 20px 0; }
        @media (max-width: 600px) {
            .content { padding: 20px; }
            .topics-grid { grid-template-columns: 1fr; }
            .stats-grid { grid-template-columns: repeat(2, 1fr); }
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>&#128202; LinkedIn Feed Summary</h1>
            <p>{{.FormattedDate}}</p>
        </div>

        <div class="content">
            <div class="stats">
                <div class="stats-grid">
                    <div class="stat-item">
                        <span class="stat-number">{{.PostCount}}</span>
                        <span class="stat-label">Posts Analyzed</span>
                    </div>
                    <div class="stat-item">
                        <span class="stat-number">{{len .Topics}}</span>
                        <span class="stat-label">Key Topics</span>
                    </div>
                </div>
            </div>

            <div class="summary-section">
                <h2>&#128221; Daily Summary</h2>
                <div class="summary-text">
                    {{range .Paragraphs}}<p>{{.}}</p>{{end}}
                </div>
            </div>

            {{if .Topics}}
            <div class="summary-section">
                <h2>&#127991;&#65039; Key Topics</h2>
                <div class="topics-grid">
                    {{range .Topics}}<div class="topic-tag">{{.}}</div>{{end}}
                </div>
            </div>
            {{end}}

            <div style="text-align: center; margin: 30px 0;">
                <a href="{{.DashboardURL}}" class="cta-button">
                    View Full Dashboard
                </a>
            </div>
        </div>

        <div class="footer">
            <p><strong>LinkedIn Feed Summarizer</strong></p>
            <p>Powered by AI &bull; Generated on {{.GeneratedOn}}</p>
            <p>
                <a href="{{.DashboardURL}}">Dashboard</a> &bull;
                <a href="{{.DashboardURL}}">Settings</a>
            </p>
        </div>
    </div>
</body>
</html>`
