package report

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// meetingToDocx lays out summary, action items and transcript as a styled document.
func meetingToDocx(r Report, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), r.Title, true, 16)
	addStyledRun(doc.AddParagraph(""), r.CreatedAt.Format("2006-01-02 15:04"), false, 11)

	addStyledRun(doc.AddParagraph(""), "Summary", true, 15)
	for _, line := range strings.Split(r.Summary, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			addRichText(doc.AddParagraph(""), trimmed)
		}
	}

	addStyledRun(doc.AddParagraph(""), "Action Items", true, 15)
	if len(r.ActionItems) == 0 {
		addStyledRun(doc.AddParagraph(""), "No action items.", false, fontSize)
	}
	for _, item := range r.ActionItems {
		addRichText(doc.AddParagraph(""), "• "+item)
	}

	addStyledRun(doc.AddParagraph(""), "Transcript", true, 15)
	for _, para := range transcriptParagraphs(r.Transcript) {
		doc.AddParagraph("").AddText(para).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}

// transcriptParagraphs keeps the transcript's own line breaks and drops blank lines.
func transcriptParagraphs(transcript string) []string {
	var out []string
	for _, line := range strings.Split(transcript, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
