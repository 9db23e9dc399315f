package chatlog

import (
	"fmt"
	"strings"

	"deepdive/internal/model"
)

// FormatMultipleChoices renders a list of values under a label, e.g.
// "Options:\na, b". Empty and blank values are dropped; with nothing
// left the result is the empty string so the caller can omit the block
// entirely. addPlural pluralizes the label when more than one value
// remains.
func FormatMultipleChoices(values []string, label, sep string, addPlural bool) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	if addPlural && len(kept) > 1 {
		label += "s"
	}
	return label + ":\n" + strings.Join(kept, sep)
}

// FormatResponses converts a survey response into the numbered
// plain-text block that seeds SysPrompt. Every downstream prompt is
// built on this rendering.
func FormatResponses(resp *model.Response) string {
	blocks := make([]string, 0, len(resp.Answers))
	for _, ans := range resp.Answers {
		blocks = append(blocks, fmt.Sprintf("%d. %s\n%s\n%s",
			ans.QuestionID,
			ans.Question,
			FormatMultipleChoices(ans.Options, "Option", ", ", true),
			FormatMultipleChoices(ans.Answer, "Answer", ", ", true),
		))
	}
	return strings.Join(blocks, "\n")
}
