package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/danielolaszy/trello-cli/pkg/models"
)

const ruleWidth = 60

// CardDetail is everything shown by the task detail report.
// List and Board are nil when their lookup failed; the card's raw IDs are
// shown in their place.
type CardDetail struct {
	Card  *models.Card  `json:"card"`
	List  *models.List  `json:"list"`
	Board *models.Board `json:"board"`
}

// IsOverdue reports whether an open card's due date lies before now.
func IsOverdue(card *models.Card, now time.Time) bool {
	if card.Closed || card.Due == "" {
		return false
	}
	due, ok := ParseTime(card.Due)
	return ok && due.Before(now)
}

// WriteCardDetail renders the detail report for d. now decides whether the
// card is overdue.
func WriteCardDetail(w io.Writer, d CardDetail, now time.Time) {
	card := d.Card
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintf(w, "\n%s\nTASK DETAILS\n%s\n\n", rule, rule)

	fmt.Fprintln(w, "📋 Basic Information:")
	fmt.Fprintf(w, "   Name: %s\n", card.Name)
	fmt.Fprintf(w, "   ID: %s\n", card.ID)
	if card.Closed {
		fmt.Fprintln(w, "   Status: ❌ Closed")
	} else {
		fmt.Fprintln(w, "   Status: ✅ Open")
	}
	fmt.Fprintf(w, "   URL: %s\n\n", card.URL)

	fmt.Fprintln(w, "📊 Location:")
	if d.Board != nil {
		fmt.Fprintf(w, "   Board: %s (%s)\n", d.Board.Name, d.Board.ID)
	} else {
		fmt.Fprintf(w, "   Board ID: %s\n", card.IDBoard)
	}
	if d.List != nil {
		fmt.Fprintf(w, "   List: %s (%s)\n", d.List.Name, d.List.ID)
	} else {
		fmt.Fprintf(w, "   List ID: %s\n", card.IDList)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "📝 Description:")
	if strings.TrimSpace(card.Desc) != "" {
		for _, line := range strings.Split(card.Desc, "\n") {
			fmt.Fprintf(w, "   %s\n", line)
		}
	} else {
		fmt.Fprintln(w, "   (No description)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "📅 Due Date:")
	if card.Due != "" {
		overdue := ""
		if IsOverdue(card, now) {
			overdue = " ⚠️  OVERDUE"
		}
		fmt.Fprintf(w, "   %s%s\n", FormatDateTime(card.Due), overdue)
	} else {
		fmt.Fprintln(w, "   (No due date)")
	}
	fmt.Fprintln(w)

	if len(card.Members) > 0 {
		fmt.Fprintln(w, "👥 Members:")
		for _, m := range card.Members {
			name := m.FullName
			if name == "" {
				name = m.Username
			}
			if name == "" {
				name = "Unknown"
			}
			fmt.Fprintf(w, "   • %s (@%s)\n", name, OrNA(m.Username))
		}
		fmt.Fprintln(w)
	}

	if len(card.Labels) > 0 {
		fmt.Fprintln(w, "🏷️  Labels:")
		for _, l := range card.Labels {
			color := l.Color
			if color == "" {
				color = "none"
			}
			name := l.Name
			if name == "" {
				name = color
			}
			fmt.Fprintf(w, "   • %s (%s)\n", name, color)
		}
		fmt.Fprintln(w)
	}

	if len(card.Attachments) > 0 {
		fmt.Fprintln(w, "📎 Attachments:")
		for _, a := range card.Attachments {
			fmt.Fprintf(w, "   • %s (%s)\n", a.Name, a.URL)
		}
		fmt.Fprintln(w)
	}

	if len(card.Checklists) > 0 {
		fmt.Fprintln(w, "✅ Checklists:")
		for _, cl := range card.Checklists {
			fmt.Fprintf(w, "\n   %s:\n", cl.Name)
			if len(cl.CheckItems) == 0 {
				fmt.Fprintln(w, "   (No items)")
				continue
			}
			for _, item := range cl.CheckItems {
				status := "☐"
				if item.State == "complete" {
					status = "✓"
				}
				fmt.Fprintf(w, "   %s %s\n", status, item.Name)
			}
		}
		fmt.Fprintln(w)
	}

	if card.DateLastActivity != "" {
		fmt.Fprintln(w, "🕐 Last Activity:")
		fmt.Fprintf(w, "   %s\n\n", FormatDateTime(card.DateLastActivity))
	}

	fmt.Fprintf(w, "%s\n\n", rule)
}
