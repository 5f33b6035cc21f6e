package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/JonMunkholm/suitctl/internal/core"
)

// Transcript text.
const (
	promptCode   = "Enter suit code (6 digits, first digit not 0) or 'q' to quit: "
	promptChoice = "Your choice: "

	msgGoodbye       = "Exiting program. Goodbye!"
	msgInvalidFormat = "Invalid suit code format (must be 6 digits with first digit not 0)"
	msgNotFound      = "Suit code not found in the database"
	msgUsable        = "This suit meets the durability criteria and is usable."
	msgNotUsable     = "This suit does not meet the durability criteria."
	msgCancelled     = "Repair cancelled."

	errorPrefix = "Error:"
	rule        = "========================"
)

// View renders the session transcript. Styling is dropped automatically when
// the writer is not a terminal, so scripted runs see plain text.
type View struct {
	w       io.Writer
	heading lipgloss.Style
	danger  lipgloss.Style
	success lipgloss.Style
}

// NewView creates a view writing to w.
func NewView(w io.Writer) *View {
	return newView(w, lipgloss.NewRenderer(w))
}

func newView(w io.Writer, r *lipgloss.Renderer) *View {
	return &View{
		w:       w,
		heading: r.NewStyle().Bold(true),
		danger:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935")),
		success: r.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
	}
}

// Prompt writes p without a trailing newline.
func (v *View) Prompt(p string) {
	fmt.Fprint(v.w, p)
}

// Message writes an informational line.
func (v *View) Message(msg string) {
	fmt.Fprintln(v.w, msg)
}

// Success writes an informational line highlighted as good news.
func (v *View) Success(msg string) {
	fmt.Fprintln(v.w, v.success.Render(msg))
}

// Blank writes an empty line.
func (v *View) Blank() {
	fmt.Fprintln(v.w)
}

// Error writes a line carrying the "Error:" prefix. The prefix is never
// styled so it always starts the line.
func (v *View) Error(msg string) {
	fmt.Fprintln(v.w, errorPrefix+" "+v.danger.Render(msg))
}

// SuitInfo writes the information block for a suit.
func (v *View) SuitInfo(s core.Suit) {
	fmt.Fprintln(v.w)
	fmt.Fprintln(v.w, v.heading.Render("=== Suit Information ==="))
	fmt.Fprintf(v.w, "Suit Code   : %s\n", s.Code)
	fmt.Fprintf(v.w, "Suit Type   : %s\n", categoryLabel(s.Category))
	fmt.Fprintf(v.w, "Durability  : %d\n", s.Durability)
	fmt.Fprintln(v.w, rule)
	fmt.Fprintln(v.w)
}

// RepairOption writes the repair instructions for the given increment.
func (v *View) RepairOption(increment int) {
	fmt.Fprintf(v.w, "Press 'r' to repair the suit (increase durability by %d, max %d) or any other key to cancel.\n",
		increment, core.MaxDurability)
}

// Repaired reports the durability before and after a repair.
func (v *View) Repaired(before, after int) {
	v.Success(fmt.Sprintf("Suit repaired! Durability increased from %d to %d", before, after))
	v.Blank()
}

// Tally writes the repair statistics block, one line per category.
func (v *View) Tally(t *Tally) {
	fmt.Fprintln(v.w)
	fmt.Fprintln(v.w, v.heading.Render("=== Repair Statistics ==="))
	for _, e := range t.Entries() {
		fmt.Fprintf(v.w, "%s: Repaired %d times\n", categoryLabel(e.Category), e.Count)
	}
	fmt.Fprintln(v.w, rule)
	fmt.Fprintln(v.w)
}

func categoryLabel(c core.Category) string {
	if label := c.Label(); label != "" {
		return label
	}
	return c.String()
}
