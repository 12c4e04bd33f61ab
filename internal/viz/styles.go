package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seralva/forcecurve/internal/curve"
	"github.com/seralva/forcecurve/internal/motor"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Summary prints the headline numbers of a computed table: the torque
// cap, the peak force, and the electrical model behind them.
func Summary(el motor.Derived, lim motor.Limits, t *curve.Table) string {
	peak, at := t.Peak()
	torqueCap := el.Kt * lim.IMax

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("force curve"))
	sb.WriteByte('\n')

	write := func(label, value string) {
		fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render(label), valueStyle.Render(value))
	}
	write("direction:   ", lim.Direction.String())
	write("Kt:          ", fmt.Sprintf("%.4f N·m/A", el.Kt))
	write("R phase:     ", fmt.Sprintf("%.4f Ω", el.RPhase))
	write("V phase max: ", fmt.Sprintf("%.2f V", el.VMax))
	write("torque cap:  ", fmt.Sprintf("%.2f N·m (%.0f A)", torqueCap, lim.IMax))
	write("peak force:  ", fmt.Sprintf("%.1f lbf at %.2f m/s", peak, at))
	write("y-axis max:  ", fmt.Sprintf("%.0f lbf", t.MaxY))

	if lim.Direction == motor.Regenerating {
		sb.WriteString(warnStyle.Render("  regen clamp assumed: supply limits do not bind"))
		sb.WriteByte('\n')
	}
	return sb.String()
}
