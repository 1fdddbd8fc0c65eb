package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type ProfileView struct {
	Profile domain.UserProfile
}

func (v ProfileView) render(s styles) string {
	p := v.Profile
	lines := []string{
		s.title.Render("Dream AI Account"),
		s.name.Render(fmt.Sprintf("%s <%s>", p.DisplayName(), p.Email)),
		s.detail.Render(fmt.Sprintf("images: %d  videos: %d", p.ImageCount, p.VideoCount)),
	}

	plan := p.PlanName()
	if plan == "" {
		lines = append(lines, s.empty.Render("plan: none"))
	} else {
		lines = append(lines, s.detail.Render("plan: "+plan))
	}
	if period := planPeriod(derefOr(p.SubscriptionStartDate, ""), derefOr(p.SubscriptionEndDate, "")); period != "" {
		lines = append(lines, s.meta.Render(period))
	}
	if p.ProfilePicture != nil && *p.ProfilePicture != "" {
		lines = append(lines, s.meta.Render("picture: "+*p.ProfilePicture))
	}
	if p.Subscription != nil {
		lines = append(lines, s.section.Render(SubscriptionView{Status: *p.Subscription}.render(s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type SubscriptionView struct {
	Status domain.SubscriptionStatus
}

func (v SubscriptionView) render(s styles) string {
	st := v.Status
	state := s.detail.Render("status: " + st.Status)
	if !st.Active() {
		state = s.warning.Render("status: " + valueOr(st.Status, "unknown"))
	}

	lines := []string{s.title.Render("Subscription"), state}
	if plan := derefOr(st.Plan, ""); plan != "" {
		lines = append(lines, s.detail.Render(fmt.Sprintf("plan: %s (%s)", plan, derefOr(st.Duration, "n/a"))))
	}
	if period := planPeriod(derefOr(st.StartDate, ""), derefOr(st.EndDate, "")); period != "" {
		lines = append(lines, s.meta.Render(period))
	}

	if st.Limits != nil {
		usage := domain.DailyUsage{}
		if st.DailyUsage != nil {
			usage = *st.DailyUsage
		}
		lines = append(lines,
			usageLine("images today:", usage.Images, st.Limits.ImagesPerDay, s),
			usageLine("video minutes:", usage.VideoMinutes, st.Limits.VideoMinutesPerDay, s),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type PlansView struct {
	Plans    []domain.SubscriptionPlan
	Duration domain.Duration
}

func (v PlansView) render(s styles) string {
	header := fmt.Sprintf("plans: %d", len(v.Plans))
	if v.Duration != "" {
		header += " (" + string(v.Duration) + ")"
	}
	lines := []string{
		s.title.Render("Subscription Plans"),
		s.header.Render(header),
	}

	if len(v.Plans) == 0 {
		lines = append(lines, s.empty.Render("No plans available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, plan := range v.Plans {
		parts := []string{
			lipgloss.JoinHorizontal(lipgloss.Top,
				s.name.Render(plan.Plan),
				" ",
				s.price.Render(fmt.Sprintf("$%.2f", plan.Price)),
				" ",
				s.meta.Render("/"+string(plan.Duration)),
			),
		}
		if plan.Desc != "" {
			parts = append(parts, s.detail.Render(plan.Desc))
		}
		for _, perk := range plan.Perks {
			parts = append(parts, s.detail.Render("  • "+perk))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type HistoryView struct {
	Records []domain.GenerationRecord
	Now     time.Time
}

func (v HistoryView) render(s styles) string {
	lines := []string{
		s.title.Render("Generation History"),
		s.header.Render(fmt.Sprintf("items: %d", len(v.Records))),
	}

	if len(v.Records) == 0 {
		lines = append(lines, s.empty.Render("Nothing generated yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range v.Records {
		parts := []string{
			lipgloss.JoinHorizontal(lipgloss.Top,
				s.name.Render(valueOr(record.Title, domain.DefaultTitle(record.Type))),
				" ",
				s.meta.Render(fmt.Sprintf("[%s] %s", record.Type, formatAge(record.CreatedAt, v.Now))),
			),
			s.detail.Render(truncate(record.URL, 96)),
			s.meta.Render("id: " + record.ID),
		}
		if record.Prompt != "" {
			parts = append(parts, s.meta.Render("prompt: "+truncate(record.Prompt, 96)))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type PaymentsView struct {
	Payments []domain.PaymentHistory
}

func (v PaymentsView) render(s styles) string {
	lines := []string{
		s.title.Render("Payment History"),
		s.header.Render(fmt.Sprintf("payments: %d", len(v.Payments))),
	}

	if len(v.Payments) == 0 {
		lines = append(lines, s.empty.Render("No payments recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, payment := range v.Payments {
		date := payment.CreatedAt
		if created := payment.CreatedTime(); !created.IsZero() {
			date = created.Format("02 Jan 2006")
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			s.key.Render(date),
			" ",
			s.price.Render(fmt.Sprintf("%s %s", payment.Amount, strings.ToUpper(payment.Currency))),
			" ",
			s.detail.Render(payment.SubscriptionPlan),
			" ",
			s.meta.Render("("+payment.Status+")"),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func usageLine(label string, used, limit int, s styles) string {
	if limit <= 0 {
		return s.key.Render(label) + " " + s.detail.Render(fmt.Sprintf("%d (unlimited)", used))
	}

	usedPercent := clampPercent(float64(used) / float64(limit) * 100)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render(label),
		" ",
		renderProgressBar(usedPercent, 24, s),
		" ",
		lipgloss.NewStyle().Foreground(interpolateColor(100-usedPercent, 0, 100)).Render(fmt.Sprintf("%d/%d", used, limit)),
	)
}

func renderProgressBar(usedPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	used := clampPercent(usedPercent)
	filled := int(math.Round(float64(width) * used / 100.0))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240.0+15.0*normalized)))
}

func formatAge(at, now time.Time) string {
	if at.IsZero() {
		return "unknown"
	}
	if now.IsZero() || at.After(now) {
		return at.Format("15:04 on 02 Jan")
	}

	elapsed := now.Sub(at)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return at.Format("02 Jan 2006")
	}
}

func planPeriod(start, end string) string {
	switch {
	case start != "" && end != "":
		return fmt.Sprintf("period: %s → %s", start, end)
	case end != "":
		return "ends: " + end
	default:
		return ""
	}
}

func truncate(value string, width int) string {
	if len(value) <= width {
		return value
	}
	return value[:width-3] + "..."
}

func derefOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
