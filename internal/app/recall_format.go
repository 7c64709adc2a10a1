package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/journey/internal/ports/primary"
)

const recallRule = "=================================================="

// FormatText renders a recall view as the fixed-layout text report.
func (s *RecallServiceImpl) FormatText(view *primary.RecallView) string {
	if view == nil {
		return "No previous sessions found."
	}
	if view.Mode == "global" {
		return s.formatGlobal(view)
	}
	return s.formatProject(view)
}

func (s *RecallServiceImpl) formatGlobal(view *primary.RecallView) string {
	lines := []string{
		"JOURNEY RECALL (Global)",
		recallRule,
		"",
		"Recent sessions across all projects:",
		"",
	}

	for i, sess := range view.Sessions {
		stageStr := ""
		if sess.CurrentStage != nil {
			stageStr = fmt.Sprintf("Stage %d/8", *sess.CurrentStage)
		}
		statusStr := sess.Status
		if sess.FeatureStatus != "" {
			statusStr = sess.FeatureStatus
		}
		feature := sess.FeatureName
		if feature == "" {
			feature = "(no feature)"
		}
		lines = append(lines, fmt.Sprintf("%d. %s/%s - %s %s - %s",
			i+1, sess.Project, feature, stageStr, statusStr,
			s.formatTimeAgo(sess.StartedAt)))
	}

	lines = append(lines, "", "Run recall in the project directory for details.")
	return strings.Join(lines, "\n")
}

func (s *RecallServiceImpl) formatProject(view *primary.RecallView) string {
	feature := view.FeatureName
	if feature == "" {
		feature = "(none)"
	}
	status := view.Status
	if view.FeatureStatus != "" {
		status = view.FeatureStatus
	}

	lines := []string{
		"JOURNEY RECALL",
		recallRule,
		"",
		fmt.Sprintf("Feature: %s", feature),
		fmt.Sprintf("Stage: %d/8 (%s)", view.CurrentStage, view.StageName),
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("Last active: %s", s.formatTimeAgo(view.StartedAt)),
		"",
	}

	if len(view.LastActions) > 0 {
		lines = append(lines, "Last actions:")
		actions := view.LastActions
		if len(actions) > 3 {
			actions = actions[len(actions)-3:]
		}
		for _, action := range actions {
			lines = append(lines, fmt.Sprintf("  - %s", action))
		}
		lines = append(lines, "")
	}

	if view.LastDecision != nil {
		lines = append(lines, fmt.Sprintf("Last decision: %s", view.LastDecision.Question))
		lines = append(lines, fmt.Sprintf("  Choice: %s", view.LastDecision.Choice))
		lines = append(lines, "")
	}

	var stages []string
	for i := 1; i <= lastStage; i++ {
		switch {
		case i < view.CurrentStage:
			stages = append(stages, fmt.Sprintf("[%d]OK", i))
		case i == view.CurrentStage:
			stages = append(stages, fmt.Sprintf("[%d]>>", i))
		default:
			stages = append(stages, fmt.Sprintf("[%d]..", i))
		}
	}
	lines = append(lines, "Pipeline: "+strings.Join(stages, " -> "), "")

	if view.Recommendation != "" {
		lines = append(lines, fmt.Sprintf("Recommendation: %s", view.Recommendation))
	}

	return strings.Join(lines, "\n")
}

// formatTimeAgo renders an epoch-millisecond timestamp as a coarse
// relative description. A zero timestamp reads "unknown".
func (s *RecallServiceImpl) formatTimeAgo(timestampMs int64) string {
	return FormatRelativeTime(timestampMs, s.now())
}

// FormatRelativeTime describes how long ago timestampMs was relative to
// nowMs, in the largest sensible unit.
func FormatRelativeTime(timestampMs, nowMs int64) string {
	if timestampMs == 0 {
		return "unknown"
	}

	elapsed := time.Duration(nowMs-timestampMs) * time.Millisecond
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(elapsed.Hours()))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(elapsed.Hours())/24)
	default:
		return fmt.Sprintf("%d weeks ago", int(elapsed.Hours())/24/7)
	}
}
