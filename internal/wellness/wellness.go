// Package wellness computes the daily water and fasting trackers shown next
// to the challenges.
package wellness

import (
	"fmt"
	"time"
)

// WaterTargetGlasses is the daily hydration goal
const WaterTargetGlasses = 8

// DefaultFastingTarget is the default fasting window
const DefaultFastingTarget = 16 * time.Hour

// MaxFastingTarget is the longest fasting window accepted
const MaxFastingTarget = 7 * 24 * time.Hour

// Water is the hydration tracker state
type Water struct {
	Glasses    int     `json:"glasses"`
	Target     int     `json:"target"`
	Percentage float64 `json:"percentage"`
	Message    string  `json:"message"`
}

// WaterProgress clamps glasses to [0, target] and derives the display state
func WaterProgress(glasses int) Water {
	glasses = clampGlasses(glasses)
	pct := float64(glasses) / WaterTargetGlasses * 100
	return Water{
		Glasses:    glasses,
		Target:     WaterTargetGlasses,
		Percentage: pct,
		Message:    waterMessage(pct),
	}
}

// AddGlass increments the counter without exceeding the target
func AddGlass(glasses int) int {
	return clampGlasses(glasses + 1)
}

// RemoveGlass decrements the counter without going below zero
func RemoveGlass(glasses int) int {
	return clampGlasses(glasses - 1)
}

func clampGlasses(n int) int {
	if n < 0 {
		return 0
	}
	if n > WaterTargetGlasses {
		return WaterTargetGlasses
	}
	return n
}

func waterMessage(pct float64) string {
	switch {
	case pct >= 100:
		return "🎉 Objectif atteint ! Vous êtes incroyable !"
	case pct >= 75:
		return "💪 Presque au bout ! Continuez comme ça !"
	case pct >= 50:
		return "🔥 Vous êtes sur la bonne voie !"
	case pct >= 25:
		return "🌟 Chaque verre compte !"
	default:
		return "💧 Commencez votre hydratation !"
	}
}

// FastingPhase names the metabolic phase reached after a number of hours
type FastingPhase string

const (
	PhaseFasting   FastingPhase = "fasting"
	PhaseKetosis   FastingPhase = "ketosis"
	PhaseAutophagy FastingPhase = "autophagy"
	PhaseOptimal   FastingPhase = "optimal"
)

// Fasting is the fasting timer state
type Fasting struct {
	Elapsed    string       `json:"elapsed"`
	Target     string       `json:"target"`
	Percentage float64      `json:"percentage"`
	Phase      FastingPhase `json:"phase"`
	Message    string       `json:"message"`
}

// FastingProgress derives the timer state. A non-positive target falls back
// to DefaultFastingTarget; the percentage is capped at 100.
func FastingProgress(elapsed, target time.Duration) Fasting {
	if target <= 0 {
		target = DefaultFastingTarget
	}
	if elapsed < 0 {
		elapsed = 0
	}
	pct := float64(elapsed) / float64(target) * 100
	if pct > 100 {
		pct = 100
	}
	return Fasting{
		Elapsed:    FormatClock(elapsed),
		Target:     FormatClock(target),
		Percentage: pct,
		Phase:      phaseFor(elapsed),
		Message:    fastingMessage(pct),
	}
}

// FormatClock renders d as HH:MM:SS
func FormatClock(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

func phaseFor(elapsed time.Duration) FastingPhase {
	hours := int(elapsed / time.Hour)
	switch {
	case hours < 12:
		return PhaseFasting
	case hours < 16:
		return PhaseKetosis
	case hours < 20:
		return PhaseAutophagy
	default:
		return PhaseOptimal
	}
}

func fastingMessage(pct float64) string {
	switch {
	case pct >= 100:
		return "🎉 Jeûne terminé ! Vous êtes incroyable !"
	case pct >= 75:
		return "💪 Presque au bout ! Continuez !"
	case pct >= 50:
		return "🔥 Vous êtes sur la bonne voie !"
	case pct >= 25:
		return "🌟 Chaque minute compte !"
	default:
		return "⏰ Commencez votre jeûne !"
	}
}
