package schedule

import "github.com/julianstephens/trainlog/internal/models"

// trainingWeeks is the authored block, in chronological order.
var trainingWeeks = []models.TrainingWeek{
	{Label: "Re-entry", Start: "2026-02-12", End: "2026-02-15", Miles: "19–23"},
	{Label: "W1", Start: "2026-02-16", End: "2026-02-22", Miles: "38–42"},
	{Label: "W2", Start: "2026-02-23", End: "2026-03-01", Miles: "39–44"},
	{Label: "W3", Start: "2026-03-02", End: "2026-03-08", Miles: "30–40", Note: "10K Race — Sat 3/7"},
	{Label: "W4", Start: "2026-03-09", End: "2026-03-15", Miles: "35–41", Note: "Recover + Rebuild"},
	{Label: "W5", Start: "2026-03-16", End: "2026-03-22", Miles: "30–40", Note: "Half Marathon — Sat 3/21"},
	{Label: "W6", Start: "2026-03-23", End: "2026-03-29", Miles: "38–44", Note: "Rebuild"},
	{Label: "W7", Start: "2026-03-30", End: "2026-04-05", Miles: "41–47", Note: "Build"},
	{Label: "W8", Start: "2026-04-06", End: "2026-04-12", Miles: "39–45", Note: "10-Miler Sharpening"},
	{Label: "W9", Start: "2026-04-13", End: "2026-04-19", Miles: "30–40", Note: "10-Miler — Sat 4/18"},
}

var workouts = []models.Workout{
	// Re-entry
	{Date: "2026-02-12", Category: models.CategoryRun, Label: "Easy + Strides", Description: "6–7 easy + 6×20s strides"},
	{Date: "2026-02-13", Category: models.CategoryLift, Label: "Lift C", Description: "Lift C (light)"},
	{Date: "2026-02-14", Category: models.CategoryRun, Label: "Easy Run", Description: "8–10 easy (last 10 min steady optional)"},
	{Date: "2026-02-15", Category: models.CategoryRun, Label: "Easy Run", Description: "5–6 easy"},
	// W1
	{Date: "2026-02-16", Category: models.CategoryLift, Label: "Lift A", Description: "Lift A"},
	{Date: "2026-02-17", Category: models.CategoryRun, Label: "Run Q1", Description: "10–12 mi · WU → 5–6×1 mi sub-T / 60–75s jog → CD"},
	{Date: "2026-02-18", Category: models.CategoryLift, Label: "Lift B", Description: "Lift B"},
	{Date: "2026-02-19", Category: models.CategoryRun, Label: "Run Q2", Description: "9–10 mi · WU → 10×2:00 sub-T / 1:00 easy → CD"},
	{Date: "2026-02-20", Category: models.CategoryLift, Label: "Lift C", Description: "Lift C"},
	{Date: "2026-02-21", Category: models.CategoryRun, Label: "Long Run", Description: "12–13 easy"},
	{Date: "2026-02-22", Category: models.CategoryRun, Label: "Easy + Strides", Description: "7–8 easy + strides"},
	// W2
	{Date: "2026-02-23", Category: models.CategoryLift, Label: "Lift A", Description: "Lift A"},
	{Date: "2026-02-24", Category: models.CategoryRun, Label: "Run Q1", Description: "11–12 mi · WU → 3×2 mi sub-T / 2:00 jog → CD"},
	{Date: "2026-02-25", Category: models.CategoryLift, Label: "Lift B", Description: "Lift B"},
	{Date: "2026-02-26", Category: models.CategoryRun, Label: "Run Q2", Description: "9–10 mi · WU → 4×4:00 strong / 2:00 jog → CD"},
	{Date: "2026-02-27", Category: models.CategoryLift, Label: "Lift C", Description: "Lift C"},
	{Date: "2026-02-28", Category: models.CategoryRun, Label: "Long Run", Description: "12–14 easy"},
	{Date: "2026-03-01", Category: models.CategoryRun, Label: "Easy + Strides", Description: "7–8 easy + strides"},
	// W3
	{Date: "2026-03-02", Category: models.CategoryLift, Label: "Lift A", Description: "Lift A (normal)"},
	{Date: "2026-03-03", Category: models.CategoryRun, Label: "Run Q", Description: "10–11 mi · WU → 4×1 mi sub-T / 75s jog → CD"},
	{Date: "2026-03-04", Category: models.CategoryLift, Label: "Lift B", Description: "Lift B (moderate)"},
	{Date: "2026-03-05", Category: models.CategoryRun, Label: "Easy + Strides", Description: "6–8 easy + 4–6 strides (light)"},
	{Date: "2026-03-06", Category: models.CategoryLift, Label: "Lift C", Description: "Lift C (light or skip legs)"},
	{Date: "2026-03-07", Category: models.CategoryRace, Label: "RACE: 10K", Description: "10K Race"},
	{Date: "2026-03-08", Category: models.CategoryRun, Label: "Recovery", Description: "3–5 very easy or off"},
	// W4
	{Date: "2026-03-09", Category: models.CategoryLift, Label: "Lift A", Description: "Lift A (light/mod)"},
	{Date: "2026-03-10", Category: models.CategoryRun, Label: "Easy + Strides", Description: "7–9 easy + strides"},
	{Date: "2026-03-11", Category: models.CategoryLift, Label: "Lift B", Description: "Lift B"},
	{Date: "2026-03-12", Category: models.CategoryRun, Label: "Run Q2", Description: "9–10 mi · WU → 5–6×1 mi sub-T / 60–75s jog → CD"},
	{Date: "2026-03-13", Category: models.CategoryLift, Label: "Lift C", Description: "Lift C"},
	{Date: "2026-03-14", Category: models.CategoryRun, Label: "Long Run", Description: "12–14 easy"},
	{Date: "2026-03-15", Category: models.CategoryRun, Label: "Easy Run", Description: "7–8 easy"},
	// W5
	{Date: "2026-03-16", Category: models.CategoryLift, Label: "Lift A", Description: "Lift A (normal)"},
	{Date: "2026-03-17", Category: models.CategoryRun, Label: "Run Q", Description: "10–11 mi · WU → 3×2 mi sub-T / 2:00 jog → CD"},
	{Date: "2026-03-18", Category: models.CategoryLift, Label: "Lift B", Description: "Lift B (moderate)"},
	{Date: "2026-03-19", Category: models.CategoryRun, Label: "Easy + Strides", Description: "6–8 easy + 4–6 strides (light)"},
	{Date: "2026-03-20", Category: models.CategoryLift, Label: "Lift C", Description: "Lift C (light or skip legs)"},
	{Date: "2026-03-21", Category: models.CategoryRace, Label: "RACE: Half", Description: "Half Marathon"},
	{Date: "2026-03-22", Category: models.CategoryRun, Label: "Recovery", Description: "3–5 very easy or off"},
	// W6
	{Date: "2026-03-23", Category: models.CategoryLift, Label: "Lift A", Description: "Lift A (light/mod)"},
	{Date: "2026-03-24", Category: models.CategoryRun, Label: "Run Q1", Description: "10–12 mi · WU → 5–6×1 mi sub-T / 60–75s jog → CD"},
	{Date: "2026-03-25", Category: models.CategoryLift, Label: "Lift B", Description: "Lift B"},
	{Date: "2026-03-26", Category: models.CategoryRun, Label: "Run Q2", Description: "9–10 mi · WU → 4×4:00 strong / 2:00 jog → CD"},
	{Date: "2026-03-27", Category: models.CategoryLift, Label: "Lift C", Description: "Lift C"},
	{Date: "2026-03-28", Category: models.CategoryRun, Label: "Long Run", Description: "12–14 easy"},
	{Date: "2026-03-29", Category: models.CategoryRun, Label: "Easy + Strides", Description: "7–8 easy + strides"},
	// W7
	{Date: "2026-03-30", Category: models.CategoryLift, Label: "Lift A", Description: "Lift A"},
	{Date: "2026-03-31", Category: models.CategoryRun, Label: "Run Q1", Description: "11–12 mi · WU → 4×2 mi sub-T / 2:00 jog → CD"},
	{Date: "2026-04-01", Category: models.CategoryLift, Label: "Lift B", Description: "Lift B"},
	{Date: "2026-04-02", Category: models.CategoryRun, Label: "Run Q2", Description: "9–10 mi · WU → 6×1 mi sub-T / 60–75s jog → CD"},
	{Date: "2026-04-03", Category: models.CategoryLift, Label: "Lift C", Description: "Lift C"},
	{Date: "2026-04-04", Category: models.CategoryRun, Label: "Long Run", Description: "14–16 easy (last 2–3 mi steady optional)"},
	{Date: "2026-04-05", Category: models.CategoryRun, Label: "Easy + Strides", Description: "7–9 easy + strides"},
	// W8
	{Date: "2026-04-06", Category: models.CategoryLift, Label: "Lift A", Description: "Lift A"},
	{Date: "2026-04-07", Category: models.CategoryRun, Label: "Run Q1", Description: "11–12 mi · WU → 3×2 mi sub-T + 2×1 mi sub-T / short jog → CD"},
	{Date: "2026-04-08", Category: models.CategoryLift, Label: "Lift B", Description: "Lift B"},
	{Date: "2026-04-09", Category: models.CategoryRun, Label: "Run Q2", Description: "9–10 mi · WU → 6×4:00 strong / 2:00 jog → CD"},
	{Date: "2026-04-10", Category: models.CategoryLift, Label: "Lift C", Description: "Lift C"},
	{Date: "2026-04-11", Category: models.CategoryRun, Label: "Long Run", Description: "12–14 easy"},
	{Date: "2026-04-12", Category: models.CategoryRun, Label: "Easy + Strides", Description: "7–9 easy + strides"},
	// W9
	{Date: "2026-04-13", Category: models.CategoryLift, Label: "Lift A", Description: "Lift A (normal)"},
	{Date: "2026-04-14", Category: models.CategoryRun, Label: "Run Q", Description: "10–11 mi · WU → 3×2 mi sub-T / 2:00 jog → CD"},
	{Date: "2026-04-15", Category: models.CategoryLift, Label: "Lift B", Description: "Lift B (moderate)"},
	{Date: "2026-04-16", Category: models.CategoryRun, Label: "Easy + Strides", Description: "6–8 easy + 4–6 strides (light)"},
	{Date: "2026-04-17", Category: models.CategoryLift, Label: "Lift C", Description: "Lift C (light or skip legs)"},
	{Date: "2026-04-18", Category: models.CategoryRace, Label: "RACE: 10-Mi", Description: "10-Miler Race"},
	{Date: "2026-04-19", Category: models.CategoryRun, Label: "Recovery", Description: "3–5 very easy or off"},
}
