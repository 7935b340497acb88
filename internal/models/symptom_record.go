package models

import "time"

// SymptomRecord is a single timestamped symptom occurrence. Type is a
// free-form tag; multiple records of the same type on the same day are
// collapsed to one observation during aggregation.
type SymptomRecord struct {
	ID         uint      `gorm:"primaryKey"`
	ProfileID  uint      `gorm:"not null;index:idx_symptom_profile_time"`
	Type       string    `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null;index:idx_symptom_profile_time"`
	CreatedAt  time.Time
}

type BuiltinSymptom struct {
	Name string
	Icon string
}

// DefaultBuiltinSymptoms lists the tags offered before the user types
// their own; free-form tags are always accepted alongside these.
func DefaultBuiltinSymptoms() []BuiltinSymptom {
	return []BuiltinSymptom{
		{Name: "cramps", Icon: "🩸"},
		{Name: "headache", Icon: "🤕"},
		{Name: "mood_swings", Icon: "😢"},
		{Name: "bloating", Icon: "🎈"},
		{Name: "fatigue", Icon: "😴"},
		{Name: "breast_tenderness", Icon: "💔"},
		{Name: "acne", Icon: "🔴"},
		{Name: "back_pain", Icon: "🦴"},
		{Name: "nausea", Icon: "🤢"},
		{Name: "spotting", Icon: "🩹"},
		{Name: "irritability", Icon: "😤"},
		{Name: "insomnia", Icon: "🌙"},
		{Name: "food_cravings", Icon: "🍫"},
	}
}
