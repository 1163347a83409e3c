package appointment

import (
	"fmt"
	"time"
)

// ===============================
// Slot Catalog
// ===============================

// SlotConfig é passado explicitamente no startup; nada de catálogo
// global mutável.
type SlotConfig struct {
	Start       string // "15:04"
	End         string // "15:04"
	StepMinutes int
}

func DefaultSlotConfig() SlotConfig {
	return SlotConfig{
		Start:       "08:00",
		End:         "20:00",
		StepMinutes: 30,
	}
}

func (c SlotConfig) Validate() error {
	if c.StepMinutes <= 0 {
		return fmt.Errorf("slot step must be positive, got %d", c.StepMinutes)
	}
	start, err := parseLabel(c.Start)
	if err != nil {
		return fmt.Errorf("invalid slot start %q", c.Start)
	}
	end, err := parseLabel(c.End)
	if err != nil {
		return fmt.Errorf("invalid slot end %q", c.End)
	}
	if end < start {
		return fmt.Errorf("slot end %q before start %q", c.End, c.Start)
	}
	return nil
}

// GenerateSlots produz os horários de início válidos do dia, inclusive
// nas duas pontas, estritamente crescentes por StepMinutes.
// Padrão 08:00–20:00 passo 30 ⇒ 25 horários.
func GenerateSlots(cfg SlotConfig) []string {
	start, err := parseLabel(cfg.Start)
	if err != nil {
		return nil
	}
	end, err := parseLabel(cfg.End)
	if err != nil || cfg.StepMinutes <= 0 {
		return nil
	}

	var slots []string
	for cur := start; cur <= end; cur += cfg.StepMinutes {
		slots = append(slots, formatLabel(cur))
	}
	return slots
}

// Contains informa se o label pertence ao catálogo gerado pela config.
func (c SlotConfig) Contains(label string) bool {
	t, err := parseLabel(label)
	if err != nil {
		return false
	}
	start, err := parseLabel(c.Start)
	if err != nil {
		return false
	}
	end, err := parseLabel(c.End)
	if err != nil || c.StepMinutes <= 0 {
		return false
	}
	return t >= start && t <= end && (t-start)%c.StepMinutes == 0
}

// ===============================
// Labels "15:04" ↔ minutos do dia
// ===============================

func parseLabel(label string) (int, error) {
	t, err := time.Parse("15:04", label)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
