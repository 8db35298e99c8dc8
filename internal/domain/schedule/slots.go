package schedule

import (
	"fmt"
	"time"
)

// ===============================
// Grade de horários
// ===============================

// SlotConfig delimita a grade de horários agendáveis. Os limites e o
// passo vêm da configuração; o padrão reproduz 08:00–18:00 de 30 em 30.
type SlotConfig struct {
	Open        string
	Close       string
	StepMinutes int
}

func DefaultSlotConfig() SlotConfig {
	return SlotConfig{
		Open:        "08:00",
		Close:       "18:00",
		StepMinutes: 30,
	}
}

// SlotCatalog gera e valida a grade. A grade é finita, ordenada e
// determinística; gerar duas vezes produz a mesma sequência.
type SlotCatalog struct {
	cfg   SlotConfig
	slots []string
	index map[string]struct{}
}

func NewSlotCatalog(cfg SlotConfig) (*SlotCatalog, error) {
	open, err := time.Parse(TimeLayout, cfg.Open)
	if err != nil {
		return nil, fmt.Errorf("invalid slot open %q: %w", cfg.Open, err)
	}

	end, err := time.Parse(TimeLayout, cfg.Close)
	if err != nil {
		return nil, fmt.Errorf("invalid slot close %q: %w", cfg.Close, err)
	}

	if cfg.StepMinutes <= 0 {
		return nil, fmt.Errorf("invalid slot step %d", cfg.StepMinutes)
	}
	if end.Before(open) {
		return nil, fmt.Errorf("slot close %q before open %q", cfg.Close, cfg.Open)
	}

	step := time.Duration(cfg.StepMinutes) * time.Minute

	c := &SlotCatalog{
		cfg:   cfg,
		index: make(map[string]struct{}),
	}

	for cur := open; !cur.After(end); cur = cur.Add(step) {
		s := cur.Format(TimeLayout)
		c.slots = append(c.slots, s)
		c.index[s] = struct{}{}
	}

	return c, nil
}

// Slots devolve a grade em ordem crescente.
func (c *SlotCatalog) Slots() []string {
	out := make([]string, len(c.slots))
	copy(out, c.slots)
	return out
}

// IsValid testa pertencimento à grade. Horário fora da grade derruba
// a criação/edição do agendamento com erro de validação, sem efeitos.
func (c *SlotCatalog) IsValid(t string) bool {
	_, ok := c.index[t]
	return ok
}
