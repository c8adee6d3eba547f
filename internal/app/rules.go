package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slidecast/slidecast/internal/segment"
)

func (a *App) rulesPath() string {
	return filepath.Join(a.Config.Paths.Data, correctionsFile)
}

// Rules returns the application-global correction rule set.
func (a *App) Rules() (segment.Rules, error) {
	return segment.LoadRules(a.rulesPath())
}

// AddRule adds a wrong-to-correct rule and persists the set.
func (a *App) AddRule(ctx context.Context, wrong, correct string) error {
	rules, err := segment.LoadRules(a.rulesPath())
	if err != nil {
		return err
	}
	if err := rules.Add(wrong, correct); err != nil {
		return err
	}
	if err := os.MkdirAll(a.Config.Paths.Data, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := segment.SaveRules(a.rulesPath(), rules); err != nil {
		return err
	}
	a.Logger.Info(ctx, "Added correction rule: %q -> %q", wrong, correct)
	return nil
}

// RemoveRule deletes a rule by its wrong text.
func (a *App) RemoveRule(ctx context.Context, wrong string) error {
	rules, err := segment.LoadRules(a.rulesPath())
	if err != nil {
		return err
	}
	if !rules.Remove(wrong) {
		return fmt.Errorf("no correction rule for %q", wrong)
	}
	if err := segment.SaveRules(a.rulesPath(), rules); err != nil {
		return err
	}
	a.Logger.Info(ctx, "Removed correction rule: %q", wrong)
	return nil
}
