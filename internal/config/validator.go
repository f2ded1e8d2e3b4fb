package config

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	cardErrors "github.com/alexisbeaulieu97/legendcard/pkg/errors"
)

// MaxDecimals is the largest precision the card formats values with.
const MaxDecimals = 20

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	entityIDPattern = regexp.MustCompile(`^[a-z0-9_]+\.[A-Za-z0-9_]+$`)
)

type lintCard struct {
	Entity        string       `yaml:"entity" validate:"required,entity_id"`
	Decimals      *int         `yaml:"decimals" validate:"omitempty,min=0,max=20"`
	LegendItems   []lintLegend `yaml:"legend_items" validate:"dive"`
	TapAction     *lintAction  `yaml:"tap_action" validate:"omitempty"`
	IconTapAction *lintAction  `yaml:"icon_tap_action" validate:"omitempty"`
}

type lintLegend struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

type lintAction struct {
	Action         string `yaml:"action" validate:"omitempty,action_type"`
	NavigationPath string `yaml:"navigation_path" validate:"required_if=Action navigate"`
	URL            string `yaml:"url_path" validate:"required_if=Action url"`
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("entity_id", func(fl validator.FieldLevel) bool {
			return entityIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("action_type", func(fl validator.FieldLevel) bool {
			return ActionType(fl.Field().String()).Known()
		})

		v.RegisterStructValidation(func(sl validator.StructLevel) {
			item := sl.Current().Interface().(lintLegend)
			if item.Min != nil && item.Max != nil && *item.Min > *item.Max {
				sl.ReportError(item.Min, "min", "Min", "range", "")
			}
		}, lintLegend{})

		validateInst = v
	})

	return validateInst
}

// Lint reports problems that do not stop a card from rendering: malformed
// entity ids, unknown action types, actions missing their target, decimals
// outside 0..20 and inverted ranges. Findings are ValidationErrors sorted by field.
func Lint(cfg *CardConfig) []error {
	if cfg == nil {
		return []error{cardErrors.NewValidationError("config", "configuration is nil", nil)}
	}

	view := lintCard{
		Entity:        cfg.Entity,
		Decimals:      cfg.Decimals,
		LegendItems:   make([]lintLegend, len(cfg.LegendItems)),
		TapAction:     lintActionFor(cfg.TapAction),
		IconTapAction: lintActionFor(cfg.IconTapAction),
	}
	for i, item := range cfg.LegendItems {
		view.LegendItems[i] = lintLegend{Min: item.Min, Max: item.Max}
	}

	err := validatorInstance().Struct(view)
	if err == nil {
		return nil
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return []error{cardErrors.NewValidationError("config", err.Error(), err)}
	}

	findings := make([]error, 0, len(ves))
	for _, fe := range ves {
		field := fieldPath(fe)
		findings = append(findings, cardErrors.NewValidationError(field, lintMessage(fe), nil))
	}
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Error() < findings[j].Error()
	})
	return findings
}

func lintActionFor(a *ActionConfig) *lintAction {
	if a == nil {
		return nil
	}
	return &lintAction{
		Action:         string(a.Action),
		NavigationPath: a.NavigationPath,
		URL:            a.URL,
	}
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func lintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "entity_id":
		return fmt.Sprintf("%q does not look like <domain>.<object_id>", fe.Value())
	case "action_type":
		return fmt.Sprintf("unknown action %q is ignored on tap", fe.Value())
	case "required_if":
		return fmt.Sprintf("is required when action is %s", strings.Fields(fe.Param())[1])
	case "min", "max":
		return fmt.Sprintf("must be between 0 and %d", MaxDecimals)
	case "range":
		return "min is greater than max; the range never matches"
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
