package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"prodsearch/internal/domain"
	"prodsearch/internal/i18n"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeQuery
	InputModeRegion
	InputModeLimit
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// Editing reports whether the query input is active
func (it *InputTransformer) Editing() bool {
	return it.mode == InputModeQuery
}

// QueryText returns the live text input while editing, otherwise the committed query
func (it *InputTransformer) QueryText(committed string, tr i18n.Translator) string {
	if it.mode == InputModeQuery {
		return it.textInput.View()
	}
	if committed == "" {
		return tr.T(i18n.TypeToSearch)
	}
	return committed
}

// Options returns the picker entries for the region and limit modes
func (it *InputTransformer) Options(tr i18n.Translator) []string {
	switch it.mode {
	case InputModeRegion:
		opts := make([]string, 0, len(domain.Regions))
		for _, r := range domain.Regions {
			opts = append(opts, r.Label)
		}
		return opts
	case InputModeLimit:
		opts := make([]string, 0, len(domain.PageSizes))
		for _, n := range domain.PageSizes {
			opts = append(opts, tr.T(i18n.ItemsPerPage, n))
		}
		return opts
	default:
		return nil
	}
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeQuery:
		return "query"
	case InputModeRegion:
		return "region"
	case InputModeLimit:
		return "limit"
	default:
		return ""
	}
}
