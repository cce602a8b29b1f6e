package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FieldKind discriminates the form field variants.
type FieldKind int

const (
	FieldInput  FieldKind = iota // free text / numeric entry
	FieldSelect                  // cycle through fixed options
	FieldToggle                  // boolean checkbox
)

// Field is one row of a form.
type Field struct {
	Label string
	Unit  string // rendered after the value, e.g. "°C"
	Kind  FieldKind

	input    textinput.Model
	options  []string
	optIndex int
	on       bool
}

// NewInputField creates a text entry field with an initial value.
func NewInputField(label, unit, initial string) Field {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.CharLimit = 24
	ti.Width = 16
	ti.Prompt = ""
	return Field{Label: label, Unit: unit, Kind: FieldInput, input: ti}
}

// NewSelectField creates an option-cycling field. If selected is not among
// the options it is appended, so free-text values loaded from a design file
// remain visible.
func NewSelectField(label string, options []string, selected string) Field {
	idx := -1
	for i, o := range options {
		if o == selected {
			idx = i
			break
		}
	}
	if idx < 0 {
		options = append(append([]string{}, options...), selected)
		idx = len(options) - 1
	}
	return Field{Label: label, Kind: FieldSelect, options: options, optIndex: idx}
}

// NewToggleField creates a checkbox field.
func NewToggleField(label string, on bool) Field {
	return Field{Label: label, Kind: FieldToggle, on: on}
}

// Value returns the field's current value as entered/selected.
func (f *Field) Value() string {
	switch f.Kind {
	case FieldSelect:
		return f.options[f.optIndex]
	case FieldToggle:
		return strconv.FormatBool(f.on)
	default:
		return strings.TrimSpace(f.input.Value())
	}
}

// On reports a toggle field's state.
func (f *Field) On() bool { return f.on }

// Float parses the field as a float64, reporting the label on failure.
func (f *Field) Float() (float64, error) {
	v, err := strconv.ParseFloat(f.Value(), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", f.Label, f.Value())
	}
	return v, nil
}

// Int parses the field as an int, reporting the label on failure.
func (f *Field) Int() (int, error) {
	v, err := strconv.Atoi(f.Value())
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", f.Label, f.Value())
	}
	return v, nil
}

// Form is a vertical list of fields with a single focused row.
type Form struct {
	fields []Field
	focus  int
	styles Styles
}

// NewForm creates a form and focuses its first field.
func NewForm(styles Styles, fields ...Field) Form {
	f := Form{fields: fields, styles: styles}
	f.setFocus(0)
	return f
}

// Field returns the field at index i for reading values back out.
func (f *Form) Field(i int) *Field {
	return &f.fields[i]
}

// Len returns the number of fields.
func (f *Form) Len() int { return len(f.fields) }

func (f *Form) setFocus(i int) {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focus].input.Blur()
	f.focus = ((i % len(f.fields)) + len(f.fields)) % len(f.fields)
	if f.fields[f.focus].Kind == FieldInput {
		f.fields[f.focus].input.Focus()
	}
}

// Update handles navigation and editing keys.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	cur := &f.fields[f.focus]
	switch key.String() {
	case "up":
		f.setFocus(f.focus - 1)
		return f, nil
	case "down", "enter":
		f.setFocus(f.focus + 1)
		return f, nil
	case "left":
		switch cur.Kind {
		case FieldSelect:
			cur.optIndex = (cur.optIndex - 1 + len(cur.options)) % len(cur.options)
			return f, nil
		case FieldToggle:
			cur.on = !cur.on
			return f, nil
		}
	case "right":
		switch cur.Kind {
		case FieldSelect:
			cur.optIndex = (cur.optIndex + 1) % len(cur.options)
			return f, nil
		case FieldToggle:
			cur.on = !cur.on
			return f, nil
		}
	case " ":
		if cur.Kind == FieldToggle {
			cur.on = !cur.on
			return f, nil
		}
	}

	if cur.Kind == FieldInput {
		var cmd tea.Cmd
		cur.input, cmd = cur.input.Update(msg)
		return f, cmd
	}
	return f, nil
}

// View renders the form.
func (f Form) View() string {
	labelWidth := 0
	for i := range f.fields {
		if w := len(f.fields[i].Label); w > labelWidth {
			labelWidth = w
		}
	}

	var sb strings.Builder
	for i := range f.fields {
		field := &f.fields[i]
		focused := i == f.focus

		marker := "  "
		labelStyle := f.styles.FieldLabel
		if focused {
			marker = "▸ "
			labelStyle = f.styles.FieldFocused
		}

		var value string
		switch field.Kind {
		case FieldSelect:
			if focused {
				value = fmt.Sprintf("◂ %s ▸", field.options[field.optIndex])
			} else {
				value = field.options[field.optIndex]
			}
		case FieldToggle:
			if field.on {
				value = "[x]"
			} else {
				value = "[ ]"
			}
		default:
			value = field.input.View()
		}
		if field.Unit != "" {
			value += " " + f.styles.Muted.Render(field.Unit)
		}

		sb.WriteString(marker)
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, field.Label)))
		sb.WriteString("  ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}
	return sb.String()
}
