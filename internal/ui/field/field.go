// Package field implements an editable text field.
//
// [Field] is the state engine: it owns or mirrors a single value and derives
// the flags the renderer needs (clear affordance, secret toggle, effective
// kind). [Model] is the Bubbletea component that feeds key presses into a
// Field and paints its [Snapshot].
//
// # Controlled and Uncontrolled
//
// A field is created in exactly one mode and never switches:
//
//   - Uncontrolled ([NewUncontrolled]): the field stores the value. Every
//     accepted change updates it, then notifies OnChange.
//   - Controlled ([NewControlled]): the host stores the value and pushes it
//     with [Field.Sync]. Changes only notify OnChange; the value moves when
//     the host syncs the one it accepts.
//
// Sync on an Uncontrolled field is ignored.
package field

// Mode says who owns the value.
type Mode int

const (
	// Uncontrolled fields store their own value.
	Uncontrolled Mode = iota
	// Controlled fields mirror a host-supplied value.
	Controlled
)

func (m Mode) String() string {
	if m == Controlled {
		return "controlled"
	}
	return "uncontrolled"
}

// Kind is the input type. It only affects presentation.
type Kind int

const (
	KindText Kind = iota
	KindPassword
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindPassword:
		return "password"
	case KindOther:
		return "other"
	default:
		return "text"
	}
}

// Options configures a Field.
type Options struct {
	Kind      Kind
	Clearable bool
	Disabled  bool
	ReadOnly  bool

	// HasEndIcon marks a decorative trailing icon, shown only when neither
	// the clear nor the secret affordance is.
	HasEndIcon bool

	// HelperText is shown below the field unless it is invalid.
	HelperText string

	// OnChange receives every accepted change, including clears.
	OnChange func(value string)
}

// Field is the value engine behind a text field.
type Field struct {
	mode     Mode
	external string
	internal string

	kind     Kind
	revealed bool

	clearable  bool
	disabled   bool
	readOnly   bool
	hasEndIcon bool

	invalid      bool
	errorMessage string
	helperText   string

	onChange func(string)
}

// NewUncontrolled creates a field that stores its own value, starting at
// initial.
func NewUncontrolled(initial string, opts Options) *Field {
	f := newField(Uncontrolled, opts)
	f.internal = initial
	return f
}

// NewControlled creates a field that mirrors value. The host keeps it
// current with Sync.
func NewControlled(value string, opts Options) *Field {
	f := newField(Controlled, opts)
	f.external = value
	return f
}

func newField(mode Mode, opts Options) *Field {
	return &Field{
		mode:       mode,
		kind:       opts.Kind,
		clearable:  opts.Clearable,
		disabled:   opts.Disabled,
		readOnly:   opts.ReadOnly,
		hasEndIcon: opts.HasEndIcon,
		helperText: opts.HelperText,
		onChange:   opts.OnChange,
	}
}

// Mode returns the ownership mode fixed at construction.
func (f *Field) Mode() Mode { return f.mode }

// Kind returns the declared kind.
func (f *Field) Kind() Kind { return f.kind }

// Value returns the effective value: the synced host value when
// Controlled, the stored value otherwise.
func (f *Field) Value() string {
	if f.mode == Controlled {
		return f.external
	}
	return f.internal
}

// HasValue reports whether the effective value is non-empty.
func (f *Field) HasValue() bool {
	return f.Value() != ""
}

// Change handles a change request carrying raw. Uncontrolled fields store
// raw; both modes then notify OnChange exactly once. Disabled and read-only
// fields produce no changes. Reports whether the change was accepted.
func (f *Field) Change(raw string) bool {
	if !f.editable() {
		return false
	}
	if f.mode == Uncontrolled {
		f.internal = raw
	}
	if f.onChange != nil {
		f.onChange(raw)
	}
	return true
}

// Clear requests an empty value through the same path as Change.
// It is a no-op (no notification) when the field is already empty,
// disabled or read-only.
func (f *Field) Clear() bool {
	if !f.HasValue() {
		return false
	}
	return f.Change("")
}

// ToggleSecret flips whether a password is shown in clear text.
// The value is untouched.
func (f *Field) ToggleSecret() {
	f.revealed = !f.revealed
}

// Revealed reports whether the secret is shown.
func (f *Field) Revealed() bool {
	return f.revealed
}

// Sync sets the host-owned value of a Controlled field. Uncontrolled
// fields ignore it and return false.
func (f *Field) Sync(value string) bool {
	if f.mode != Controlled {
		return false
	}
	f.external = value
	return true
}

// SetDisabled enables or disables the field.
func (f *Field) SetDisabled(disabled bool) { f.disabled = disabled }

// SetReadOnly toggles read-only.
func (f *Field) SetReadOnly(readOnly bool) { f.readOnly = readOnly }

// SetInvalid marks the field invalid with message, or clears the error
// when invalid is false.
func (f *Field) SetInvalid(invalid bool, message string) {
	f.invalid = invalid
	f.errorMessage = message
	if !invalid {
		f.errorMessage = ""
	}
}

// SetHelperText replaces the helper text.
func (f *Field) SetHelperText(text string) { f.helperText = text }

func (f *Field) editable() bool {
	return !f.disabled && !f.readOnly
}

// ShowClear reports whether the clear affordance is offered.
func (f *Field) ShowClear() bool {
	return f.clearable && f.HasValue() && f.editable()
}

// ShowSecretToggle reports whether the reveal/conceal affordance is offered.
func (f *Field) ShowSecretToggle() bool {
	return f.kind == KindPassword
}

// EffectiveKind is the kind to present: a revealed password shows as text.
func (f *Field) EffectiveKind() Kind {
	if f.kind == KindPassword && f.revealed {
		return KindText
	}
	return f.kind
}

// ShowEndAdornment reports whether the decorative end icon has room.
func (f *Field) ShowEndAdornment() bool {
	return f.hasEndIcon && !f.ShowClear() && !f.ShowSecretToggle()
}

// Message is the line shown below the field: the error message when
// invalid, the helper text otherwise.
func (f *Field) Message() string {
	if f.invalid {
		return f.errorMessage
	}
	return f.helperText
}

// Snapshot is the render-ready state of a Field.
type Snapshot struct {
	Value            string
	Mode             Mode
	Kind             Kind
	EffectiveKind    Kind
	Revealed         bool
	HasValue         bool
	ShowClear        bool
	ShowSecretToggle bool
	ShowEndAdornment bool
	Disabled         bool
	ReadOnly         bool
	Invalid          bool
	Message          string
}

// State returns the current snapshot.
func (f *Field) State() Snapshot {
	return Snapshot{
		Value:            f.Value(),
		Mode:             f.mode,
		Kind:             f.kind,
		EffectiveKind:    f.EffectiveKind(),
		Revealed:         f.revealed,
		HasValue:         f.HasValue(),
		ShowClear:        f.ShowClear(),
		ShowSecretToggle: f.ShowSecretToggle(),
		ShowEndAdornment: f.ShowEndAdornment(),
		Disabled:         f.disabled,
		ReadOnly:         f.readOnly,
		Invalid:          f.invalid,
		Message:          f.Message(),
	}
}
