// Package floatinglabel provides a text input whose label floats above the
// entry when the field is focused or holds text, with an optional
// password-visibility toggle.
//
// The package has two layers. The framework-neutral layer tracks focus and
// secure-text state ([Controller]), merges style overrides over the default
// look ([LabelStyles], [ContainerStyle], [InputStyle], [ToggleStyle],
// [ToggleImageStyle]), selects the toggle icon ([SelectIcon]) and resolves
// everything into an [Appearance] for one frame ([Resolve]). The Drift layer
// renders that appearance as the [FloatingLabelInput] widget.
//
// # Label Poses
//
// The label has two poses. The blurred pose sits inside the field like a
// placeholder; the focused pose is smaller and sits on the top edge. The label
// stays in the focused pose after blur while the field holds text:
//
//	email := floatinglabel.FloatingLabelInput{
//	    Label:    "Email",
//	    Value:    s.email,
//	    OnSubmit: s.next,
//	}
//
// # Imperative Focus
//
// Owners that need to move focus into the field hold a [Ref]. The widget
// attaches itself to the ref when mounted; calling [Ref.Focus] before that is
// a no-op:
//
//	var ref floatinglabel.Ref
//	field := floatinglabel.FloatingLabelInput{Label: "Password", IsPassword: true, Ref: &ref}
//	// later
//	ref.Focus()
package floatinglabel
