package floatinglabel

// Animator requests that the next layout change be animated. It is called
// immediately before every state change that moves the label.
type Animator interface {
	AnimateNextLayout()
}

// AnimatorFunc adapts a function to [Animator].
type AnimatorFunc func()

// AnimateNextLayout calls f.
func (f AnimatorFunc) AnimateNextLayout() { f() }

// State is a snapshot of the view state of one field.
type State struct {
	// Focused selects the focused label pose.
	Focused bool
	// Secure masks entered text when the field is a password field.
	Secure bool
}

// Controller owns the focus and secure-text state of one field.
// It is not safe for concurrent use; all calls come from the UI thread.
type Controller struct {
	state     State
	directive bool
	animator  Animator
}

// NewController creates a controller for a field holding value.
// The label starts in the focused pose when value is non-empty, and text
// starts masked. directive is the initial external focus directive; it only
// takes effect once it changes.
func NewController(value string, directive bool, animator Animator) *Controller {
	return &Controller{
		state:     State{Focused: value != "", Secure: true},
		directive: directive,
		animator:  animator,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Focused reports whether the label is in the focused pose.
func (c *Controller) Focused() bool {
	return c.state.Focused
}

// Secure reports whether entered text is masked.
func (c *Controller) Secure() bool {
	return c.state.Secure
}

// HandleFocus records that the entry gained keyboard focus.
func (c *Controller) HandleFocus() {
	c.animate()
	c.state.Focused = true
}

// HandleBlur records that the entry lost keyboard focus. The label only
// returns to the blurred pose when value is empty, and the call reports
// whether it did.
func (c *Controller) HandleBlur(value string) bool {
	if value != "" {
		return false
	}
	c.animate()
	c.state.Focused = false
	return true
}

// SetDirective applies the external focus directive. Repeating the current
// directive does nothing, and the call reports whether the directive changed.
func (c *Controller) SetDirective(focused bool) bool {
	if focused == c.directive {
		return false
	}
	c.directive = focused
	c.animate()
	c.state.Focused = focused
	return true
}

// Toggle flips the secure-text state when the toggle control is enabled for
// the field, and reports whether it did. Toggling never animates.
func (c *Controller) Toggle(isPassword, isShowPassword bool) bool {
	if !ToggleVisible(isPassword, isShowPassword) {
		return false
	}
	c.state.Secure = !c.state.Secure
	return true
}

// SetAnimator replaces the animator.
func (c *Controller) SetAnimator(a Animator) {
	c.animator = a
}

func (c *Controller) animate() {
	if c.animator != nil {
		c.animator.AnimateNextLayout()
	}
}

// Submit invokes onSubmit when it is set.
func Submit(onSubmit func()) {
	if onSubmit != nil {
		onSubmit()
	}
}

// Masked reports whether entered text renders masked.
func Masked(isPassword bool, s State) bool {
	return isPassword && s.Secure
}

// ToggleVisible reports whether the visibility toggle is rendered.
func ToggleVisible(isPassword, isShowPassword bool) bool {
	return isPassword && isShowPassword
}
