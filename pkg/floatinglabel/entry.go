package floatinglabel

import (
	"fmt"

	"github.com/go-drift/drift/pkg/core"
	drifterrors "github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/focus"
	"github.com/go-drift/drift/pkg/gestures"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/semantics"
)

// entry hosts the native text view of a floating label field. Unlike
// widgets.TextInput it draws no chrome, never shows a placeholder, and hands
// its state to the enclosing field so focus can be moved in imperatively.
type entry struct {
	core.StatefulBase

	controller     *platform.TextEditingController
	style          InputStyle
	label          string
	obscure        bool
	keyboardType   platform.KeyboardType
	inputAction    platform.TextInputAction
	capitalization platform.TextCapitalization
	autocorrect    bool
	disabled       bool
	multiline      bool
	maxLines       int
	height         float64

	onChanged         func(string)
	onSubmitted       func()
	onEditingComplete func()
	onFocusChange     func(bool)
	attach            func(*entryState)
	detach            func(*entryState)
}

func (e entry) CreateState() core.State {
	return &entryState{}
}

type entryState struct {
	core.StateBase
	platformView       *platform.TextInputView
	focused            bool
	focusNode          *focus.FocusNode
	updatingController bool
}

func (s *entryState) widget() entry {
	return s.Element().Widget().(entry)
}

func (s *entryState) InitState() {
	w := s.widget()
	s.focusNode = &focus.FocusNode{
		CanRequestFocus: true,
		DebugLabel:      "FloatingLabelInput",
		SemanticsLabel:  w.label,
		Rect:            s,
		OnFocusChange: func(hasFocus bool) {
			if hasFocus && !s.focused {
				s.Focus()
			} else if !hasFocus && s.focused {
				s.unfocus()
			}
		},
	}
	manager := focus.GetFocusManager()
	if manager.RootScope != nil {
		manager.RootScope.Children = append(manager.RootScope.Children, s.focusNode)
	}
	if w.attach != nil {
		w.attach(s)
	}
}

func (s *entryState) Dispose() {
	if w, ok := s.Element().Widget().(entry); ok && w.detach != nil {
		w.detach(s)
	}
	if s.platformView != nil {
		platform.GetPlatformViewRegistry().Dispose(s.platformView.ViewID())
		s.platformView = nil
	}
	if s.focusNode != nil {
		manager := focus.GetFocusManager()
		if manager.RootScope != nil {
			if manager.RootScope.FocusedChild == s.focusNode {
				manager.RootScope.FocusedChild = nil
			}
			children := manager.RootScope.Children
			for i, child := range children {
				if child == s.focusNode {
					manager.RootScope.Children = append(children[:i], children[i+1:]...)
					break
				}
			}
		}
		s.focusNode = nil
	}
	s.StateBase.Dispose()
}

func (s *entryState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(entry)
	w := s.widget()
	if old.attach == nil && w.attach != nil {
		w.attach(s)
	}
	if s.platformView == nil {
		return
	}
	if s.viewConfig(old) != s.viewConfig(w) {
		s.platformView.UpdateConfig(s.viewConfig(w))
	}
	if w.controller != nil && w.controller.Text() != s.platformView.Text() {
		s.updatingController = true
		s.platformView.SetValue(w.controller.Value())
		s.updatingController = false
	}
}

// FocusRect implements focus.RectProvider for directional navigation.
func (s *entryState) FocusRect() focus.FocusRect {
	element := s.Element()
	if element == nil {
		return focus.FocusRect{}
	}
	offset := core.GlobalOffsetOf(element)
	if ro := element.RenderObject(); ro != nil {
		if sizer, ok := ro.(interface{ Size() graphics.Size }); ok {
			size := sizer.Size()
			return focus.FocusRect{
				Left:   offset.X,
				Top:    offset.Y,
				Right:  offset.X + size.Width,
				Bottom: offset.Y + size.Height,
			}
		}
	}
	return focus.FocusRect{Left: offset.X, Top: offset.Y, Right: offset.X, Bottom: offset.Y}
}

func (s *entryState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return entryRender{state: s, height: w.height, disabled: w.disabled}
}

func (s *entryState) viewConfig(w entry) platform.TextInputViewConfig {
	return platform.TextInputViewConfig{
		FontFamily:       w.style.FontFamily,
		FontSize:         w.style.FontSize,
		FontWeight:       int(w.style.FontWeight),
		TextColor:        uint32(w.style.Color),
		PlaceholderColor: uint32(graphics.ColorTransparent),
		Multiline:        w.multiline,
		MaxLines:         w.maxLines,
		Obscure:          w.obscure,
		Autocorrect:      w.autocorrect,
		KeyboardType:     w.keyboardType,
		InputAction:      w.inputAction,
		Capitalization:   w.capitalization,
		PaddingLeft:      w.style.PaddingLeft,
		PaddingRight:     w.style.PaddingRight,
		Placeholder:      "",
	}
}

// ensurePlatformView creates the native text view on first paint.
func (s *entryState) ensurePlatformView() {
	if s.platformView != nil {
		return
	}
	w := s.widget()
	config := s.viewConfig(w)

	params := map[string]any{
		"fontFamily":       config.FontFamily,
		"fontSize":         config.FontSize,
		"fontWeight":       config.FontWeight,
		"textColor":        config.TextColor,
		"placeholderColor": config.PlaceholderColor,
		"multiline":        config.Multiline,
		"maxLines":         config.MaxLines,
		"obscure":          config.Obscure,
		"autocorrect":      config.Autocorrect,
		"keyboardType":     int(config.KeyboardType),
		"inputAction":      int(config.InputAction),
		"capitalization":   int(config.Capitalization),
		"paddingLeft":      config.PaddingLeft,
		"paddingRight":     config.PaddingRight,
		"placeholder":      "",
	}
	if w.controller != nil {
		params["text"] = w.controller.Text()
	}

	view, err := platform.GetPlatformViewRegistry().Create("textinput", params)
	if err != nil {
		drifterrors.Report(&drifterrors.DriftError{
			Op:   "floatinglabel.createTextInput",
			Kind: drifterrors.KindPlatform,
			Err:  err,
		})
		return
	}
	textView, ok := view.(*platform.TextInputView)
	if !ok {
		drifterrors.Report(&drifterrors.DriftError{
			Op:   "floatinglabel.createTextInput",
			Kind: drifterrors.KindPlatform,
			Err:  fmt.Errorf("unexpected platform view %T", view),
		})
		return
	}
	s.platformView = textView
	s.platformView.SetClient(s)
}

// OnTextChanged implements platform.TextInputViewClient.
func (s *entryState) OnTextChanged(text string, selectionBase, selectionExtent int) {
	w := s.widget()
	if w.controller == nil || s.updatingController {
		return
	}
	oldText := w.controller.Text()
	w.controller.SetValue(platform.TextEditingValue{
		Text: text,
		Selection: platform.TextSelection{
			BaseOffset:   selectionBase,
			ExtentOffset: selectionExtent,
		},
		ComposingRange: platform.TextRangeEmpty,
	})
	if w.onChanged != nil && text != oldText {
		w.onChanged(text)
	}
	s.SetState(func() {})
}

// OnAction implements platform.TextInputViewClient. Every keyboard action
// submits except a newline in a multiline field. Focus moves first so a
// submit callback that focuses another field has the last word.
func (s *entryState) OnAction(action platform.TextInputAction) {
	w := s.widget()
	if w.multiline && action == platform.TextInputActionNewline {
		return
	}
	s.unfocus()
	switch action {
	case platform.TextInputActionNext:
		focus.GetFocusManager().MoveFocus(1)
	case platform.TextInputActionPrevious:
		focus.GetFocusManager().MoveFocus(-1)
	}
	Submit(w.onSubmitted)
	if w.onEditingComplete != nil {
		w.onEditingComplete()
	}
}

// OnFocusChanged implements platform.TextInputViewClient.
func (s *entryState) OnFocusChanged(focused bool) {
	changed := s.focused != focused
	s.SetState(func() {
		s.focused = focused
	})
	if focused {
		if s.focusNode != nil {
			s.focusNode.RequestFocus()
		}
		platform.SetFocusedTarget(s.Element().RenderObject())
	}
	if s.platformView != nil {
		platform.SetFocusedInput(s.platformView.ViewID(), focused)
	}
	if changed {
		s.notifyFocus(focused)
	}
}

// Focus moves keyboard focus into the native view.
func (s *entryState) Focus() {
	if s.focused || s.IsDisposed() {
		return
	}
	w := s.widget()
	if w.disabled {
		return
	}
	s.focused = true
	if s.focusNode != nil {
		s.focusNode.RequestFocus()
	}
	s.ensurePlatformView()
	if s.platformView != nil {
		if w.controller != nil {
			s.updatingController = true
			s.platformView.SetValue(w.controller.Value())
			s.updatingController = false
		}
		s.platformView.Focus()
		platform.SetFocusedInput(s.platformView.ViewID(), true)
	}
	platform.SetFocusedTarget(s.Element().RenderObject())
	s.SetState(func() {})
	s.notifyFocus(true)
}

func (s *entryState) unfocus() {
	if !s.focused {
		return
	}
	s.focused = false
	if s.platformView != nil {
		s.platformView.Blur()
		platform.SetFocusedInput(s.platformView.ViewID(), false)
	}
	s.SetState(func() {})
	s.notifyFocus(false)
}

func (s *entryState) notifyFocus(focused bool) {
	if w := s.widget(); w.onFocusChange != nil {
		w.onFocusChange(focused)
	}
}

type entryRender struct {
	core.RenderObjectBase
	state    *entryState
	height   float64
	disabled bool
}

func (e entryRender) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderEntry{state: e.state, height: e.height, disabled: e.disabled}
	r.SetSelf(r)
	return r
}

func (e entryRender) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderEntry); ok {
		r.state = e.state
		r.height = e.height
		r.disabled = e.disabled
		r.MarkNeedsLayout()
		r.MarkNeedsPaint()
	}
}

type renderEntry struct {
	layout.RenderBoxBase
	state    *entryState
	height   float64
	disabled bool
	tap      *gestures.TapGestureRecognizer
}

func (r *renderEntry) PerformLayout() {
	c := r.Constraints()
	height := min(max(r.height, c.MinHeight), c.MaxHeight)
	r.SetSize(graphics.Size{Width: c.MaxWidth, Height: height})
}

func (r *renderEntry) Paint(ctx *layout.PaintContext) {
	if r.state == nil || r.state.IsDisposed() {
		return
	}
	clip, hasClip := ctx.CurrentClipBounds()
	var clipPtr *graphics.Rect
	if hasClip {
		clipPtr = &clip
	}

	// The view follows the field through page transitions, so geometry is
	// pushed on every frame.
	r.state.ensurePlatformView()
	if r.state.platformView == nil {
		return
	}
	r.state.platformView.SetGeometry(core.GlobalOffsetOf(r.state.Element()), r.Size(), clipPtr)
	r.state.platformView.SetEnabled(!r.disabled)
}

func (r *renderEntry) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	size := r.Size()
	if position.X < 0 || position.Y < 0 || position.X > size.Width || position.Y > size.Height {
		return false
	}
	result.Add(r)
	return true
}

// HandlePointer implements PointerHandler for gesture recognition.
func (r *renderEntry) HandlePointer(event gestures.PointerEvent) {
	if r.tap == nil {
		r.tap = gestures.NewTapGestureRecognizer(gestures.DefaultArena)
		r.tap.OnTap = func() {
			if r.state != nil {
				r.state.Focus()
			}
		}
	}
	if event.Phase == gestures.PointerPhaseDown {
		r.tap.AddPointer(event)
	} else {
		r.tap.HandleEvent(event)
	}
}

// DescribeSemanticsConfiguration implements SemanticsDescriber for accessibility.
func (r *renderEntry) DescribeSemanticsConfiguration(config *semantics.SemanticsConfiguration) bool {
	config.IsSemanticBoundary = true
	config.Properties.Role = semantics.SemanticsRoleTextField

	flags := semantics.SemanticsIsTextField | semantics.SemanticsIsFocusable | semantics.SemanticsHasEnabledState
	if !r.disabled {
		flags = flags.Set(semantics.SemanticsIsEnabled)
	}
	if r.state != nil && !r.state.IsDisposed() {
		w := r.state.widget()
		if r.state.focused {
			flags = flags.Set(semantics.SemanticsIsFocused)
		}
		config.Properties.Label = w.label
		if w.obscure {
			flags = flags.Set(semantics.SemanticsIsObscured)
		} else if w.controller != nil {
			config.Properties.Value = w.controller.Text()
		}
	}
	config.Properties.Flags = flags
	config.Properties.Hint = "Double tap to edit"

	config.Actions = semantics.NewSemanticsActions()
	focusAction := func(args any) {
		if r.state != nil {
			r.state.Focus()
		}
	}
	config.Actions.SetHandler(semantics.SemanticsActionTap, focusAction)
	config.Actions.SetHandler(semantics.SemanticsActionFocus, focusAction)
	return true
}
