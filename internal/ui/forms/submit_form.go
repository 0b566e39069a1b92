//go:build js && wasm

package forms

import (
	"strconv"
	"syscall/js"

	"github.com/Its-donkey/convertx/internal/relay"
)

var (
	formHandlers    []js.Func
	runtimeDocument js.Value
)

func formDocument() js.Value {
	if !runtimeDocument.Truthy() {
		runtimeDocument = js.Global().Get("document")
	}
	return runtimeDocument
}

// liveForm is one lead form bound in the browser.
type liveForm struct {
	schema    Schema
	node      js.Value
	touched   map[string]bool
	attempted bool
	status    Status
}

// BindLeadForms attaches live validation to every lead form on the page. The
// forms still post natively; the client only keeps the submit button and the
// field errors in step with what the server would answer.
func BindLeadForms() {
	releaseFormHandlers()
	forEachNode(formDocument().Call("querySelectorAll", "form[data-form]"), func(node js.Value) {
		schema, ok := schemaFor(node.Get("dataset").Get("form").String(), node)
		if !ok {
			return
		}
		f := &liveForm{schema: schema, node: node, touched: map[string]bool{}, status: Idle()}
		f.bind()
		f.sync()
	})
}

// schemaFor rebuilds the schema for key. Relay settings stay server side; the
// attachment input only exists when uploads are enabled.
func schemaFor(key string, node js.Value) (Schema, bool) {
	var s Schema
	switch key {
	case KeyQualified:
		s = Qualified(RelayConfig{}, false)
	case KeyDisqualified:
		s = Disqualified(RelayConfig{}, false)
	default:
		return Schema{}, false
	}
	if s.Attachment != nil && node.Call("querySelector", `input[type="file"][name="`+s.Attachment.Name+`"]`).Truthy() {
		s.AttachmentsEnabled = true
	}
	return s, true
}

func (f *liveForm) bind() {
	forEachNode(f.node.Call("querySelectorAll", "input, textarea"), func(input js.Value) {
		name := input.Get("name").String()
		addFormHandler(input, "input", func(js.Value, []js.Value) any {
			f.touched[name] = true
			f.sync()
			return nil
		})
		addFormHandler(input, "blur", func(js.Value, []js.Value) any {
			f.touched[name] = true
			f.sync()
			return nil
		})
		addFormHandler(input, "change", func(js.Value, []js.Value) any {
			f.touched[name] = true
			f.sync()
			return nil
		})
	})

	addFormHandler(f.node, "submit", func(this js.Value, args []js.Value) any {
		if f.status.Kind == StatusSubmitting {
			args[0].Call("preventDefault")
			return nil
		}
		f.attempted = true
		if !f.schema.Valid(f.state()) {
			args[0].Call("preventDefault")
			f.sync()
			focusFirstError(f.node)
			return nil
		}
		f.status = Submitting()
		f.sync()
		return nil
	})
}

// state reads the current values out of the DOM.
func (f *liveForm) state() State {
	st := f.schema.NewState()
	for _, field := range f.schema.Fields {
		el := f.node.Get("elements").Get(field.Name)
		if el.Truthy() {
			st.Set(field.Name, el.Get("value").String())
		}
	}
	if a := f.schema.ActiveAttachment(); a != nil {
		el := f.node.Get("elements").Get(a.Name)
		if el.Truthy() && el.Get("files").Truthy() && el.Get("files").Get("length").Int() > 0 {
			// Validation only needs to know a file was picked; the bytes go with the native post.
			file := el.Get("files").Index(0)
			st.Attachment = &relay.Attachment{Field: a.Name, Filename: file.Get("name").String(), Data: []byte{1}}
		}
	}
	return st
}

func (f *liveForm) sync() {
	st := f.state()
	errs := f.schema.Validate(st)
	valid := len(errs) == 0

	names := make([]string, 0, len(f.schema.Fields)+1)
	for _, field := range f.schema.Fields {
		names = append(names, field.Name)
	}
	if a := f.schema.ActiveAttachment(); a != nil {
		names = append(names, a.Name)
	}
	for _, name := range names {
		reason := ""
		if f.attempted || f.touched[name] {
			reason = errs[name]
		}
		showFieldError(f.node, name, reason)
	}

	f.node.Get("dataset").Set("valid", strconv.FormatBool(valid))
	button := f.node.Call("querySelector", "[data-submit]")
	if !button.Truthy() {
		return
	}
	submitting := f.status.Kind == StatusSubmitting
	button.Set("disabled", submitting || (!valid && f.attempted))
	button.Call("setAttribute", "aria-disabled", strconv.FormatBool(submitting || !valid))
	if submitting {
		button.Set("textContent", "Submitting...")
	} else {
		button.Set("textContent", "Submit")
	}
}

func showFieldError(form js.Value, name, reason string) {
	wrapper := form.Call("querySelector", `[data-field="`+name+`"]`)
	if !wrapper.Truthy() {
		return
	}
	classList := wrapper.Get("classList")
	msg := wrapper.Call("querySelector", ".field-error")
	control := wrapper.Call("querySelector", "input, textarea")
	if reason == "" {
		classList.Call("remove", "has-error")
		if msg.Truthy() {
			msg.Set("textContent", "")
			msg.Set("hidden", true)
		}
		if control.Truthy() {
			control.Call("removeAttribute", "aria-invalid")
			control.Call("removeAttribute", "aria-describedby")
		}
		return
	}
	classList.Call("add", "has-error")
	if msg.Truthy() {
		msg.Set("textContent", reason)
		msg.Set("hidden", false)
	}
	if control.Truthy() {
		control.Call("setAttribute", "aria-invalid", "true")
		if msg.Truthy() {
			control.Call("setAttribute", "aria-describedby", msg.Get("id").String())
		}
	}
}

func focusFirstError(form js.Value) {
	first := form.Call("querySelector", ".has-error input, .has-error textarea")
	if first.Truthy() {
		first.Call("focus")
	}
}

func addFormHandler(node js.Value, event string, handler func(js.Value, []js.Value) any) {
	if !node.Truthy() {
		return
	}
	fn := js.FuncOf(handler)
	node.Call("addEventListener", event, fn)
	formHandlers = append(formHandlers, fn)
}

func releaseFormHandlers() {
	for _, fn := range formHandlers {
		fn.Release()
	}
	formHandlers = formHandlers[:0]
}

func forEachNode(list js.Value, fn func(js.Value)) {
	if !list.Truthy() {
		return
	}
	length := list.Get("length").Int()
	for i := 0; i < length; i++ {
		fn(list.Index(i))
	}
}
