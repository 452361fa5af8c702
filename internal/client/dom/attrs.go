package dom

// Атрибуты протокола, которые клиент читает из зеркального дерева
const (
	AttrComponentID     = "data-hlive-id"          // stable component identifier
	AttrOn              = "data-hlive-on"          // event bindings: "handlerID|event,..."
	AttrFocus           = "data-hlive-focus"       // focus request
	AttrUpload          = "data-hlive-upload"      // upload trigger on file inputs
	AttrHash            = "data-hlive-hash"        // build/version hash of the rendered page
	AttrPreventDefault  = "data-hlive-pd"          // suppress the default action
	AttrStopPropagation = "data-hlive-sp"          // stop event bubbling
	AttrPreemptDisable  = "data-hlive-pre-disable" // disable the control locally when the named event fires
	AttrScrollTop       = "data-scrolltop"         // scroll offset restore
	AttrOverlay         = "data-hlive-overlay"     // marks the disconnect overlay

	// AttrValue mirrors the live value of form controls; in markup it is also the declared default
	AttrValue    = "value"
	AttrChecked  = "checked"
	AttrSelected = "selected"
	AttrDisabled = "disabled"
)
