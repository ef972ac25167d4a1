package components

import (
	"sync"

	"github.com/go-drift/fluent/pkg/attr"
)

// Registry returns the registry of every component in this package. It is
// built on first use and shared; callers must not register into it.
var Registry = sync.OnceValue(NewRegistry)

// NewRegistry returns a fresh registry holding every component in this
// package, for hosts that register their own components alongside.
func NewRegistry() *attr.Registry {
	return attr.NewRegistry(definitions()...)
}

func definitions() []*attr.Component {
	return []*attr.Component{
		attr.Define("Badge", true, newBadge, nil),
		attr.Define("Blank", false, newBlank, blankMethods),
		attr.Define("Button", true, newButton, buttonMethods()),
		attr.Define("Checkbox", false, newCheckbox, checkboxMethods),
		attr.Define("CheckboxGroup", false, newCheckboxGroup, checkboxGroupMethods),
		attr.Define("Column", true, newColumn, columnMethods),
		attr.Define("Row", true, newRow, rowMethods),
		attr.Define("Stack", true, newStack, stackMethods),
		attr.Define("Divider", false, newDivider, dividerMethods),
		attr.Define("Image", false, newImage, imageMethods),
		attr.Define("Progress", false, newProgress, progressMethods),
		attr.Define("Radio", false, newRadio, radioMethods),
		attr.Define("Rating", false, newRating, ratingMethods),
		attr.Define("Slider", false, newSlider, sliderMethods),
		attr.Define("Text", true, newText, textMethods()),
		attr.Define("Span", false, newSpan, spanMethods()),
		attr.Define("TextInput", false, newTextInput, textInputMethods),
		attr.Define("Toggle", false, newToggle, toggleMethods),
	}
}

