package engine

import "github.com/dshills/composearea/internal/logging"

// DefaultWrapperClass is the class BindTo puts on the editable container.
const DefaultWrapperClass = "cawrapper initialized"

// Option configures a ComposeArea during creation.
type Option func(*ComposeArea)

// WithLogger sets the logger. The engine logs under the "engine" component.
func WithLogger(l *logging.Logger) Option {
	return func(ca *ComposeArea) {
		if l != nil {
			ca.log = l
		}
	}
}

// WithWrapperClass sets the class attribute BindTo gives the container.
func WithWrapperClass(class string) Option {
	return func(ca *ComposeArea) {
		ca.wrapperClass = class
	}
}

// WithInitialHTML sets markup BindTo loads into the container instead of
// the default single <br>.
func WithInitialHTML(markup string) Option {
	return func(ca *ComposeArea) {
		ca.initialHTML = markup
	}
}
