package markup

// DoxygenDiscussion is a @discussion command's captured description.
type DoxygenDiscussion struct{ element }

// NewDoxygenDiscussion builds a discussion over the given block
// children.
func NewDoxygenDiscussion(children ...Markup) *DoxygenDiscussion {
	raw := newRawNode(&rawNode{kind: KindDoxygenDiscussion, children: rawsOf(children)})
	return newDetached(raw).(*DoxygenDiscussion)
}

// DoxygenNote is a @note command's captured description.
type DoxygenNote struct{ element }

// NewDoxygenNote builds a note over the given block children.
func NewDoxygenNote(children ...Markup) *DoxygenNote {
	raw := newRawNode(&rawNode{kind: KindDoxygenNote, children: rawsOf(children)})
	return newDetached(raw).(*DoxygenNote)
}

// DoxygenAbstract is a @brief or @abstract command's captured
// description.
type DoxygenAbstract struct{ element }

// NewDoxygenAbstract builds an abstract over the given block children.
func NewDoxygenAbstract(children ...Markup) *DoxygenAbstract {
	raw := newRawNode(&rawNode{kind: KindDoxygenAbstract, children: rawsOf(children)})
	return newDetached(raw).(*DoxygenAbstract)
}

// DoxygenParameter documents one named parameter, from a @param
// command.
type DoxygenParameter struct{ element }

// NewDoxygenParameter builds a parameter description for the given
// parameter name.
func NewDoxygenParameter(name string, children ...Markup) *DoxygenParameter {
	raw := newRawNode(&rawNode{kind: KindDoxygenParameter, name: name, children: rawsOf(children)})
	return newDetached(raw).(*DoxygenParameter)
}

// Name returns the documented parameter's name.
func (p *DoxygenParameter) Name() string { return p.n.raw.name }

// WithName returns this parameter's occurrence in a new tree with the
// parameter name changed.
func (p *DoxygenParameter) WithName(name string) *DoxygenParameter {
	newRaw := p.n.raw.shallowCopy()
	newRaw.name = name
	return p.replacingSelf(newRaw).(*DoxygenParameter)
}

// DoxygenReturns is a @returns command's captured description.
type DoxygenReturns struct{ element }

// NewDoxygenReturns builds a returns description over the given block
// children.
func NewDoxygenReturns(children ...Markup) *DoxygenReturns {
	raw := newRawNode(&rawNode{kind: KindDoxygenReturns, children: rawsOf(children)})
	return newDetached(raw).(*DoxygenReturns)
}
