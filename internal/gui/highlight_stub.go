//go:build nosyntaxhighlight

package gui

func (a *Controller) applySyntaxHighlight(content string) {}

func (a *Controller) clearSyntaxHighlight() {}
