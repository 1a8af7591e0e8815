package gui

import (
	. "modernc.org/tk9.0"
)

type appWidgets struct {
	status       *TLabelWidget
	repoLabel    *TLabelWidget
	branchLabel  *TLabelWidget
	reloadButton *TButtonWidget

	statusTree   *TTreeviewWidget
	diffDetail   *TextWidget
	diffFileList *ListboxWidget

	actionsButton *TButtonWidget
	actionsMenu   *MenuWidget
	summary       *TEntryWidget
	progress      *TProgressbarWidget
	cursor        *TLabelWidget
	commitButton  *TButtonWidget
	description   *TextWidget
	spellMenu     *MenuWidget

	shortcutsWindow *ToplevelWidget
	dateWindow      *ToplevelWidget
	selectWindow    *ToplevelWidget
}
