package commitmsg

// Prompter shows modal dialogs. Confirm returns true when the user accepts.
type Prompter interface {
	Information(title, text string)
	Confirm(title, text, informative, okLabel string, defaultOK bool) bool
}

// RepoState is the repository snapshot the commit checks run against.
type RepoState struct {
	Staged        bool
	Modified      bool
	Merging       bool
	HeadPublished bool
}

// Request is everything a commit needs. It is a value and is safe to hand to
// another goroutine.
type Request struct {
	Amend         bool
	Message       string
	Sign          bool
	NoVerify      bool
	Date          string
	StageModified bool
}

const (
	MissingMessageTitle = "Missing Commit Message"
	MissingMessageText  = "Please supply a commit message.\n\n" +
		"A good commit message has the following format:\n\n" +
		"- First line: Describe in one sentence what you did.\n" +
		"- Second line: Blank\n" +
		"- Remaining lines: Describe why this change is good.\n"

	NothingToCommitTitle = "Nothing to commit"
	NothingToCommitText  = "No changes to commit.\n\n" +
		"You must stage at least 1 file before you can commit."

	StageAndCommitTitle       = "Stage and commit?"
	StageAndCommitInformative = "Would you like to stage and commit all modified files?"
	StageAndCommitLabel       = "Stage and Commit"

	RewritePublishedTitle = "Rewrite Published Commit?"
	RewritePublishedText  = "This commit has already been published.\n" +
		"This operation will rewrite published history.\n" +
		"You probably don't want to do this."
	RewritePublishedInformative = "Amend the published commit?"
	RewritePublishedLabel       = "Amend Commit"
)

// Submit runs the commit checks in order and, when they pass, builds the
// request. The no-verify toggle and the date override are consumed only when
// a request is returned.
func (e *Editor) Submit(p Prompter, st RepoState) (Request, bool) {
	if e.summary == "" {
		p.Information(MissingMessageTitle, MissingMessageText)
		return Request{}, false
	}

	stage := false
	if !st.Staged && !st.Merging {
		if !st.Modified {
			p.Information(NothingToCommitTitle, NothingToCommitText)
			return Request{}, false
		}
		if !p.Confirm(StageAndCommitTitle, NothingToCommitText, StageAndCommitInformative, StageAndCommitLabel, true) {
			return Request{}, false
		}
		stage = true
	}

	if e.Flags.Amend && e.CheckPublished && st.HeadPublished &&
		!p.Confirm(RewritePublishedTitle, RewritePublishedText, RewritePublishedInformative, RewritePublishedLabel, false) {
		return Request{}, false
	}

	return Request{
		Amend:         e.Flags.Amend,
		Message:       StripComments(e.Message(false), e.CommentChar),
		Sign:          e.Flags.Sign,
		NoVerify:      e.Flags.TakeNoVerify(),
		Date:          e.Session.TakeDate(),
		StageModified: stage,
	}, true
}
