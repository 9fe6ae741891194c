package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vidget/media-downloader/internal/model"
)

// authArea is the sign-in corner of the header. While the identity provider
// performs its initial handshake it shows nothing at all.
type authArea struct {
	localization *Localization
	onSignIn     func()
	onSignOut    func()

	userName   *widget.Label
	signIn     *widget.Button
	signOut    *widget.Button
	hint       *widget.Label
	content    *fyne.Container
	hintHolder *fyne.Container
}

func newAuthArea(localization *Localization, onSignIn, onSignOut func()) *authArea {
	a := &authArea{
		localization: localization,
		onSignIn:     onSignIn,
		onSignOut:    onSignOut,
		userName:     widget.NewLabel(""),
	}

	a.signIn = widget.NewButton(localization.GetText(KeySignIn), func() { a.onSignIn() })
	a.signOut = widget.NewButton(localization.GetText(KeySignOut), func() { a.onSignOut() })

	a.hint = widget.NewLabel(localization.GetText(KeySignedOutHint))
	a.hint.Wrapping = fyne.TextWrapWord
	a.hintHolder = container.NewVBox(a.hint)

	a.content = container.NewHBox(a.userName, a.signIn, a.signOut)

	// Nothing is decided yet during the handshake
	a.signIn.Hide()
	a.signOut.Hide()
	a.hintHolder.Hide()

	return a
}

// SetIdentity reflects the identity state once the provider reports it
func (a *authArea) SetIdentity(identity *model.Identity) {
	if identity == nil {
		a.userName.SetText("")
		a.userName.Hide()
		a.signOut.Hide()
		a.signIn.Show()
		a.hintHolder.Show()
		return
	}

	a.userName.SetText(identity.DisplayName)
	a.userName.Show()
	a.signIn.Hide()
	a.signOut.Show()
	a.hintHolder.Hide()
}

// Hint returns the signed-out hint banner placed under the header
func (a *authArea) Hint() fyne.CanvasObject {
	return a.hintHolder
}
