package tui

import "github.com/javiermolinar/tacclock/internal/tui/view"

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalSettings:
		return m.renderSettingsModal()
	case ModalHelp:
		return m.renderHelpModal()
	case ModalInit:
		return m.renderInitModal()
	default:
		return ""
	}
}

func (m Model) dialogStyles() view.DialogStyles {
	return view.DialogStyles{
		Frame:        m.styles.ModalStyle,
		Header:       m.styles.ModalHeaderStyle,
		Title:        m.styles.ModalTitleStyle,
		Footer:       m.styles.ModalFooterStyle,
		Body:         m.styles.ModalBodyStyle,
		Button:       m.styles.ModalButtonStyle,
		ButtonActive: m.styles.ModalButtonActiveStyle,
	}
}

func (m Model) modalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:         m.styles.ModalBodyStyle,
		SectionTitleStyle: m.styles.ModalSectionTitleStyle,
		LabelStyle:        m.styles.ModalLabelStyle,
		HintStyle:         m.styles.ModalHintStyle,
		KeyStyle:          m.styles.ModalKeyStyle,
		ToggleOnStyle:     m.styles.ModalToggleOnStyle,
		ToggleOffStyle:    m.styles.ModalToggleOffStyle,
		FocusStyle:        m.styles.ModalFocusStyle,
		InputStyle:        m.styles.ModalInputStyle,
		InputFocusedStyle: m.styles.ModalInputFocusedStyle,
		ErrorStyle:        m.styles.ModalErrorStyle,
	}
}

func (m Model) renderSettingsModal() string {
	return view.Dialog{
		Title:   "Settings",
		Body:    view.RenderSettingsBody(m.settingsModel(), m.modalStyleSet().SettingsStyles()),
		Buttons: view.SettingsButtons,
	}.Render(m.dialogStyles())
}

func (m Model) renderHelpModal() string {
	return view.Dialog{
		Title:   "Keys",
		Body:    view.RenderHelpBody(helpHints, m.modalStyleSet().HelpStyles()),
		Buttons: view.HelpButtons,
	}.Render(m.dialogStyles())
}

// renderInitModal renders the startup initialization modal.
func (m Model) renderInitModal() string {
	return view.Dialog{
		Title:   "Initialize tacclock",
		Body:    view.RenderInitBody(m.initModalModel(), m.modalStyleSet().InitModalStyles()),
		Buttons: view.InitButtons,
	}.Render(m.dialogStyles())
}
