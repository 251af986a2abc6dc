// Package ui contains the Bubble Tea program that powers the converter popup.
// Model focuses on message orchestration; the name form, keypad handling and
// rendering live in their own files.
//
// Message flow:
//   - While the name has not been confirmed and the form has focus, key
//     presses go to the NameForm. Enter asks the converter session to
//     confirm the name; on success the form locks and focus moves to the
//     keypad.
//   - Every other message is routed through a typed handler registry so each
//     tea.Msg is handled by a focused function (keys, resizes, action results).
//   - Keypad presses call straight into converter.Session. Rejections are
//     mapped to user-facing notices with converter.Notice; the session itself
//     enforces the name gate.
//
// State ownership:
//   - The calculator state (name, buffer, last direction) lives in
//     converter.Session. The Model only keeps what is on screen: the display
//     text, the accent category, notices and focus.
//   - The keypad grid and its cursor live in internal/ui/state.Keypad.
//   - Copying a result leaves the process, so it runs asynchronously through
//     the internal/ui/command bus and reports back with an ActionResult.
package ui
