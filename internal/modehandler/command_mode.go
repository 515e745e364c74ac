package modehandler

import (
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/leditor/internal/input"
	"github.com/bethropolis/leditor/internal/logger"
)

// handleActionCommand edits the command line; Enter runs it, Escape or a
// backspace on an empty line leaves command mode.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.cmdBuffer += string(actionEvent.Rune)

	case input.ActionDeleteCharBackward:
		if mh.cmdBuffer == "" {
			mh.setMode(ModeNormal)
			logger.Debugf("ModeHandler: Exiting Command Mode via Backspace")
			return true
		}
		_, size := utf8.DecodeLastRuneInString(mh.cmdBuffer)
		mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-size]

	case input.ActionExecuteCommand:
		line := mh.cmdBuffer
		mh.cmdBuffer = ""
		mh.setMode(ModeNormal)
		mh.ExecuteCommand(line)
		return true

	case input.ActionQuit:
		mh.cmdBuffer = ""
		mh.setMode(ModeNormal)
		logger.Debugf("ModeHandler: Canceled Command Mode via Escape")
		return true

	default:
		return false
	}

	mh.statusBar.SetCommandInput(mh.cmdBuffer, true)
	return true
}

// ExecuteCommand parses and runs a command line such as "layer 2".
// Errors are reported in the status bar.
func (mh *ModeHandler) ExecuteCommand(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	cmdName, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	logger.Debugf("ModeHandler: Executing command ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		logger.Debugf("ModeHandler: command ':%s' failed: %v", cmdName, err)
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
}
