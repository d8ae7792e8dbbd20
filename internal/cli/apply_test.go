package cli

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tourmate-app/tourmate-cli/internal/wizard"
)

func TestEditDocumentsReturnsOnClosedInput(t *testing.T) {
	silencePrintln(t)

	a := &App{reader: bufio.NewReader(strings.NewReader(""))}
	err := a.editDocuments(wizard.NewDraft())
	require.ErrorIs(t, err, io.EOF, "a closed input stream must end the step, not loop")
}

func TestEditDocumentsCertificationLoopEndsOnClosedInput(t *testing.T) {
	silencePrintln(t)

	// Profile photo and ID photo skipped, then the stream closes while the
	// certification prompt repeats.
	a := &App{reader: bufio.NewReader(strings.NewReader("\n\n"))}
	err := a.editDocuments(wizard.NewDraft())
	require.ErrorIs(t, err, io.EOF)
}

func TestEditDocumentsRepromptsOnUnreadablePath(t *testing.T) {
	silencePrintln(t)

	// A bad path is not fatal: the step moves on and finishes cleanly once
	// the remaining prompts are skipped.
	a := &App{reader: bufio.NewReader(strings.NewReader("no-such-file.png\n\n\n"))}
	d := wizard.NewDraft()
	require.NoError(t, a.editDocuments(d))
	require.Nil(t, d.ProfilePhoto)
}
