package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestNewRenderer_NoTTY(t *testing.T) {
	render := NewRenderer(&bytes.Buffer{})

	out, err := render("# 坤为地\n\nSome **bold** words.")
	require.NoError(t, err)
	assert.Contains(t, out, "坤为地")
	assert.Contains(t, out, "bold")
}

func TestPrintBanner_Plain(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)

	assert.Contains(t, buf.String(), "najia")
	assert.False(t, strings.Contains(buf.String(), "\x1b["))
}

func TestVerdict_Plain(t *testing.T) {
	assert.Equal(t, "prosperous", Verdict(&bytes.Buffer{}, domain.Prosperous))
}
