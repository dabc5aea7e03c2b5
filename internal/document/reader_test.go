package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractPagesRejectsGarbage(t *testing.T) {
	reader := NewReader(zap.NewNop())

	_, err := reader.ExtractPages([]byte("not a pdf at all"))
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestExtractPagesRejectsEmptyInput(t *testing.T) {
	reader := NewReader(zap.NewNop())

	_, err := reader.ExtractPages(nil)
	assert.ErrorIs(t, err, ErrUnreadable)
}
