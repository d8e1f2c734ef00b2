package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus_Known(t *testing.T) {
	cases := map[string]StatusKind{
		"pendiente": StatusPendiente,
		"pagada":    StatusPagada,
		"enviada":   StatusEnviada,
		"entregada": StatusEntregada,
		"cancelada": StatusCancelada,
	}
	for raw, kind := range cases {
		s, err := ParseStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, kind, s.Kind)
		assert.Equal(t, raw, s.String())
	}
}

// 既知集合は完全一致。大文字や空白違いはCustomになる。
func TestParseStatus_ExactMatchOnly(t *testing.T) {
	for _, raw := range []string{"Pendiente", "PAGADA", " enviada", "entregada "} {
		s, err := ParseStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, StatusCustom, s.Kind)
		assert.Equal(t, raw, s.String())
	}
}

func TestParseStatus_CustomKeepsRawText(t *testing.T) {
	s, err := ParseStatus("en bodega")
	assert.NoError(t, err)
	assert.Equal(t, StatusCustom, s.Kind)
	assert.Equal(t, "en bodega", s.String())
}

func TestParseStatus_EmptyRejected(t *testing.T) {
	_, err := ParseStatus("")
	assert.ErrorIs(t, err, ErrEmptyStatus)
}

func TestPendiente(t *testing.T) {
	assert.Equal(t, "pendiente", Pendiente().String())
	assert.Equal(t, StatusPendiente, Pendiente().Kind)
}
