package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiservices/backoffice-api/pkg/logger"
)

func TestNew_JSONConEtiquetaDeServicio(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.Config{Service: "backoffice-api", Env: "production", Level: "info"})

	log.Info().Str("k", "v").Msg("hola")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"service":"backoffice-api"`)
	assert.Contains(t, out, `"message":"hola"`)
}

// El nivel configurado filtra: con "warn" los info no salen.
func TestNew_NivelConfiguradoFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.Config{Service: "s", Env: "production", Level: "warn"})

	log.Info().Msg("silenciado")
	assert.Empty(t, buf.String())

	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

// Un nivel desconocido cae a info en vez de apagar el logger.
func TestNew_NivelDesconocidoCaeAInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.Config{Service: "s", Env: "production", Level: "verboso"})

	log.Debug().Msg("silenciado")
	assert.Empty(t, buf.String())

	log.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
