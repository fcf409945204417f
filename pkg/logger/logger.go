package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger raíz.
type Config struct {
	Service string // etiqueta "service" en cada línea
	Env     string // development -> consola legible; lo demás JSON
	Level   string // trace, debug, info, warn, error; inválido -> info
}

// New construye el logger raíz de la aplicación sobre w y lo instala como
// logger global de zerolog para las librerías que lo usen. El nivel viene de
// la configuración; un nivel desconocido cae a info.
func New(w io.Writer, cfg Config) zerolog.Logger {
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().
		Timestamp().
		Str("service", cfg.Service).
		Logger()
	log.Logger = zl
	return zl
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
