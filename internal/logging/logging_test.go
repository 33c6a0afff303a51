package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestNewJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "debug", JSON: true})
	tt.MustOK(err)

	log.Debug().Str("op", "mul").Int("bits", 256).Msg("checked")

	var line map[string]interface{}
	tt.MustOK(json.Unmarshal(buf.Bytes(), &line))
	tt.MustEqual("debug", line["level"])
	tt.MustEqual("mul", line["op"])
	tt.MustEqual(float64(256), line["bits"])
	tt.MustEqual("checked", line["message"])
}

func TestNewConsole(t *testing.T) {
	tt := assert.WrapTB(t)
	var buf bytes.Buffer
	log, err := New(&buf, Options{})
	tt.MustOK(err)

	log.Info().Str("op", "add").Msg("hello")
	out := buf.String()
	tt.MustAssert(strings.Contains(out, "hello"), out)
	tt.MustAssert(strings.Contains(out, "op=add"), out)
	tt.MustAssert(!strings.Contains(out, "\x1b["), "colour written to a non-terminal")
}

func TestNewLevelFilters(t *testing.T) {
	tt := assert.WrapTB(t)
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "warn", JSON: true})
	tt.MustOK(err)

	log.Info().Msg("quiet")
	tt.MustEqual(0, buf.Len())
	log.Warn().Msg("loud")
	tt.MustAssert(buf.Len() > 0)
}

func TestNewBadLevel(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := New(&bytes.Buffer{}, Options{Level: "shouty"})
	tt.MustAssert(err != nil)
}
