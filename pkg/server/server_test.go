package server

import (
	"bytes"
	"testing"

	"github.com/lesewerk/silbe/internal/logger"
	"github.com/lesewerk/silbe/pkg/config"
	"github.com/lesewerk/silbe/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// serve runs the server over the given requests and returns a decoder
// positioned after the ready message.
func serve(t *testing.T, cfg *config.Config, requests ...any) *msgpack.Decoder {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	e, err := engine.New(cfg.Engine, engine.WithLogger(logger.Discard()))
	require.NoError(t, err)

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range requests {
		require.NoError(t, enc.Encode(r))
	}

	var out bytes.Buffer
	srv := NewServerWithIO(e, cfg, &in, &out)
	srv.SetLogger(logger.Discard())
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready map[string]string
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready["status"])
	return dec
}

func TestSyllabifyAndChunk(t *testing.T) {
	dec := serve(t, nil,
		Request{ID: "r1", Op: OpSyllabify, Word: "Schule"},
		Request{ID: "r2", Op: OpChunk, Word: "Schu"},
	)

	var syl SyllabifyResponse
	require.NoError(t, dec.Decode(&syl))
	assert.Equal(t, "r1", syl.ID)
	assert.Equal(t, []string{"Schu", "le"}, syl.Syllables)

	var chunk SyllabifyResponse
	require.NoError(t, dec.Decode(&chunk))
	assert.Equal(t, []string{"Sch", "u"}, chunk.Chunks)
}

func TestDecompose(t *testing.T) {
	dec := serve(t, nil, Request{ID: "d", Op: OpDecompose, Word: "Fenster", Start: 12})

	var resp DecomposeResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, []Segment{{"Fen", 12}, {"ster", 15}}, resp.Syllables)
	assert.Equal(t, []Segment{{"F", 12}, {"e", 13}, {"n", 14}, {"st", 15}, {"er", 17}}, resp.Chunks)
}

func TestLocateAndGlue(t *testing.T) {
	idx := 2
	dec := serve(t, nil,
		Request{ID: "l", Op: OpLocate, Word: "Tasche", Target: "sch"},
		Request{ID: "g", Op: OpGlue, Word: "Schule", Index: &idx},
		Request{ID: "m", Op: OpLocate, Word: "Tasche"},
	)

	var loc LocateResponse
	require.NoError(t, dec.Decode(&loc))
	assert.Equal(t, 1, loc.Count)
	assert.Equal(t, []Occurrence{{Indices: []int{2, 3, 4}, Cluster: "sch"}}, loc.Occurrences)

	var glue GlueResponse
	require.NoError(t, dec.Decode(&glue))
	assert.Equal(t, []int{0, 1}, glue.BindsRight)
	assert.Equal(t, []int{0, 1}, glue.Glued)

	var missing ErrorResponse
	require.NoError(t, dec.Decode(&missing))
	assert.Equal(t, "m", missing.ID)
	assert.Equal(t, 400, missing.Code)
}

func TestFrequency(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxCorpusWords = 3

	dec := serve(t, cfg,
		Request{ID: "f1", Op: OpFrequency, Words: []string{"schule", "tasche"}},
		Request{ID: "f2", Op: OpFrequency, Text: "Eins, zwei, drei, vier."},
	)

	var resp FrequencyResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 2, resp.Words)
	assert.Equal(t, 2, resp.Counts["sch"])

	var tooBig ErrorResponse
	require.NoError(t, dec.Decode(&tooBig))
	assert.Equal(t, 413, tooBig.Code)
}

func TestCodecOps(t *testing.T) {
	dec := serve(t, nil,
		Request{ID: "c1", Op: OpCompressIndices, Indices: []int{1, 2, 3, 5, 10, 11}},
		Request{ID: "c2", Op: OpDecompressIndices, Encoded: "1-3,x,5"},
		Request{ID: "c3", Op: OpCompressColors, Colors: map[int]string{0: "red", 1: "red", 4: "blue"}},
		Request{ID: "c4", Op: OpDecompressColors, Encoded: "0-1:red,4:blue"},
	)

	var resp CodecResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "1-3,5,10-11", resp.Encoded)

	resp = CodecResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, []int{1, 2, 3, 5}, resp.Indices)
	assert.Contains(t, resp.Warning, `"x"`)

	resp = CodecResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "0-1:red,4:blue", resp.Encoded)

	resp = CodecResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, map[int]string{0: "red", 1: "red", 4: "blue"}, resp.Colors)
	assert.Empty(t, resp.Warning)
}

func TestInvalidRequests(t *testing.T) {
	dec := serve(t, nil,
		Request{ID: "u", Op: "complete"},
		Request{ID: "w", Op: OpSyllabify, Word: "Schule2"},
		Request{ID: "h", Op: OpHealth},
	)

	var unknown ErrorResponse
	require.NoError(t, dec.Decode(&unknown))
	assert.Equal(t, "unknown op: complete", unknown.Error)

	var invalid ErrorResponse
	require.NoError(t, dec.Decode(&invalid))
	assert.Equal(t, "w", invalid.ID)
	assert.Equal(t, 400, invalid.Code)

	var health HealthResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Contains(t, health.Stats, "cacheEntries")
}

func TestStartFailsOnGarbage(t *testing.T) {
	e, err := engine.New(config.DefaultConfig().Engine, engine.WithLogger(logger.Discard()))
	require.NoError(t, err)

	var out bytes.Buffer
	srv := NewServerWithIO(e, nil, bytes.NewReader([]byte{0xc1}), &out)
	srv.SetLogger(logger.Discard())
	assert.Error(t, srv.Start())
}
