/*
Package server implements msgpack IPC for the decomposition engine.

The server reads a stream of msgpack encoded requests from stdin and writes
one msgpack response per request to stdout. Logs go to stderr.

# IPC

Every request carries an ID and an operation name; the remaining fields
depend on the operation:

	{"id": "r1", "op": "syllabify", "w": "Schule"}
	{"id": "r2", "op": "decompose", "w": "Fenster", "start": 12}
	{"id": "r3", "op": "locate", "w": "Tasche", "target": "sch"}
	{"id": "r4", "op": "glue", "w": "Schule", "i": 2}
	{"id": "r5", "op": "frequency", "text": "Die Schule. Die Tasche."}
	{"id": "r6", "op": "compress_indices", "indices": [1, 2, 3, 5]}
	{"id": "r7", "op": "decompress_colors", "enc": "0-2:red,4:blue"}
	{"id": "r8", "op": "health"}

Responses echo the ID and add the timing in microseconds:

	{"id": "r1", "s": ["Schu", "le"], "t": 12}
	{"id": "r2", "s": [{"x": "Fen", "i": 12}, ...], "c": [{"x": "F", "i": 12}, ...], "t": 20}

Failed requests get an ErrorResponse:

	{"id": "r9", "e": "unknown op: foo", "c": 400}

Decompressing never fails. When the input holds malformed tokens they are
skipped and the first one is reported in the response's warning field.
*/
package server

// Operation names.
const (
	OpSyllabify         = "syllabify"
	OpChunk             = "chunk"
	OpDecompose         = "decompose"
	OpLocate            = "locate"
	OpGlue              = "glue"
	OpFrequency         = "frequency"
	OpCompressIndices   = "compress_indices"
	OpDecompressIndices = "decompress_indices"
	OpCompressColors    = "compress_colors"
	OpDecompressColors  = "decompress_colors"
	OpHealth            = "health"
)

// Request is the envelope for every operation.
type Request struct {
	ID      string         `msgpack:"id"`
	Op      string         `msgpack:"op"`
	Word    string         `msgpack:"w,omitempty"`
	Target  string         `msgpack:"target,omitempty"`
	Start   int            `msgpack:"start,omitempty"`
	Index   *int           `msgpack:"i,omitempty"`
	Words   []string       `msgpack:"words,omitempty"`
	Text    string         `msgpack:"text,omitempty"`
	Indices []int          `msgpack:"indices,omitempty"`
	Colors  map[int]string `msgpack:"colors,omitempty"`
	Encoded string         `msgpack:"enc,omitempty"`
}

// SyllabifyResponse answers syllabify and chunk requests.
type SyllabifyResponse struct {
	ID        string   `msgpack:"id"`
	Syllables []string `msgpack:"s,omitempty"`
	Chunks    []string `msgpack:"c,omitempty"`
	TimeTaken int64    `msgpack:"t"`
}

// Segment is a piece of a word with its absolute start index.
type Segment struct {
	Text  string `msgpack:"x"`
	Start int    `msgpack:"i"`
}

// DecomposeResponse carries syllables and chunks with absolute offsets.
type DecomposeResponse struct {
	ID        string    `msgpack:"id"`
	Syllables []Segment `msgpack:"s"`
	Chunks    []Segment `msgpack:"c"`
	TimeTaken int64     `msgpack:"t"`
}

// Occurrence is one located match.
type Occurrence struct {
	Indices []int  `msgpack:"i"`
	Cluster string `msgpack:"cl,omitempty"`
}

// LocateResponse lists every occurrence of the target.
type LocateResponse struct {
	ID          string       `msgpack:"id"`
	Occurrences []Occurrence `msgpack:"o"`
	Count       int          `msgpack:"n"`
	TimeTaken   int64        `msgpack:"t"`
}

// GlueResponse lists the ascending indices that bind right and, when the
// request named an index, the binding indices of its cluster.
type GlueResponse struct {
	ID         string `msgpack:"id"`
	BindsRight []int  `msgpack:"b"`
	Glued      []int  `msgpack:"g,omitempty"`
	TimeTaken  int64  `msgpack:"t"`
}

// FrequencyResponse carries the exact-case frequency table.
type FrequencyResponse struct {
	ID        string         `msgpack:"id"`
	Counts    map[string]int `msgpack:"f"`
	Words     int            `msgpack:"n"`
	TimeTaken int64          `msgpack:"t"`
}

// CodecResponse answers the four codec operations.
type CodecResponse struct {
	ID        string         `msgpack:"id"`
	Encoded   string         `msgpack:"enc,omitempty"`
	Indices   []int          `msgpack:"indices,omitempty"`
	Colors    map[int]string `msgpack:"colors,omitempty"`
	Warning   string         `msgpack:"warn,omitempty"`
	TimeTaken int64          `msgpack:"t"`
}

// HealthResponse reports liveness and engine statistics.
type HealthResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
