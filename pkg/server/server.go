package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lesewerk/silbe/internal/logger"
	"github.com/lesewerk/silbe/internal/utils"
	"github.com/lesewerk/silbe/pkg/codec"
	"github.com/lesewerk/silbe/pkg/config"
	"github.com/lesewerk/silbe/pkg/engine"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for the decomposition engine
type Server struct {
	engine  engine.IEngine
	config  *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	writer  *bufio.Writer
	logger  *log.Logger

	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(e engine.IEngine, cfg *config.Config) *Server {
	return NewServerWithIO(e, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w.
func NewServerWithIO(e engine.IEngine, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		engine:  e,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		encoder: msgpack.NewEncoder(bw),
		writer:  bw,
		logger:  logger.New("server"),
	}
}

// SetLogger replaces the server logger.
func (s *Server) SetLogger(l *log.Logger) {
	s.logger = l
}

// Start sends a ready message and serves requests until the input ends.
// A request that cannot be decoded ends the stream.
func (s *Server) Start() error {
	s.logger.Debug("Starting Server.")
	s.send(map[string]string{"status": "ready"})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	s.requestCount++
	start := time.Now()
	s.logger.Debug("Processing request", "id", req.ID, "op", req.Op)

	switch req.Op {
	case OpSyllabify:
		if s.validWord(req) {
			s.send(SyllabifyResponse{ID: req.ID, Syllables: s.engine.Syllabify(req.Word), TimeTaken: since(start)})
		}
	case OpChunk:
		if s.validWord(req) {
			s.send(SyllabifyResponse{ID: req.ID, Chunks: s.engine.Chunk(req.Word), TimeTaken: since(start)})
		}
	case OpDecompose:
		if s.validWord(req) {
			s.handleDecompose(req, start)
		}
	case OpLocate:
		if s.validWord(req) {
			s.handleLocate(req, start)
		}
	case OpGlue:
		if s.validWord(req) {
			s.handleGlue(req, start)
		}
	case OpFrequency:
		s.handleFrequency(req, start)
	case OpCompressIndices, OpDecompressIndices, OpCompressColors, OpDecompressColors:
		s.handleCodec(req, start)
	case OpHealth:
		s.send(HealthResponse{ID: req.ID, Status: "ok", Stats: s.engine.Stats()})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown op: %s", req.Op), 400)
	}
}

func (s *Server) validWord(req Request) bool {
	if req.Word == "" {
		s.sendError(req.ID, "missing 'w' parameter", 400)
		return false
	}
	if !utils.IsValidWord(req.Word, s.config.Server.MaxWordLength) {
		s.sendError(req.ID, fmt.Sprintf("invalid word %q (letters only, at most %d)", req.Word, s.config.Server.MaxWordLength), 400)
		return false
	}
	return true
}

func (s *Server) handleDecompose(req Request, start time.Time) {
	d := s.engine.Decompose(req.Word, req.Start)
	s.send(DecomposeResponse{
		ID:        req.ID,
		Syllables: toSegments(d.Syllables),
		Chunks:    toSegments(d.Chunks),
		TimeTaken: since(start),
	})
}

func (s *Server) handleLocate(req Request, start time.Time) {
	if req.Target == "" {
		s.sendError(req.ID, "missing 'target' parameter", 400)
		return
	}
	found := s.engine.Locate(req.Word, req.Target, req.Start)
	occurrences := make([]Occurrence, len(found))
	for i, o := range found {
		occurrences[i] = Occurrence{Indices: o.Indices, Cluster: o.Cluster}
	}
	s.send(LocateResponse{ID: req.ID, Occurrences: occurrences, Count: len(occurrences), TimeTaken: since(start)})
}

func (s *Server) handleGlue(req Request, start time.Time) {
	binds := s.engine.BindsRight(req.Word, req.Start)
	indices := make([]int, 0, len(binds))
	for i := range binds {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	resp := GlueResponse{ID: req.ID, BindsRight: indices}
	if req.Index != nil {
		resp.Glued = s.engine.Glued(req.Word, req.Start, *req.Index)
	}
	resp.TimeTaken = since(start)
	s.send(resp)
}

func (s *Server) handleFrequency(req Request, start time.Time) {
	words := req.Words
	if len(words) == 0 {
		words = utils.SplitWords(req.Text)
	}
	if limit := s.config.Server.MaxCorpusWords; limit > 0 && len(words) > limit {
		s.sendError(req.ID, fmt.Sprintf("corpus has %d words, limit is %d", len(words), limit), 413)
		return
	}
	table := s.engine.Frequencies(words)
	s.send(FrequencyResponse{ID: req.ID, Counts: table, Words: len(words), TimeTaken: since(start)})
}

func (s *Server) handleCodec(req Request, start time.Time) {
	resp := CodecResponse{ID: req.ID}
	var warning error

	switch req.Op {
	case OpCompressIndices:
		resp.Encoded = codec.CompressIndices(req.Indices)
	case OpDecompressIndices:
		warning = codec.ValidateIndices(req.Encoded)
		resp.Indices = codec.DecompressIndices(req.Encoded)
	case OpCompressColors:
		resp.Encoded = codec.CompressColors(req.Colors)
	case OpDecompressColors:
		warning = codec.ValidateColors(req.Encoded)
		resp.Colors = codec.DecompressColors(req.Encoded)
	}
	if warning != nil {
		s.logger.Warn("Skipped malformed tokens", "id", req.ID, "err", warning)
		resp.Warning = warning.Error()
	}
	resp.TimeTaken = since(start)
	s.send(resp)
}

// send encodes response and flushes it so the client sees it immediately.
func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		s.logger.Errorf("Writing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.logger.Debug("Request failed", "id", id, "err", message)
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func toSegments(in []engine.Segment) []Segment {
	out := make([]Segment, len(in))
	for i, seg := range in {
		out[i] = Segment{Text: seg.Text, Start: seg.Start}
	}
	return out
}

func since(start time.Time) int64 {
	return time.Since(start).Microseconds()
}
