package profile

import (
	"log/slog"
	"os"
)

// FileReader reads the backing profiles file. It is an interface so tests
// can count reads.
type FileReader interface {
	Read() (string, error)
}

// PathReader reads a file from disk.
type PathReader struct {
	Path string
}

func (r PathReader) Read() (string, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Parser parses profiles file content. Interface for the same reason as
// FileReader.
type Parser interface {
	Parse(content string) (map[string]Profile, error)
}

// TOMLParser is the production Parser.
type TOMLParser struct{}

func (TOMLParser) Parse(content string) (map[string]Profile, error) {
	return ParseTOML(content)
}

// FileSource resolves profiles from one TOML file. The file is read and
// parsed at most once per instance; a missing or malformed file silently
// degrades the source to an empty mapping so a broken config never blocks
// command execution.
type FileSource struct {
	reader FileReader
	parser Parser
	logger *slog.Logger

	loaded   bool
	profiles map[string]Profile
}

// NewFileSource builds a FileSource over the given reader and parser.
func NewFileSource(reader FileReader, parser Parser, logger *slog.Logger) *FileSource {
	return &FileSource{reader: reader, parser: parser, logger: logger}
}

// Get resolves name against the memoized file content.
func (s *FileSource) Get(name string) (Profile, error) {
	s.load()
	if p, ok := s.profiles[name]; ok {
		return p, nil
	}
	return nil, &NotFoundError{Name: name}
}

func (s *FileSource) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.profiles = map[string]Profile{}

	content, err := s.reader.Read()
	if err != nil {
		s.logger.Debug("profiles file unavailable", "error", err)
		return
	}
	parsed, err := s.parser.Parse(content)
	if err != nil {
		s.logger.Debug("ignoring malformed profiles file", "error", err)
		return
	}
	s.profiles = parsed
}
