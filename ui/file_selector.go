package ui

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

const (
	FileKindTracerText    = "tracer text"
	FileKindTracerJSON    = "tracer JSON"
	FileKindStatementJSON = "statement JSON"
	FileKindDirectory     = "directory"
	FileKindUnknown       = "unknown"
)

type (
	Entry struct {
		Name string
		Kind string
	}
	FileSelector struct {
		cwd      string
		entries  []Entry
		cursor   int
		selected string
		quitting bool
	}
)

func CreateFileSelector() FileSelector {
	cwd, err := os.Getwd()
	if err != nil {
		err := errors.Wrap(err, "CreateFileSelector get current working directory error")
		log.Panic(err)
	}
	return FileSelector{
		cwd:     cwd,
		entries: ReadDirectory(cwd),
	}
}

// ClassifyFile guesses what a file holds from its extension and, for JSON,
// a peek at the top-level keys.
func ClassifyFile(path string) string {
	switch filepath.Ext(path) {
	case ".tracer":
		return FileKindTracerText
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil || !gjson.ValidBytes(data) {
			return FileKindUnknown
		}
		root := gjson.ParseBytes(data)
		if root.Get("entries").Exists() {
			return FileKindStatementJSON
		}
		if root.Get("name").Exists() {
			return FileKindTracerJSON
		}
		return FileKindUnknown
	default:
		return FileKindUnknown
	}
}

func ReadDirectory(path string) []Entry {
	files, err := os.ReadDir(path)
	if err != nil {
		log.Fatal(err)
	}

	entries := lo.Map(
		files,
		func(t fs.DirEntry, _ int) Entry {
			if t.IsDir() {
				return Entry{
					Name: t.Name(),
					Kind: FileKindDirectory,
				}
			}
			return Entry{
				Name: t.Name(),
				Kind: ClassifyFile(filepath.Join(path, t.Name())),
			}
		},
	)
	sort.Slice(
		entries,
		func(i int, j int) bool {
			return entries[i].Name < entries[j].Name
		},
	)
	entries = append([]Entry{{Name: "..", Kind: FileKindDirectory}}, entries...)
	return entries
}

func suggestedCommand(path string, kind string) string {
	switch kind {
	case FileKindTracerText:
		return "zonetext load --from " + path + " --to " + path + ".json"
	case FileKindTracerJSON:
		return "zonetext dump --from " + path + " --to " + strings.TrimSuffix(path, ".json")
	case FileKindStatementJSON:
		return "zonetext menu --from " + path
	default:
		return ""
	}
}

func (s FileSelector) View() string {
	if s.quitting {
		return ""
	}

	output := "ZONETEXT\n\n"
	output += "Current directory: " + s.cwd + "\n\n"
	for i, entry := range s.entries {
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		output += marker + entry.Name + " (" + entry.Kind + ")\n"
	}
	output += "\n"

	if s.selected != "" {
		kind := ClassifyFile(s.selected)
		output += "Selected: " + s.selected + " (" + kind + ")\n"
		if command := suggestedCommand(s.selected, kind); command != "" {
			output += "Try: " + command + "\n"
		} else {
			output += "No conversion applies to this file\n"
		}
	} else {
		output += "Up/down to move, enter to select, q to quit\n"
	}

	return output
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		s.quitting = true
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case "enter":
		entry := s.entries[s.cursor]
		path := filepath.Join(s.cwd, entry.Name)
		if entry.Kind == FileKindDirectory {
			s.cwd = path
			s.entries = ReadDirectory(path)
			s.cursor = 0
			s.selected = ""
		} else {
			s.selected = path
		}
	}
	return s, nil
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}
