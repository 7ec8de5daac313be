package cli

import (
	"fmt"
	"strconv"
	"strings"
	"task-tracker/internal/domain"
)

type Command string

const (
	CommandAdd            Command = "add"
	CommandUpdate         Command = "update"
	CommandDelete         Command = "delete"
	CommandMarkInProgress Command = "mark-in-progress"
	CommandMarkDone       Command = "mark-done"
	CommandList           Command = "list"
	CommandHelp           Command = "help"
	CommandUnknown        Command = ""
)

func (c Command) touchesStore() bool {
	return c != CommandHelp && c != CommandUnknown
}

// Request is a parsed command line, ready for dispatch.
type Request struct {
	Command Command
	// Raw is the command word as typed; set for unknown commands.
	Raw string

	ID          int64
	Name        string
	Description string
	Status      domain.TaskStatus
	Filter      string
}

// UsageError is a malformed command line. Message is printed as is.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ParseRequest turns the words after the global flags into a Request.
//
// For add and update the last word is also taken as the status when it names
// a recognized status, even when that word is the name itself: "add done"
// creates a task named "done" with status done. Description words are the
// ones between the name and that trailing status.
func ParseRequest(args []string) (Request, error) {
	if len(args) == 0 {
		return Request{Command: CommandHelp}, nil
	}

	word, rest := args[0], args[1:]
	switch Command(word) {
	case CommandAdd:
		if len(rest) < 1 {
			return Request{}, usageErrorf("Usage: %s add <name> [description...] [status]", programName)
		}
		status, words := sniffStatus(rest)
		return Request{
			Command:     CommandAdd,
			Name:        rest[0],
			Description: joinAfterName(words),
			Status:      status,
		}, nil

	case CommandUpdate:
		if len(rest) < 1 {
			return Request{}, usageErrorf("Usage: %s update <id> [name] [description...] [status]", programName)
		}
		id, err := parseID(rest[0])
		if err != nil {
			return Request{}, err
		}
		req := Request{Command: CommandUpdate, ID: id}
		tail := rest[1:]
		if len(tail) > 0 {
			req.Name = tail[0]
		}
		status, words := sniffStatus(tail)
		req.Status = status
		req.Description = joinAfterName(words)
		return req, nil

	case CommandDelete, CommandMarkInProgress, CommandMarkDone:
		if len(rest) < 1 {
			return Request{}, usageErrorf("Usage: %s %s <id>", programName, word)
		}
		id, err := parseID(rest[0])
		if err != nil {
			return Request{}, err
		}
		return Request{Command: Command(word), ID: id}, nil

	case CommandList:
		req := Request{Command: CommandList}
		if len(rest) > 0 {
			req.Filter = rest[0]
		}
		return req, nil

	case CommandHelp:
		return Request{Command: CommandHelp}, nil

	default:
		return Request{Command: CommandUnknown, Raw: word}, nil
	}
}

func sniffStatus(words []string) (domain.TaskStatus, []string) {
	if len(words) == 0 {
		return "", words
	}
	last := domain.TaskStatus(words[len(words)-1])
	if !last.IsValid() {
		return "", words
	}
	return last, words[:len(words)-1]
}

func joinAfterName(words []string) string {
	if len(words) < 2 {
		return ""
	}
	return strings.Join(words[1:], " ")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, usageErrorf("Invalid task id: %q", raw)
	}
	return id, nil
}
