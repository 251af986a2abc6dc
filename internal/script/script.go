// Package script replays keypad sessions without a terminal.
//
// A script is a whitespace separated list of tokens:
//
//	name:Ana       confirm a name (underscores become spaces)
//	21 3.5 ,       type digits and decimal points, one key at a time
//	c reset clear  clear the display
//	length tmp ... press a conversion button (names resolve fuzzily)
//
// Text after '#' on a line is ignored.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/tmux-popup-convert/internal/converter"
	"github.com/atomicstack/tmux-popup-convert/internal/logging/events"
)

// StepKind classifies a parsed script token.
type StepKind int

const (
	StepName StepKind = iota
	StepKeys
	StepReset
	StepConvert
)

// Step is a single parsed token.
type Step struct {
	Kind     StepKind
	Token    string
	Name     string
	Keys     string
	Category converter.Category
}

// ParseString parses a script held in memory.
func ParseString(text string) ([]Step, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads a script. Unknown tokens fail the whole script so nothing runs
// half way.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		for _, token := range strings.Fields(text) {
			step, err := parseToken(token)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			steps = append(steps, step)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

func parseToken(token string) (Step, error) {
	lower := strings.ToLower(token)
	for _, prefix := range []string{"name:", "name="} {
		if strings.HasPrefix(lower, prefix) {
			name := strings.ReplaceAll(token[len(prefix):], "_", " ")
			return Step{Kind: StepName, Token: token, Name: name}, nil
		}
	}
	switch lower {
	case "c", "reset", "clear":
		return Step{Kind: StepReset, Token: token}, nil
	}
	if isKeys(token) {
		return Step{Kind: StepKeys, Token: token, Keys: strings.ReplaceAll(token, ",", ".")}, nil
	}
	category, err := converter.LookupCategory(token)
	if err != nil {
		return Step{}, fmt.Errorf("token %q: %w", token, err)
	}
	return Step{Kind: StepConvert, Token: token, Category: category}, nil
}

func isKeys(token string) bool {
	for _, r := range token {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return false
		}
	}
	return token != ""
}

// Run applies steps to session and writes one line per step: the display
// after typing or a conversion, the greeting after a name, or "error: ..." for
// rejected actions. Rejections do not stop the run; only write failures do.
func Run(session *converter.Session, steps []Step, w io.Writer) error {
	events.App.Script(len(steps))
	for _, step := range steps {
		line, err := apply(session, step)
		if err != nil {
			events.Convert.Rejected(step.Token, err)
			line = "error: " + converter.Notice(err)
		}
		if _, werr := fmt.Fprintln(w, line); werr != nil {
			return werr
		}
	}
	return nil
}

func apply(session *converter.Session, step Step) (string, error) {
	switch step.Kind {
	case StepName:
		if err := session.ConfirmName(step.Name); err != nil {
			return "", err
		}
		events.Convert.NameConfirmed(session.Name())
		return converter.Welcome(session.Name()), nil
	case StepReset:
		session.Reset()
		events.Convert.Reset()
		return session.Buffer(), nil
	case StepConvert:
		out, err := session.Convert(step.Category)
		if err != nil {
			return "", err
		}
		events.Convert.Result(out)
		return out.Text, nil
	default:
		for _, r := range step.Keys {
			if err := pressKey(session, r); err != nil {
				return "", err
			}
		}
		events.Convert.Digit(step.Keys, session.Buffer())
		return session.Buffer(), nil
	}
}

func pressKey(session *converter.Session, r rune) error {
	if r == '.' {
		return session.AppendDecimalPoint()
	}
	d, ok := converter.ParseDigit(r)
	if !ok {
		return fmt.Errorf("unexpected key %q", r)
	}
	return session.AppendDigit(d)
}
