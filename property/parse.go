package property

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/darcula-go/darcula/log"
)

// ErrMalformedLine is returned for a line that cannot be decoded.
var ErrMalformedLine = errors.New("malformed line")

// MaxLineSize bounds one logical line, continuations included.
const MaxLineSize = 4 << 20

// Pair is one key=value definition in source order.
type Pair struct {
	Key   string
	Value string
}

// Parse reads line-oriented key=value text.
//
// Supported syntax: '#' and '!' comment lines, '=' or ':' separators (or
// whitespace when neither is present), backslash line continuations and the
// usual escapes (\t \n \r \f \\ \uXXXX). A key defined twice keeps the
// position of its first definition and the value of its last.
func Parse(r io.Reader, name string) ([]Pair, error) {
	var (
		pairs   []Pair
		seen    = make(map[string]int)
		scanner = bufio.NewScanner(r)
		lineNo  int
		logical strings.Builder
		start   int
	)

	flush := func() error {
		line := logical.String()
		logical.Reset()

		key, value, err := splitLine(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w: %w", name, start, ErrMalformedLine, err)
		}

		if i, ok := seen[key]; ok {
			log.Warnf("%s:%d: %s redefined, overriding the earlier value", name, start, key)
			pairs[i].Value = value
			return nil
		}

		seen[key] = len(pairs)
		pairs = append(pairs, Pair{Key: key, Value: value})
		return nil
	}

	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)

	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if lineNo == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}

		trimmed := strings.TrimLeft(text, " \t\f")
		if logical.Len() == 0 {
			if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '!' {
				continue
			}
			start = lineNo
		}

		if continues(trimmed) {
			logical.WriteString(trimmed[:len(trimmed)-1])
			continue
		}

		logical.WriteString(trimmed)
		if err := flush(); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if logical.Len() > 0 {
		if err := flush(); err != nil {
			return nil, err
		}
	}

	return pairs, nil
}

// continues reports whether line ends with an odd number of backslashes.
func continues(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func splitLine(line string) (key, value string, err error) {
	end := len(line)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '=' || c == ':' || c == ' ' || c == '\t' || c == '\f' {
			end = i
			break
		}
	}

	rest := strings.TrimLeft(line[end:], " \t\f")
	if rest != "" && (rest[0] == '=' || rest[0] == ':') {
		rest = strings.TrimLeft(rest[1:], " \t\f")
	}

	if key, err = unescape(line[:end]); err != nil {
		return "", "", err
	}
	if value, err = unescape(rest); err != nil {
		return "", "", err
	}
	return key, value, nil
}

func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}

		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			if i+4 >= len(s) {
				return "", fmt.Errorf("truncated unicode escape in %q", s)
			}
			r, err := strconv.ParseUint(s[i+1:i+5], 16, 16)
			if err != nil {
				return "", fmt.Errorf("bad unicode escape in %q", s)
			}
			b.WriteRune(rune(r))
			i += 4
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
